package services

import (
	"context"
	"fmt"

	"github.com/abcbank/corebank/internal/core/domain"
	portsrepo "github.com/abcbank/corebank/internal/core/ports/repositories"
	portssvc "github.com/abcbank/corebank/internal/core/ports/services"
)

// historyService serves per-account views over the ledger.
type historyService struct {
	BaseService
	ledgerRepo portsrepo.LedgerReader
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(ledgerRepo portsrepo.LedgerReader) portssvc.HistorySvcFacade {
	return &historyService{ledgerRepo: ledgerRepo}
}

var _ portssvc.HistorySvcFacade = (*historyService)(nil)

// View returns all ledger records for the account in append order. An account
// with no history yields an empty slice, not an error; the ledger does not
// validate account numbers.
func (s *historyService) View(ctx context.Context, accountNumber string) ([]domain.TransactionRecord, error) {
	records, err := s.ledgerRepo.ListTransactionsByAccount(ctx, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for account %s: %w", accountNumber, err)
	}
	return records, nil
}
