package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abcbank/corebank/internal/apperrors"
	"github.com/abcbank/corebank/internal/core/domain"
	portsrepo "github.com/abcbank/corebank/internal/core/ports/repositories"
	portssvc "github.com/abcbank/corebank/internal/core/ports/services"
)

// reversalService flips ledger records from SUCCESS to REVERSED.
//
// Reversal touches only the status flag. Account balances are left as they
// are; any balance correction is a separate administrative action. Reversing
// an already reversed record is an error rather than a silent re-flip.
type reversalService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepository
}

// NewReversalService creates a new ReversalService.
func NewReversalService(ledgerRepo portsrepo.LedgerRepository) portssvc.ReversalSvcFacade {
	return &reversalService{ledgerRepo: ledgerRepo}
}

var _ portssvc.ReversalSvcFacade = (*reversalService)(nil)

// Reverse marks the identified ledger record REVERSED and returns it.
func (s *reversalService) Reverse(ctx context.Context, transactionID string) (*domain.TransactionRecord, error) {
	record, err := s.ledgerRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if record.Status == domain.Reversed {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrAlreadyReversed, transactionID)
	}

	if err := s.ledgerRepo.SetTransactionStatus(ctx, transactionID, domain.Reversed); err != nil {
		s.LogError(ctx, err, "Failed to reverse transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	record.Status = domain.Reversed
	s.LogInfo(ctx, "Transaction reversed", slog.String("transaction_id", transactionID))
	return record, nil
}
