package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/abcbank/corebank/internal/core/domain"
	portsrepo "github.com/abcbank/corebank/internal/core/ports/repositories"
	portssvc "github.com/abcbank/corebank/internal/core/ports/services"
	"github.com/abcbank/corebank/internal/dto"
)

// reportService aggregates ledger totals by transaction kind.
type reportService struct {
	BaseService
	ledgerRepo portsrepo.LedgerReader
}

// NewReportService creates a new ReportService.
func NewReportService(ledgerRepo portsrepo.LedgerReader) portssvc.ReportSvcFacade {
	return &reportService{ledgerRepo: ledgerRepo}
}

var _ portssvc.ReportSvcFacade = (*reportService)(nil)

// Generate scans the full ledger once and sums amounts for DEPOSIT and
// WITHDRAW records. Reversed records stay in the sums; the report reflects
// recorded volume, not net position.
func (s *reportService) Generate(ctx context.Context) (*dto.TransactionReport, error) {
	records, err := s.ledgerRepo.ScanTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger: %w", err)
	}

	totalDeposits := decimal.Zero
	totalWithdrawals := decimal.Zero
	for _, record := range records {
		switch record.Kind {
		case domain.Deposit:
			totalDeposits = totalDeposits.Add(record.Amount)
		case domain.Withdraw:
			totalWithdrawals = totalWithdrawals.Add(record.Amount)
		}
	}

	s.LogInfo(ctx, "Report generated",
		slog.Int("record_count", len(records)),
		slog.String("total_deposits", totalDeposits.String()),
		slog.String("total_withdrawals", totalWithdrawals.String()),
	)
	return &dto.TransactionReport{
		TotalDeposits:    totalDeposits,
		TotalWithdrawals: totalWithdrawals,
	}, nil
}
