package services

import (
	"context"

	"github.com/abcbank/corebank/internal/core/domain"
	"github.com/abcbank/corebank/internal/dto"
)

// ReversalSvcFacade marks historical ledger records as void.
type ReversalSvcFacade interface {
	// Reverse flips the record's status to REVERSED and returns the updated
	// record. It does not touch account balances; any balance correction is a
	// separate administrative action.
	Reverse(ctx context.Context, transactionID string) (*domain.TransactionRecord, error)
}

// ReportSvcFacade aggregates ledger totals.
type ReportSvcFacade interface {
	// Generate scans the full ledger once and sums amounts for DEPOSIT and
	// WITHDRAW records regardless of status.
	Generate(ctx context.Context) (*dto.TransactionReport, error)
}

// HistorySvcFacade serves per-account transaction history views.
type HistorySvcFacade interface {
	// View returns all ledger records for the account in append order.
	View(ctx context.Context, accountNumber string) ([]domain.TransactionRecord, error)
}

// NotifierSvcFacade records human-readable events and mirrors them to the
// console observer. Strictly downstream of financial state: failures propagate
// but never undo a committed balance or ledger change.
type NotifierSvcFacade interface {
	Notify(ctx context.Context, accountNumber, message string) error

	// History returns all recorded notifications for the account in append order.
	History(ctx context.Context, accountNumber string) ([]domain.NotificationRecord, error)
}
