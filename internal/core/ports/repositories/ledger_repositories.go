package repositories

import (
	"context"

	"github.com/abcbank/corebank/internal/core/domain"
)

// LedgerReader defines read operations for the transaction ledger.
type LedgerReader interface {
	// FindTransactionByID retrieves a single ledger record by its identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.TransactionRecord, error)

	// ListTransactionsByAccount retrieves all records for one account in append order.
	ListTransactionsByAccount(ctx context.Context, accountNumber string) ([]domain.TransactionRecord, error)

	// ScanTransactions retrieves the full ledger as committed at open time.
	// Each call re-reads the table from the start; there is no live tailing.
	ScanTransactions(ctx context.Context) ([]domain.TransactionRecord, error)
}

// LedgerWriter defines write operations for the transaction ledger.
type LedgerWriter interface {
	// AppendTransaction adds one immutable record to the end of the ledger.
	AppendTransaction(ctx context.Context, record domain.TransactionRecord) error

	// SetTransactionStatus rewrites the ledger with the one record's status
	// replaced. This is the only permitted post-append mutation.
	SetTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus) error
}

// LedgerRepository combines all ledger-related repository interfaces.
type LedgerRepository interface {
	LedgerReader
	LedgerWriter
}
