package csvfile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/abcbank/corebank/internal/apperrors"
	"github.com/abcbank/corebank/internal/core/domain"
	portsrepo "github.com/abcbank/corebank/internal/core/ports/repositories"
)

var ledgerHeader = []string{"transaction_id", "account_number", "type", "amount", "date", "status"}

const (
	txnColID      = 0
	txnColAccount = 1
	txnColKind    = 2
	txnColAmount  = 3
	txnColDate    = 4
	txnColStatus  = 5
)

type ledgerRepository struct {
	path string
	mu   sync.Mutex
}

// NewLedgerRepository creates a repository over the transaction ledger at path.
// The ledger is append-only; the status column is the only field ever rewritten.
func NewLedgerRepository(path string) portsrepo.LedgerRepository {
	return &ledgerRepository{path: path}
}

var _ portsrepo.LedgerRepository = (*ledgerRepository)(nil)

func parseTransaction(row []string) (domain.TransactionRecord, error) {
	if len(row) != len(ledgerHeader) {
		return domain.TransactionRecord{}, fmt.Errorf("expected %d columns, got %d", len(ledgerHeader), len(row))
	}
	amount, err := decimal.NewFromString(row[txnColAmount])
	if err != nil {
		return domain.TransactionRecord{}, fmt.Errorf("bad amount %q for transaction %s: %w", row[txnColAmount], row[txnColID], err)
	}
	timestamp, err := time.Parse(timeLayout, row[txnColDate])
	if err != nil {
		return domain.TransactionRecord{}, fmt.Errorf("bad date %q for transaction %s: %w", row[txnColDate], row[txnColID], err)
	}
	return domain.TransactionRecord{
		TransactionID: row[txnColID],
		AccountNumber: row[txnColAccount],
		Kind:          domain.TransactionKind(row[txnColKind]),
		Amount:        amount,
		Timestamp:     timestamp,
		Status:        domain.TransactionStatus(row[txnColStatus]),
	}, nil
}

func formatTransaction(record domain.TransactionRecord) []string {
	return []string{
		record.TransactionID,
		record.AccountNumber,
		string(record.Kind),
		record.Amount.String(),
		record.Timestamp.Format(timeLayout),
		string(record.Status),
	}
}

// AppendTransaction adds one immutable record to the end of the ledger.
func (r *ledgerRepository) AppendTransaction(ctx context.Context, record domain.TransactionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return appendRow(r.path, formatTransaction(record))
}

// FindTransactionByID retrieves a single record by its identifier.
func (r *ledgerRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.TransactionRecord, error) {
	records, err := r.ScanTransactions(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].TransactionID == transactionID {
			return &records[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", apperrors.ErrTransactionNotFound, transactionID)
}

// ListTransactionsByAccount retrieves all records for one account in append order.
func (r *ledgerRepository) ListTransactionsByAccount(ctx context.Context, accountNumber string) ([]domain.TransactionRecord, error) {
	records, err := r.ScanTransactions(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.TransactionRecord, 0)
	for _, record := range records {
		if record.AccountNumber == accountNumber {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

// ScanTransactions retrieves the full ledger as committed at open time.
func (r *ledgerRepository) ScanTransactions(ctx context.Context) ([]domain.TransactionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := readTable(r.path)
	if err != nil {
		return nil, err
	}
	records := make([]domain.TransactionRecord, 0, len(rows))
	for _, row := range rows {
		record, err := parseTransaction(row)
		if err != nil {
			return nil, storageErr("parse ledger", err)
		}
		records = append(records, record)
	}
	return records, nil
}

// SetTransactionStatus rewrites the ledger with the one record's status
// replaced. Every other column of every row is carried over untouched.
func (r *ledgerRepository) SetTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := readTable(r.path)
	if err != nil {
		return err
	}
	found := false
	for _, row := range rows {
		if len(row) == len(ledgerHeader) && row[txnColID] == transactionID {
			row[txnColStatus] = string(status)
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", apperrors.ErrTransactionNotFound, transactionID)
	}
	return writeTable(r.path, ledgerHeader, rows)
}
