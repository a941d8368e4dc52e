package csvfile

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/abcbank/corebank/internal/apperrors"
	"github.com/abcbank/corebank/internal/core/domain"
	portsrepo "github.com/abcbank/corebank/internal/core/ports/repositories"
)

var accountHeader = []string{"account_number", "name", "balance", "status"}

const (
	accColNumber  = 0
	accColName    = 1
	accColBalance = 2
	accColStatus  = 3
)

type accountRepository struct {
	path string
	mu   sync.Mutex
}

// NewAccountRepository creates a repository over the account table at path.
// The single caller assumption of the stores is enforced with one mutex per
// table serializing every read-modify-write cycle.
func NewAccountRepository(path string) portsrepo.AccountRepository {
	return &accountRepository{path: path}
}

var _ portsrepo.AccountRepository = (*accountRepository)(nil)

func parseAccount(row []string) (domain.Account, error) {
	if len(row) != len(accountHeader) {
		return domain.Account{}, fmt.Errorf("expected %d columns, got %d", len(accountHeader), len(row))
	}
	balance, err := decimal.NewFromString(row[accColBalance])
	if err != nil {
		return domain.Account{}, fmt.Errorf("bad balance %q for account %s: %w", row[accColBalance], row[accColNumber], err)
	}
	return domain.Account{
		AccountNumber: row[accColNumber],
		HolderName:    row[accColName],
		Balance:       balance,
		Status:        domain.AccountStatus(row[accColStatus]),
	}, nil
}

// FindActiveAccount retrieves an account by number if it is active. Inactive
// and missing accounts both return apperrors.ErrAccountNotFound.
func (r *accountRepository) FindActiveAccount(ctx context.Context, accountNumber string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := readTable(r.path)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		account, err := parseAccount(row)
		if err != nil {
			return nil, storageErr("parse account table", err)
		}
		if account.AccountNumber == accountNumber && account.IsActive() {
			return &account, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, accountNumber)
}

// ListAccounts retrieves every row of the account table in file order.
func (r *accountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := readTable(r.path)
	if err != nil {
		return nil, err
	}
	accounts := make([]domain.Account, 0, len(rows))
	for _, row := range rows {
		account, err := parseAccount(row)
		if err != nil {
			return nil, storageErr("parse account table", err)
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

// ReplaceBalance rewrites the account table with the one row's balance
// replaced. All other columns are carried over untouched, so the rewrite
// preserves them byte for byte.
func (r *accountRepository) ReplaceBalance(ctx context.Context, accountNumber string, newBalance decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := readTable(r.path)
	if err != nil {
		return err
	}
	found := false
	for _, row := range rows {
		if len(row) == len(accountHeader) && row[accColNumber] == accountNumber {
			row[accColBalance] = newBalance.String()
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, accountNumber)
	}
	return writeTable(r.path, accountHeader, rows)
}
