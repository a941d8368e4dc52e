package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/abcbank/corebank/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindActiveAccount retrieves an account by number if its status is active.
	// Missing and inactive accounts both yield apperrors.ErrAccountNotFound.
	FindActiveAccount(ctx context.Context, accountNumber string) (*domain.Account, error)

	// ListAccounts retrieves every row of the account table in file order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// ReplaceBalance rewrites the account table with the one row's balance
	// replaced. All other fields of the row are preserved byte for byte.
	ReplaceBalance(ctx context.Context, accountNumber string, newBalance decimal.Decimal) error
}

// AccountRepository combines all account-related repository interfaces.
type AccountRepository interface {
	AccountReader
	AccountWriter
}
