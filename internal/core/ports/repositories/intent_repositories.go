package repositories

import (
	"context"

	"github.com/abcbank/corebank/internal/core/domain"
)

// IntentRepository defines operations for the write-ahead intent log that
// makes the balance-update + ledger-append pair recoverable after a crash.
type IntentRepository interface {
	// BeginIntent appends the intent with status PENDING. It must be durable
	// before the account table or ledger is touched.
	BeginIntent(ctx context.Context, intent domain.Intent) error

	// MarkIntentCommitted flips the intent's status to COMMITTED.
	MarkIntentCommitted(ctx context.Context, intentID string) error

	// ListPendingIntents retrieves intents still PENDING, in append order.
	ListPendingIntents(ctx context.Context) ([]domain.Intent, error)
}
