package services

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
)

// FraudScreen flags transactions whose amount exceeds a fixed threshold.
// It is purely advisory: a flag warns the console observer and never blocks
// or alters the transaction. No state is retained between calls.
type FraudScreen struct {
	BaseService
	threshold decimal.Decimal
}

// NewFraudScreen creates a FraudScreen with the given flagging threshold.
func NewFraudScreen(threshold decimal.Decimal) *FraudScreen {
	return &FraudScreen{threshold: threshold}
}

// Evaluate reports whether the amount exceeds the threshold, warning the
// observer when it does.
func (f *FraudScreen) Evaluate(ctx context.Context, amount decimal.Decimal) bool {
	if amount.LessThanOrEqual(f.threshold) {
		return false
	}
	f.LogWarn(ctx, "High value transaction flagged",
		slog.String("amount", amount.String()),
		slog.String("threshold", f.threshold.String()),
	)
	return true
}
