package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/abcbank/corebank/internal/core/services"
)

func TestFraudScreenEvaluate(t *testing.T) {
	ctx := context.Background()
	screen := services.NewFraudScreen(decimal.NewFromInt(50000))

	assert.False(t, screen.Evaluate(ctx, decimal.NewFromInt(500)))
	assert.False(t, screen.Evaluate(ctx, decimal.NewFromInt(50000)), "threshold itself is not flagged")
	assert.True(t, screen.Evaluate(ctx, decimal.NewFromInt(50001)))
	assert.True(t, screen.Evaluate(ctx, decimal.RequireFromString("50000.01")))
}
