package services

import (
	"context"

	"github.com/abcbank/corebank/internal/dto"
)

// TransactionSvcFacade defines the user-facing financial operations. Each call
// performs one complete operation: validate, mutate the account table, append
// to the ledger, notify.
type TransactionSvcFacade interface {
	// Deposit credits an active account and appends a DEPOSIT record.
	Deposit(ctx context.Context, req dto.DepositRequest) (*dto.TransactionResult, error)

	// Withdraw debits an active account and appends a WITHDRAW record.
	// Fails with apperrors.ErrInsufficientBalance before any state changes.
	Withdraw(ctx context.Context, req dto.WithdrawRequest) (*dto.TransactionResult, error)

	// Transfer moves an amount between two active accounts, appending a
	// TRANSFER_DEBIT and a TRANSFER_CREDIT record with equal amounts.
	Transfer(ctx context.Context, req dto.TransferRequest) (*dto.TransferResult, error)

	// RecoverPending replays intents left PENDING by a crash and returns the
	// number recovered. Called once at startup before any operation.
	RecoverPending(ctx context.Context) (int, error)
}
