package dto

import (
	"github.com/shopspring/decimal"

	"github.com/abcbank/corebank/internal/core/domain"
)

// DepositRequest carries the inputs of a deposit operation.
type DepositRequest struct {
	AccountNumber string          `json:"accountNumber" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"required,gt=0"`
}

// WithdrawRequest carries the inputs of a withdrawal operation.
type WithdrawRequest struct {
	AccountNumber string          `json:"accountNumber" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"required,gt=0"`
}

// TransferRequest carries the inputs of a transfer operation.
type TransferRequest struct {
	SenderNumber   string          `json:"senderNumber" validate:"required"`
	ReceiverNumber string          `json:"receiverNumber" validate:"required,nefield=SenderNumber"`
	Amount         decimal.Decimal `json:"amount" validate:"required,gt=0"`
}

// TransactionResult reports the outcome of a committed deposit or withdrawal.
type TransactionResult struct {
	TransactionID string                 `json:"transactionID"`
	AccountNumber string                 `json:"accountNumber"`
	Kind          domain.TransactionKind `json:"kind"`
	Amount        decimal.Decimal        `json:"amount"`
	NewBalance    decimal.Decimal        `json:"newBalance"`
	FraudFlagged  bool                   `json:"fraudFlagged"`
}

// TransferResult reports the outcome of a committed transfer. The debit and
// credit records carry the same amount under independent identifiers.
type TransferResult struct {
	DebitTransactionID  string          `json:"debitTransactionID"`
	CreditTransactionID string          `json:"creditTransactionID"`
	SenderNumber        string          `json:"senderNumber"`
	ReceiverNumber      string          `json:"receiverNumber"`
	Amount              decimal.Decimal `json:"amount"`
	SenderBalance       decimal.Decimal `json:"senderBalance"`
	ReceiverBalance     decimal.Decimal `json:"receiverBalance"`
	FraudFlagged        bool            `json:"fraudFlagged"`
}
