package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind enumerates the ledger record types.
type TransactionKind string

const (
	Deposit        TransactionKind = "DEPOSIT"
	Withdraw       TransactionKind = "WITHDRAW"
	TransferDebit  TransactionKind = "TRANSFER_DEBIT"
	TransferCredit TransactionKind = "TRANSFER_CREDIT"
)

// TransactionStatus indicates the state of a ledger record.
type TransactionStatus string

const (
	Success  TransactionStatus = "SUCCESS"
	Reversed TransactionStatus = "REVERSED"
)

// TransactionRecord is one immutable row of the append-only ledger.
// After append, only Status may change, and only from SUCCESS to REVERSED.
type TransactionRecord struct {
	TransactionID string            `json:"transactionID"` // Primary key (UUID)
	AccountNumber string            `json:"accountNumber"` // FK -> Account.AccountNumber, validated by the caller
	Kind          TransactionKind   `json:"kind"`
	Amount        decimal.Decimal   `json:"amount"` // Always positive; sign is implied by Kind
	Timestamp     time.Time         `json:"timestamp"`
	Status        TransactionStatus `json:"status"`
}
