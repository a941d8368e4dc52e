package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// IntentStatus indicates the lifecycle state of a write-ahead intent.
type IntentStatus string

const (
	IntentPending   IntentStatus = "PENDING"
	IntentCommitted IntentStatus = "COMMITTED"
)

// IntentEntry is one account mutation plus the ledger record that documents it.
// NewBalance is the absolute post-operation balance, so replaying an entry is idempotent.
type IntentEntry struct {
	AccountNumber string            `json:"accountNumber"`
	NewBalance    decimal.Decimal   `json:"newBalance"`
	Record        TransactionRecord `json:"record"`
}

// Intent is a write-ahead record covering one financial operation. It is
// appended as PENDING before the account table or ledger is touched and marked
// COMMITTED once both are. A PENDING intent found at startup is replayed.
type Intent struct {
	IntentID  string        `json:"intentID"`
	CreatedAt time.Time     `json:"createdAt"`
	Status    IntentStatus  `json:"status"`
	Entries   []IntentEntry `json:"entries"`
}
