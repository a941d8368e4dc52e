package dto

import "github.com/shopspring/decimal"

// TransactionReport represents the ledger-wide totals report. Sums are grouped
// by kind over the full ledger and include reversed records, matching the
// observed reporting behavior.
type TransactionReport struct {
	TotalDeposits    decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals decimal.Decimal `json:"totalWithdrawals"`
}
