package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapSeedsDefaults(t *testing.T) {
	dir := t.TempDir()
	accounts := filepath.Join(dir, "data", "accounts.csv")
	transactions := filepath.Join(dir, "data", "transactions.csv")
	notifications := filepath.Join(dir, "data", "notifications.csv")
	intents := filepath.Join(dir, "data", "intents.csv")

	require.NoError(t, Bootstrap(accounts, transactions, notifications, intents))

	repo := NewAccountRepository(accounts)
	account, err := repo.FindActiveAccount(context.Background(), "1001")
	require.NoError(t, err)
	assert.Equal(t, "John", account.HolderName)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(10000)))

	content, err := os.ReadFile(transactions)
	require.NoError(t, err)
	assert.Equal(t, "transaction_id,account_number,type,amount,date,status\n", string(content))
}

func TestBootstrapLeavesExistingTablesAlone(t *testing.T) {
	dir := t.TempDir()
	accounts := filepath.Join(dir, "accounts.csv")
	transactions := filepath.Join(dir, "transactions.csv")
	notifications := filepath.Join(dir, "notifications.csv")
	intents := filepath.Join(dir, "intents.csv")

	custom := "account_number,name,balance,status\n2001,Zed,42,active\n"
	require.NoError(t, os.WriteFile(accounts, []byte(custom), 0o644))

	require.NoError(t, Bootstrap(accounts, transactions, notifications, intents))

	content, err := os.ReadFile(accounts)
	require.NoError(t, err)
	assert.Equal(t, custom, string(content))
}
