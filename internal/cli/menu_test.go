package cli_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcbank/corebank/internal/adapters/storage/csvfile"
	"github.com/abcbank/corebank/internal/cli"
	"github.com/abcbank/corebank/internal/core/domain"
	portsrepo "github.com/abcbank/corebank/internal/core/ports/repositories"
	portssvc "github.com/abcbank/corebank/internal/core/ports/services"
	"github.com/abcbank/corebank/internal/core/services"
	"github.com/abcbank/corebank/internal/dto"
)

type testStack struct {
	accountRepo portsrepo.AccountRepository
	ledgerRepo  portsrepo.LedgerRepository
	intentLog   portsrepo.IntentRepository
	txnSvc      portssvc.TransactionSvcFacade
	reversalSvc portssvc.ReversalSvcFacade
	reportSvc   portssvc.ReportSvcFacade
	historySvc  portssvc.HistorySvcFacade
	notifier    portssvc.NotifierSvcFacade
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()
	dir := t.TempDir()
	accounts := filepath.Join(dir, "accounts.csv")
	transactions := filepath.Join(dir, "transactions.csv")
	notifications := filepath.Join(dir, "notifications.csv")
	intents := filepath.Join(dir, "intents.csv")
	require.NoError(t, csvfile.Bootstrap(accounts, transactions, notifications, intents))

	accountRepo := csvfile.NewAccountRepository(accounts)
	ledgerRepo := csvfile.NewLedgerRepository(transactions)
	notificationRepo := csvfile.NewNotificationRepository(notifications)
	intentLog := csvfile.NewIntentLog(intents)

	fraud := services.NewFraudScreen(decimal.NewFromInt(50000))
	notifier := services.NewNotificationService(notificationRepo)

	return &testStack{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		intentLog:   intentLog,
		txnSvc:      services.NewTransactionService(accountRepo, ledgerRepo, intentLog, fraud, notifier),
		reversalSvc: services.NewReversalService(ledgerRepo),
		reportSvc:   services.NewReportService(ledgerRepo),
		historySvc:  services.NewHistoryService(ledgerRepo),
		notifier:    notifier,
	}
}

func newTestMenu(stack *testStack, in io.Reader, out io.Writer) *cli.Menu {
	return cli.NewMenu(in, out,
		stack.txnSvc, stack.reversalSvc, stack.reportSvc, stack.historySvc, stack.notifier)
}

// TestMenuScenario drives a full session against the seeded accounts:
// deposit 500 to 1001, fail to withdraw 20000, transfer 1000 to 1002,
// then view history and the report.
func TestMenuScenario(t *testing.T) {
	stack := newTestStack(t)

	input := strings.Join([]string{
		"1", "1001", "500",
		"2", "1001", "20000",
		"3", "1001", "1002", "1000",
		"6",
		"4", "1001",
		"7",
	}, "\n") + "\n"

	var out bytes.Buffer
	menu := newTestMenu(stack, strings.NewReader(input), &out)

	require.NoError(t, menu.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Deposit successful. New Balance: 10500")
	assert.Contains(t, output, "Insufficient balance")
	assert.Contains(t, output, "Transfer successful. Sender Balance: 9500, Receiver Balance: 9000")
	assert.Contains(t, output, "Total Deposits: 500")
	assert.Contains(t, output, "Total Withdrawals: 0")
	// The history view echoes the account's recorded notifications.
	assert.Contains(t, output, "Deposited 500. New Balance: 10500")
	assert.Contains(t, output, "Transferred 1000 to 1002")
	assert.Contains(t, output, "Exiting...")

	ctx := context.Background()
	sender, err := stack.accountRepo.FindActiveAccount(ctx, "1001")
	require.NoError(t, err)
	assert.True(t, sender.Balance.Equal(decimal.NewFromInt(9500)))

	receiver, err := stack.accountRepo.FindActiveAccount(ctx, "1002")
	require.NoError(t, err)
	assert.True(t, receiver.Balance.Equal(decimal.NewFromInt(9000)))

	// The failed withdrawal left no ledger trace: one deposit plus the transfer pair.
	records, err := stack.ledgerRepo.ScanTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, domain.Deposit, records[0].Kind)
	assert.Equal(t, domain.TransferDebit, records[1].Kind)
	assert.Equal(t, domain.TransferCredit, records[2].Kind)
	assert.True(t, records[1].Amount.Equal(records[2].Amount))
}

// TestReversalRoundTrip reverses a committed deposit end to end and verifies
// the balance is deliberately left untouched.
func TestReversalRoundTrip(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	result, err := stack.txnSvc.Deposit(ctx, dto.DepositRequest{
		AccountNumber: "1001",
		Amount:        decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	reversed, err := stack.reversalSvc.Reverse(ctx, result.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, domain.Reversed, reversed.Status)

	// Reversal flips only the ledger flag; no balance restoration happens.
	account, err := stack.accountRepo.FindActiveAccount(ctx, "1001")
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(10500)))

	// Reversed records still count toward the report totals.
	report, err := stack.reportSvc.Generate(ctx)
	require.NoError(t, err)
	assert.True(t, report.TotalDeposits.Equal(decimal.NewFromInt(500)))

	// A second reversal of the same record is rejected.
	_, err = stack.reversalSvc.Reverse(ctx, result.TransactionID)
	require.Error(t, err)
}

// TestRecoveryReplaysInterruptedOperation simulates a crash that left an
// intent PENDING with neither store touched, then verifies startup recovery
// applies the balance and ledger row exactly once.
func TestRecoveryReplaysInterruptedOperation(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	record := domain.TransactionRecord{
		TransactionID: "txn-interrupted",
		AccountNumber: "1001",
		Kind:          domain.Deposit,
		Amount:        decimal.NewFromInt(500),
		Timestamp:     time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		Status:        domain.Success,
	}
	require.NoError(t, stack.intentLog.BeginIntent(ctx, domain.Intent{
		IntentID:  "intent-interrupted",
		CreatedAt: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		Status:    domain.IntentPending,
		Entries: []domain.IntentEntry{
			{AccountNumber: "1001", NewBalance: decimal.NewFromInt(10500), Record: record},
		},
	}))

	recovered, err := stack.txnSvc.RecoverPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)

	account, err := stack.accountRepo.FindActiveAccount(ctx, "1001")
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(10500)))

	replayed, err := stack.ledgerRepo.FindTransactionByID(ctx, "txn-interrupted")
	require.NoError(t, err)
	assert.Equal(t, domain.Deposit, replayed.Kind)

	// Recovery is one-shot: a second pass finds nothing pending.
	recovered, err = stack.txnSvc.RecoverPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, recovered)
}

// TestRecoveryCompletesPartialTransfer simulates a crash between the two
// ledger appends of a transfer: the debit side is durable, the credit side is
// not. Recovery must append only the missing credit row and leave the applied
// debit untouched.
func TestRecoveryCompletesPartialTransfer(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	stamp := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	debit := domain.TransactionRecord{
		TransactionID: "txn-debit",
		AccountNumber: "1001",
		Kind:          domain.TransferDebit,
		Amount:        decimal.NewFromInt(1000),
		Timestamp:     stamp,
		Status:        domain.Success,
	}
	credit := domain.TransactionRecord{
		TransactionID: "txn-credit",
		AccountNumber: "1002",
		Kind:          domain.TransferCredit,
		Amount:        decimal.NewFromInt(1000),
		Timestamp:     stamp,
		Status:        domain.Success,
	}
	require.NoError(t, stack.intentLog.BeginIntent(ctx, domain.Intent{
		IntentID:  "intent-partial",
		CreatedAt: stamp,
		Status:    domain.IntentPending,
		Entries: []domain.IntentEntry{
			{AccountNumber: "1001", NewBalance: decimal.NewFromInt(9000), Record: debit},
			{AccountNumber: "1002", NewBalance: decimal.NewFromInt(9000), Record: credit},
		},
	}))

	// The debit side made it to disk before the crash.
	require.NoError(t, stack.accountRepo.ReplaceBalance(ctx, "1001", decimal.NewFromInt(9000)))
	require.NoError(t, stack.ledgerRepo.AppendTransaction(ctx, debit))

	recovered, err := stack.txnSvc.RecoverPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)

	// Exactly the missing credit row was filled in; the debit is not doubled.
	records, err := stack.ledgerRepo.ScanTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	replayed, err := stack.ledgerRepo.FindTransactionByID(ctx, "txn-credit")
	require.NoError(t, err)
	assert.Equal(t, domain.TransferCredit, replayed.Kind)

	// Both balances sit at the intent's absolute values.
	sender, err := stack.accountRepo.FindActiveAccount(ctx, "1001")
	require.NoError(t, err)
	assert.True(t, sender.Balance.Equal(decimal.NewFromInt(9000)))

	receiver, err := stack.accountRepo.FindActiveAccount(ctx, "1002")
	require.NoError(t, err)
	assert.True(t, receiver.Balance.Equal(decimal.NewFromInt(9000)))

	recovered, err = stack.txnSvc.RecoverPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, recovered)
}

// TestRunReturnsReadError distinguishes an input read failure from a plain
// EOF: the former surfaces as an error from Run, the latter ends the loop
// cleanly.
func TestRunReturnsReadError(t *testing.T) {
	stack := newTestStack(t)

	readErr := errors.New("input gone")
	var out bytes.Buffer
	menu := newTestMenu(stack, iotest.ErrReader(readErr), &out)

	err := menu.Run(context.Background())
	assert.ErrorIs(t, err, readErr)

	eofMenu := newTestMenu(stack, strings.NewReader(""), &out)
	assert.NoError(t, eofMenu.Run(context.Background()))
}
