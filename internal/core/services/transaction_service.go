package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/abcbank/corebank/internal/apperrors"
	"github.com/abcbank/corebank/internal/core/domain"
	portsrepo "github.com/abcbank/corebank/internal/core/ports/repositories"
	portssvc "github.com/abcbank/corebank/internal/core/ports/services"
	"github.com/abcbank/corebank/internal/dto"
)

// transactionService orchestrates the account table, fraud screen, ledger and
// notification sink to perform one financial operation per call.
//
// Every operation records a write-ahead intent before the account table or
// ledger is touched. The intent carries the absolute post-operation balances
// and the exact ledger rows, so a crash between the two store writes is
// repaired by RecoverPending at the next startup.
type transactionService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
	ledgerRepo  portsrepo.LedgerRepository
	intentRepo  portsrepo.IntentRepository
	fraud       *FraudScreen
	notifier    portssvc.NotifierSvcFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	accountRepo portsrepo.AccountRepository,
	ledgerRepo portsrepo.LedgerRepository,
	intentRepo portsrepo.IntentRepository,
	fraud *FraudScreen,
	notifier portssvc.NotifierSvcFacade,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		intentRepo:  intentRepo,
		fraud:       fraud,
		notifier:    notifier,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func newTransactionRecord(accountNumber string, kind domain.TransactionKind, amount decimal.Decimal, now time.Time) domain.TransactionRecord {
	return domain.TransactionRecord{
		TransactionID: uuid.NewString(),
		AccountNumber: accountNumber,
		Kind:          kind,
		Amount:        amount,
		Timestamp:     now,
		Status:        domain.Success,
	}
}

// applyIntent makes the balance-update + ledger-append pair recoverable: the
// intent is durable as PENDING before either store changes and flips to
// COMMITTED only after both have.
func (s *transactionService) applyIntent(ctx context.Context, entries []domain.IntentEntry) error {
	intent := domain.Intent{
		IntentID:  uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Status:    domain.IntentPending,
		Entries:   entries,
	}
	if err := s.intentRepo.BeginIntent(ctx, intent); err != nil {
		return fmt.Errorf("failed to begin intent: %w", err)
	}
	for _, entry := range entries {
		if err := s.accountRepo.ReplaceBalance(ctx, entry.AccountNumber, entry.NewBalance); err != nil {
			return fmt.Errorf("failed to update balance for account %s: %w", entry.AccountNumber, err)
		}
	}
	for _, entry := range entries {
		if err := s.ledgerRepo.AppendTransaction(ctx, entry.Record); err != nil {
			return fmt.Errorf("failed to append transaction %s: %w", entry.Record.TransactionID, err)
		}
	}
	if err := s.intentRepo.MarkIntentCommitted(ctx, intent.IntentID); err != nil {
		return fmt.Errorf("failed to commit intent %s: %w", intent.IntentID, err)
	}
	return nil
}

// Deposit credits an active account and appends a DEPOSIT record.
func (s *transactionService) Deposit(ctx context.Context, req dto.DepositRequest) (*dto.TransactionResult, error) {
	account, err := s.accountRepo.FindActiveAccount(ctx, req.AccountNumber)
	if err != nil {
		return nil, err
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: deposit amount must be positive, got %s", apperrors.ErrInvalidAmount, req.Amount)
	}

	flagged := s.fraud.Evaluate(ctx, req.Amount)

	now := time.Now().UTC()
	newBalance := account.Balance.Add(req.Amount)
	record := newTransactionRecord(req.AccountNumber, domain.Deposit, req.Amount, now)

	err = s.applyIntent(ctx, []domain.IntentEntry{
		{AccountNumber: req.AccountNumber, NewBalance: newBalance, Record: record},
	})
	if err != nil {
		s.LogError(ctx, err, "Deposit failed", slog.String("account_number", req.AccountNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Deposit committed",
		slog.String("account_number", req.AccountNumber),
		slog.String("transaction_id", record.TransactionID),
		slog.String("amount", req.Amount.String()),
	)

	result := &dto.TransactionResult{
		TransactionID: record.TransactionID,
		AccountNumber: req.AccountNumber,
		Kind:          domain.Deposit,
		Amount:        req.Amount,
		NewBalance:    newBalance,
		FraudFlagged:  flagged,
	}

	message := fmt.Sprintf("Deposited %s. New Balance: %s", req.Amount, newBalance)
	if err := s.notifier.Notify(ctx, req.AccountNumber, message); err != nil {
		// The deposit is committed; the notification is strictly downstream.
		return result, fmt.Errorf("deposit committed but notification failed: %w", err)
	}
	return result, nil
}

// Withdraw debits an active account and appends a WITHDRAW record.
func (s *transactionService) Withdraw(ctx context.Context, req dto.WithdrawRequest) (*dto.TransactionResult, error) {
	account, err := s.accountRepo.FindActiveAccount(ctx, req.AccountNumber)
	if err != nil {
		return nil, err
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: withdrawal amount must be positive, got %s", apperrors.ErrInvalidAmount, req.Amount)
	}
	if account.Balance.LessThan(req.Amount) {
		return nil, fmt.Errorf("%w: balance %s, requested %s", apperrors.ErrInsufficientBalance, account.Balance, req.Amount)
	}

	flagged := s.fraud.Evaluate(ctx, req.Amount)

	now := time.Now().UTC()
	newBalance := account.Balance.Sub(req.Amount)
	record := newTransactionRecord(req.AccountNumber, domain.Withdraw, req.Amount, now)

	err = s.applyIntent(ctx, []domain.IntentEntry{
		{AccountNumber: req.AccountNumber, NewBalance: newBalance, Record: record},
	})
	if err != nil {
		s.LogError(ctx, err, "Withdrawal failed", slog.String("account_number", req.AccountNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Withdrawal committed",
		slog.String("account_number", req.AccountNumber),
		slog.String("transaction_id", record.TransactionID),
		slog.String("amount", req.Amount.String()),
	)

	result := &dto.TransactionResult{
		TransactionID: record.TransactionID,
		AccountNumber: req.AccountNumber,
		Kind:          domain.Withdraw,
		Amount:        req.Amount,
		NewBalance:    newBalance,
		FraudFlagged:  flagged,
	}

	message := fmt.Sprintf("Withdrawn %s. New Balance: %s", req.Amount, newBalance)
	if err := s.notifier.Notify(ctx, req.AccountNumber, message); err != nil {
		return result, fmt.Errorf("withdrawal committed but notification failed: %w", err)
	}
	return result, nil
}

// Transfer moves an amount between two active accounts. The debit and credit
// records carry the same amount under independent identifiers; both rows plus
// both balance updates are covered by a single intent.
func (s *transactionService) Transfer(ctx context.Context, req dto.TransferRequest) (*dto.TransferResult, error) {
	if req.SenderNumber == req.ReceiverNumber {
		return nil, fmt.Errorf("%w: sender and receiver must differ", apperrors.ErrInvalidAmount)
	}

	sender, err := s.accountRepo.FindActiveAccount(ctx, req.SenderNumber)
	if err != nil {
		return nil, err
	}
	receiver, err := s.accountRepo.FindActiveAccount(ctx, req.ReceiverNumber)
	if err != nil {
		return nil, err
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: transfer amount must be positive, got %s", apperrors.ErrInvalidAmount, req.Amount)
	}
	if sender.Balance.LessThan(req.Amount) {
		return nil, fmt.Errorf("%w: balance %s, requested %s", apperrors.ErrInsufficientBalance, sender.Balance, req.Amount)
	}

	flagged := s.fraud.Evaluate(ctx, req.Amount)

	now := time.Now().UTC()
	senderBalance := sender.Balance.Sub(req.Amount)
	receiverBalance := receiver.Balance.Add(req.Amount)
	debit := newTransactionRecord(req.SenderNumber, domain.TransferDebit, req.Amount, now)
	credit := newTransactionRecord(req.ReceiverNumber, domain.TransferCredit, req.Amount, now)

	err = s.applyIntent(ctx, []domain.IntentEntry{
		{AccountNumber: req.SenderNumber, NewBalance: senderBalance, Record: debit},
		{AccountNumber: req.ReceiverNumber, NewBalance: receiverBalance, Record: credit},
	})
	if err != nil {
		s.LogError(ctx, err, "Transfer failed",
			slog.String("sender", req.SenderNumber),
			slog.String("receiver", req.ReceiverNumber),
		)
		return nil, err
	}

	s.LogInfo(ctx, "Transfer committed",
		slog.String("sender", req.SenderNumber),
		slog.String("receiver", req.ReceiverNumber),
		slog.String("amount", req.Amount.String()),
		slog.String("debit_transaction_id", debit.TransactionID),
		slog.String("credit_transaction_id", credit.TransactionID),
	)

	result := &dto.TransferResult{
		DebitTransactionID:  debit.TransactionID,
		CreditTransactionID: credit.TransactionID,
		SenderNumber:        req.SenderNumber,
		ReceiverNumber:      req.ReceiverNumber,
		Amount:              req.Amount,
		SenderBalance:       senderBalance,
		ReceiverBalance:     receiverBalance,
		FraudFlagged:        flagged,
	}

	if err := s.notifier.Notify(ctx, req.SenderNumber, fmt.Sprintf("Transferred %s to %s", req.Amount, req.ReceiverNumber)); err != nil {
		return result, fmt.Errorf("transfer committed but notification failed: %w", err)
	}
	if err := s.notifier.Notify(ctx, req.ReceiverNumber, fmt.Sprintf("Received %s from %s", req.Amount, req.SenderNumber)); err != nil {
		return result, fmt.Errorf("transfer committed but notification failed: %w", err)
	}
	return result, nil
}

// RecoverPending replays intents left PENDING by a crash. A ledger row already
// present means its entry completed, so the entry is skipped; otherwise the
// absolute balance from the intent is reapplied and the row appended. Replay
// is idempotent either way.
func (s *transactionService) RecoverPending(ctx context.Context) (int, error) {
	pending, err := s.intentRepo.ListPendingIntents(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list pending intents: %w", err)
	}

	recovered := 0
	for _, intent := range pending {
		for _, entry := range intent.Entries {
			_, err := s.ledgerRepo.FindTransactionByID(ctx, entry.Record.TransactionID)
			if err == nil {
				continue
			}
			if !errors.Is(err, apperrors.ErrTransactionNotFound) {
				return recovered, fmt.Errorf("failed to inspect ledger during recovery: %w", err)
			}
			if err := s.accountRepo.ReplaceBalance(ctx, entry.AccountNumber, entry.NewBalance); err != nil {
				return recovered, fmt.Errorf("failed to replay balance for account %s: %w", entry.AccountNumber, err)
			}
			if err := s.ledgerRepo.AppendTransaction(ctx, entry.Record); err != nil {
				return recovered, fmt.Errorf("failed to replay transaction %s: %w", entry.Record.TransactionID, err)
			}
		}
		if err := s.intentRepo.MarkIntentCommitted(ctx, intent.IntentID); err != nil {
			return recovered, fmt.Errorf("failed to commit recovered intent %s: %w", intent.IntentID, err)
		}
		recovered++
		s.LogInfo(ctx, "Recovered pending intent", slog.String("intent_id", intent.IntentID))
	}
	return recovered, nil
}
