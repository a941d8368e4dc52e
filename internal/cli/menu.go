// Package cli implements the interactive menu loop. It owns input parsing,
// request validation and error presentation; all financial semantics live in
// the service layer it calls into.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/abcbank/corebank/internal/apperrors"
	portssvc "github.com/abcbank/corebank/internal/core/ports/services"
	"github.com/abcbank/corebank/internal/dto"
)

// Menu drives the interactive banking session over an input/output pair.
type Menu struct {
	in          *bufio.Scanner
	out         io.Writer
	validate    *validator.Validate
	txnSvc      portssvc.TransactionSvcFacade
	reversalSvc portssvc.ReversalSvcFacade
	reportSvc   portssvc.ReportSvcFacade
	historySvc  portssvc.HistorySvcFacade
	notifierSvc portssvc.NotifierSvcFacade
}

// NewMenu creates a Menu reading choices from in and writing prompts to out.
func NewMenu(
	in io.Reader,
	out io.Writer,
	txnSvc portssvc.TransactionSvcFacade,
	reversalSvc portssvc.ReversalSvcFacade,
	reportSvc portssvc.ReportSvcFacade,
	historySvc portssvc.HistorySvcFacade,
	notifierSvc portssvc.NotifierSvcFacade,
) *Menu {
	v := validator.New()
	// Teach the validator to treat decimal amounts as numbers so that gt=0
	// tags work on dto fields.
	v.RegisterCustomTypeFunc(decimalAsFloat, decimal.Decimal{})
	return &Menu{
		in:          bufio.NewScanner(in),
		out:         out,
		validate:    v,
		txnSvc:      txnSvc,
		reversalSvc: reversalSvc,
		reportSvc:   reportSvc,
		historySvc:  historySvc,
		notifierSvc: notifierSvc,
	}
}

func decimalAsFloat(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// Run loops over the menu until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, "\n===== ABC BANKING SYSTEM =====")
		fmt.Fprintln(m.out, "1 Deposit")
		fmt.Fprintln(m.out, "2 Withdraw")
		fmt.Fprintln(m.out, "3 Transfer")
		fmt.Fprintln(m.out, "4 History")
		fmt.Fprintln(m.out, "5 Reverse Transaction")
		fmt.Fprintln(m.out, "6 Report")
		fmt.Fprintln(m.out, "7 Exit")

		choice, ok := m.prompt("Enter choice: ")
		if !ok {
			// Scan returns false on both EOF and a read failure; only the
			// latter surfaces through Err.
			return m.in.Err()
		}

		switch strings.TrimSpace(choice) {
		case "1":
			m.runDeposit(ctx)
		case "2":
			m.runWithdraw(ctx)
		case "3":
			m.runTransfer(ctx)
		case "4":
			m.runHistory(ctx)
		case "5":
			m.runReversal(ctx)
		case "6":
			m.runReport(ctx)
		case "7":
			fmt.Fprintln(m.out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice")
		}
	}
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) promptAmount(label string) (decimal.Decimal, bool) {
	raw, ok := m.prompt(label)
	if !ok {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid amount")
		return decimal.Zero, false
	}
	return amount, true
}

func (m *Menu) runDeposit(ctx context.Context) {
	account, ok := m.prompt("Account No: ")
	if !ok {
		return
	}
	amount, ok := m.promptAmount("Amount: ")
	if !ok {
		return
	}
	req := dto.DepositRequest{AccountNumber: account, Amount: amount}
	if err := m.validate.Struct(req); err != nil {
		fmt.Fprintln(m.out, "Invalid deposit request")
		return
	}
	result, err := m.txnSvc.Deposit(ctx, req)
	if err != nil {
		fmt.Fprintln(m.out, errorMessage(err))
		return
	}
	fmt.Fprintf(m.out, "Deposit successful. New Balance: %s\n", result.NewBalance)
}

func (m *Menu) runWithdraw(ctx context.Context) {
	account, ok := m.prompt("Account No: ")
	if !ok {
		return
	}
	amount, ok := m.promptAmount("Amount: ")
	if !ok {
		return
	}
	req := dto.WithdrawRequest{AccountNumber: account, Amount: amount}
	if err := m.validate.Struct(req); err != nil {
		fmt.Fprintln(m.out, "Invalid withdrawal request")
		return
	}
	result, err := m.txnSvc.Withdraw(ctx, req)
	if err != nil {
		fmt.Fprintln(m.out, errorMessage(err))
		return
	}
	fmt.Fprintf(m.out, "Withdrawal successful. New Balance: %s\n", result.NewBalance)
}

func (m *Menu) runTransfer(ctx context.Context) {
	sender, ok := m.prompt("Sender: ")
	if !ok {
		return
	}
	receiver, ok := m.prompt("Receiver: ")
	if !ok {
		return
	}
	amount, ok := m.promptAmount("Amount: ")
	if !ok {
		return
	}
	req := dto.TransferRequest{SenderNumber: sender, ReceiverNumber: receiver, Amount: amount}
	if err := m.validate.Struct(req); err != nil {
		fmt.Fprintln(m.out, "Invalid transfer request")
		return
	}
	result, err := m.txnSvc.Transfer(ctx, req)
	if err != nil {
		fmt.Fprintln(m.out, errorMessage(err))
		return
	}
	fmt.Fprintf(m.out, "Transfer successful. Sender Balance: %s, Receiver Balance: %s\n",
		result.SenderBalance, result.ReceiverBalance)
}

func (m *Menu) runHistory(ctx context.Context) {
	account, ok := m.prompt("Account No: ")
	if !ok {
		return
	}
	records, err := m.historySvc.View(ctx, account)
	if err != nil {
		fmt.Fprintln(m.out, errorMessage(err))
		return
	}
	fmt.Fprintln(m.out, "\nTransaction History:")
	for _, record := range records {
		fmt.Fprintf(m.out, "%s  %-15s  %10s  %s  %s\n",
			record.TransactionID, record.Kind, record.Amount,
			record.Timestamp.Format("2006-01-02 15:04:05"), record.Status)
	}

	notifications, err := m.notifierSvc.History(ctx, account)
	if err != nil {
		fmt.Fprintln(m.out, errorMessage(err))
		return
	}
	if len(notifications) > 0 {
		fmt.Fprintln(m.out, "\nNotifications:")
		for _, notification := range notifications {
			fmt.Fprintf(m.out, "%s  %s\n",
				notification.Timestamp.Format("2006-01-02 15:04:05"), notification.Message)
		}
	}
}

func (m *Menu) runReversal(ctx context.Context) {
	transactionID, ok := m.prompt("Transaction ID: ")
	if !ok {
		return
	}
	if _, err := m.reversalSvc.Reverse(ctx, transactionID); err != nil {
		fmt.Fprintln(m.out, errorMessage(err))
		return
	}
	fmt.Fprintln(m.out, "Transaction Reversed")
}

func (m *Menu) runReport(ctx context.Context) {
	report, err := m.reportSvc.Generate(ctx)
	if err != nil {
		fmt.Fprintln(m.out, errorMessage(err))
		return
	}
	fmt.Fprintln(m.out, "\n===== REPORT =====")
	fmt.Fprintf(m.out, "Total Deposits: %s\n", report.TotalDeposits)
	fmt.Fprintf(m.out, "Total Withdrawals: %s\n", report.TotalWithdrawals)
}

// errorMessage maps service errors to the user-facing phrasing.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrAccountNotFound):
		return "Invalid account"
	case errors.Is(err, apperrors.ErrInvalidAmount):
		return "Invalid amount"
	case errors.Is(err, apperrors.ErrInsufficientBalance):
		return "Insufficient balance"
	case errors.Is(err, apperrors.ErrTransactionNotFound):
		return "Transaction not found"
	case errors.Is(err, apperrors.ErrAlreadyReversed):
		return "Transaction already reversed"
	default:
		return "Operation failed: " + err.Error()
	}
}
