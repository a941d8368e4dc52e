package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/abcbank/corebank/internal/adapters/storage/csvfile"
	"github.com/abcbank/corebank/internal/cli"
	"github.com/abcbank/corebank/internal/core/services"
	"github.com/abcbank/corebank/internal/platform/config"
	"github.com/abcbank/corebank/internal/platform/logging"
)

func main() {
	// Structured logs go to stderr so the interactive menu owns stdout.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := csvfile.Bootstrap(cfg.AccountsFile, cfg.TransactionsFile, cfg.NotificationsFile, cfg.IntentsFile); err != nil {
		logger.Error("Failed to bootstrap tables", slog.String("error", err.Error()))
		os.Exit(1)
	}

	accountRepo := csvfile.NewAccountRepository(cfg.AccountsFile)
	ledgerRepo := csvfile.NewLedgerRepository(cfg.TransactionsFile)
	notificationRepo := csvfile.NewNotificationRepository(cfg.NotificationsFile)
	intentLog := csvfile.NewIntentLog(cfg.IntentsFile)

	fraud := services.NewFraudScreen(cfg.FraudThreshold)
	notifier := services.NewNotificationService(notificationRepo)
	txnSvc := services.NewTransactionService(accountRepo, ledgerRepo, intentLog, fraud, notifier)
	reversalSvc := services.NewReversalService(ledgerRepo)
	reportSvc := services.NewReportService(ledgerRepo)
	historySvc := services.NewHistoryService(ledgerRepo)

	ctx := logging.WithLogger(context.Background(), logger)

	// Repair any operation interrupted between the balance update and the
	// ledger append before accepting new ones.
	recovered, err := txnSvc.RecoverPending(ctx)
	if err != nil {
		logger.Error("Intent recovery failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if recovered > 0 {
		logger.Info("Recovered pending intents", slog.Int("count", recovered))
	}

	menu := cli.NewMenu(os.Stdin, os.Stdout, txnSvc, reversalSvc, reportSvc, historySvc, notifier)
	if err := menu.Run(ctx); err != nil {
		logger.Error("Menu loop failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
