package config

import (
	"log"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DataDir           string
	AccountsFile      string
	TransactionsFile  string
	NotificationsFile string
	IntentsFile       string
	FraudThreshold    decimal.Decimal
	IsProduction      bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("ACCOUNTS_FILE", "accounts.csv")
	viper.SetDefault("TRANSACTIONS_FILE", "transactions.csv")
	viper.SetDefault("NOTIFICATIONS_FILE", "notifications.csv")
	viper.SetDefault("INTENTS_FILE", "intents.csv")
	viper.SetDefault("FRAUD_THRESHOLD", "50000")
	viper.SetDefault("IS_PRODUCTION", false)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DataDir = viper.GetString("DATA_DIR")
	cfg.AccountsFile = filepath.Join(cfg.DataDir, viper.GetString("ACCOUNTS_FILE"))
	cfg.TransactionsFile = filepath.Join(cfg.DataDir, viper.GetString("TRANSACTIONS_FILE"))
	cfg.NotificationsFile = filepath.Join(cfg.DataDir, viper.GetString("NOTIFICATIONS_FILE"))
	cfg.IntentsFile = filepath.Join(cfg.DataDir, viper.GetString("INTENTS_FILE"))

	thresholdStr := viper.GetString("FRAUD_THRESHOLD")
	threshold, err := decimal.NewFromString(thresholdStr)
	if err != nil {
		threshold = decimal.NewFromInt(50000)
		log.Printf("Warning: Invalid value for FRAUD_THRESHOLD ('%s'). Defaulting to %s.\n", thresholdStr, threshold.String())
	}
	cfg.FraudThreshold = threshold

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	return cfg, nil
}
