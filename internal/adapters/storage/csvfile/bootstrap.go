package csvfile

import (
	"os"
	"path/filepath"
)

// seedAccounts are the default rows written into a fresh account table.
var seedAccounts = [][]string{
	{"1001", "John", "10000", "active"},
	{"1002", "Adi", "8000", "active"},
}

// Bootstrap creates any missing table file with its header row, seeding the
// account table with the default accounts. Existing files are left untouched.
func Bootstrap(accountsPath, transactionsPath, notificationsPath, intentsPath string) error {
	if err := ensureTable(accountsPath, accountHeader, seedAccounts); err != nil {
		return err
	}
	if err := ensureTable(transactionsPath, ledgerHeader, nil); err != nil {
		return err
	}
	if err := ensureTable(notificationsPath, notificationHeader, nil); err != nil {
		return err
	}
	return ensureTable(intentsPath, intentHeader, nil)
}

func ensureTable(path string, header []string, rows [][]string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return storageErr("stat "+path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return storageErr("mkdir for "+path, err)
	}
	return writeTable(path, header, rows)
}
