// Package csvfile implements the repository ports over delimited-text tables.
// Each table is one CSV file with a header row. Mutations rewrite the whole
// table through a temp file and rename, so a crash mid-write never leaves a
// half-written table behind.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abcbank/corebank/internal/apperrors"
)

// timeLayout is the timestamp format used in every table.
const timeLayout = "2006-01-02 15:04:05"

// storageErr wraps an underlying I/O or parse failure so callers can match it
// with errors.Is(err, apperrors.ErrStorage).
func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", apperrors.ErrStorage, op, err)
}

// readTable reads all data rows of the table at path, skipping the header row.
func readTable(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, storageErr("open "+path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	all, err := reader.ReadAll()
	if err != nil {
		return nil, storageErr("read "+path, err)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all[1:], nil
}

// writeTable rewrites the table at path with the given header and rows. The
// write goes to a temp file in the same directory which then replaces the
// table atomically via rename.
func writeTable(path string, header []string, rows [][]string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return storageErr("create temp for "+path, err)
	}
	tmpName := tmp.Name()

	writer := csv.NewWriter(tmp)
	if err := writer.Write(header); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return storageErr("write header "+path, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return storageErr("write "+path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return storageErr("close temp for "+path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return storageErr("replace "+path, err)
	}
	return nil
}

// appendRow appends a single data row to the table at path.
func appendRow(path string, row []string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return storageErr("open "+path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(row); err != nil {
		return storageErr("append "+path, err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return storageErr("flush "+path, err)
	}
	return nil
}
