package csvfile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/abcbank/corebank/internal/core/domain"
	portsrepo "github.com/abcbank/corebank/internal/core/ports/repositories"
)

var notificationHeader = []string{"notification_id", "account_number", "message", "date"}

type notificationRepository struct {
	path string
	mu   sync.Mutex
}

// NewNotificationRepository creates a repository over the notification log at path.
func NewNotificationRepository(path string) portsrepo.NotificationRepository {
	return &notificationRepository{path: path}
}

var _ portsrepo.NotificationRepository = (*notificationRepository)(nil)

// SaveNotification appends one write-once record to the notification log.
func (r *notificationRepository) SaveNotification(ctx context.Context, record domain.NotificationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return appendRow(r.path, []string{
		record.NotificationID,
		record.AccountNumber,
		record.Message,
		record.Timestamp.Format(timeLayout),
	})
}

// ListNotificationsByAccount retrieves all notifications for one account in append order.
func (r *notificationRepository) ListNotificationsByAccount(ctx context.Context, accountNumber string) ([]domain.NotificationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := readTable(r.path)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.NotificationRecord, 0)
	for _, row := range rows {
		if len(row) != len(notificationHeader) {
			return nil, storageErr("parse notification log", fmt.Errorf("expected %d columns, got %d", len(notificationHeader), len(row)))
		}
		if row[1] != accountNumber {
			continue
		}
		timestamp, err := time.Parse(timeLayout, row[3])
		if err != nil {
			return nil, storageErr("parse notification log", err)
		}
		matched = append(matched, domain.NotificationRecord{
			NotificationID: row[0],
			AccountNumber:  row[1],
			Message:        row[2],
			Timestamp:      timestamp,
		})
	}
	return matched, nil
}
