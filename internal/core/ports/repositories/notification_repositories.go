package repositories

import (
	"context"

	"github.com/abcbank/corebank/internal/core/domain"
)

// NotificationRepository defines operations for the notification log.
type NotificationRepository interface {
	// SaveNotification appends one write-once record to the notification log.
	SaveNotification(ctx context.Context, record domain.NotificationRecord) error

	// ListNotificationsByAccount retrieves all notifications for one account in append order.
	ListNotificationsByAccount(ctx context.Context, accountNumber string) ([]domain.NotificationRecord, error)
}
