package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/abcbank/corebank/internal/core/domain"
	portsrepo "github.com/abcbank/corebank/internal/core/ports/repositories"
	portssvc "github.com/abcbank/corebank/internal/core/ports/services"
)

// notificationService appends events to the notification log and mirrors each
// message to the console observer.
type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notificationRepo portsrepo.NotificationRepository) portssvc.NotifierSvcFacade {
	return &notificationService{notificationRepo: notificationRepo}
}

var _ portssvc.NotifierSvcFacade = (*notificationService)(nil)

// Notify appends one record and mirrors the message. There is no retry; an
// I/O failure propagates to the caller but never rolls back financial state
// committed before this step.
func (s *notificationService) Notify(ctx context.Context, accountNumber, message string) error {
	record := domain.NotificationRecord{
		NotificationID: uuid.NewString(),
		AccountNumber:  accountNumber,
		Message:        message,
		Timestamp:      time.Now().UTC(),
	}
	if err := s.notificationRepo.SaveNotification(ctx, record); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	s.LogInfo(ctx, "Notification",
		slog.String("account_number", accountNumber),
		slog.String("message", message),
	)
	return nil
}

// History returns the account's recorded notifications in append order.
func (s *notificationService) History(ctx context.Context, accountNumber string) ([]domain.NotificationRecord, error) {
	records, err := s.notificationRepo.ListNotificationsByAccount(ctx, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications for account %s: %w", accountNumber, err)
	}
	return records, nil
}
