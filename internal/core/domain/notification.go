package domain

import "time"

// NotificationRecord is a write-once row of the notification log.
type NotificationRecord struct {
	NotificationID string    `json:"notificationID"`
	AccountNumber  string    `json:"accountNumber"`
	Message        string    `json:"message"`
	Timestamp      time.Time `json:"timestamp"`
}
