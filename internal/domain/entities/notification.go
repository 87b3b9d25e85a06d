package entities

import "time"

// Notification is an in-app message for a tenant user. This engine only
// decides when one is produced (settlements, overdue alerts); delivery beyond
// the row itself belongs to the notification subsystem.
//
// Storage model (DynamoDB):
//   - PK: id

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
