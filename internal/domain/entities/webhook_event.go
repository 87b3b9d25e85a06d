package entities

import (
	"encoding/json"
	"time"
)

// WebhookEventRecord is the append-only audit log of every inbound gateway
// notification. Records are never deleted; Processed/ErrorMessage tell an
// operator whether dispatch ran and what went wrong.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Payload keeps the raw body exactly as delivered, for auditability and
// idempotency inspection (different gateway versions may vary in schema).

type WebhookEventRecord struct {
	ID           string          `json:"id"`
	EventType    string          `json:"event_type"`
	Payload      json.RawMessage `json:"payload"`
	Processed    bool            `json:"processed"`
	ErrorMessage string          `json:"error_message,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	ProcessedAt  *time.Time      `json:"processed_at,omitempty"`
}
