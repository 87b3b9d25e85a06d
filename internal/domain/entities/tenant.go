package entities

import "time"

// Tenant is the isolation boundary (a collections company). It owns users,
// payers and charges, and may carry its own Asaas API key. An empty key means
// the process-wide default applies.
//
// Storage model (DynamoDB):
//   - PK: id

type Tenant struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	AsaasAPIKey string    `json:"asaas_api_key,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
