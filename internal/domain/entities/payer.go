package entities

import "time"

// Payer is the local record of a person or entity owing money.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tenant_document-index): PK tenant_id, SK document
//
// Invariant: at most one Payer per (tenant_id, document). The document is a
// CPF/CNPJ and is unique per tenant, not globally. AsaasCustomerID links the
// payer to the gateway-side customer and may be rewritten when the stored id
// turns out stale (the gateway no longer knows it).

type Payer struct {
	ID              string    `json:"id"`
	TenantID        string    `json:"tenant_id"`
	Name            string    `json:"name"`
	Document        string    `json:"document"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	AsaasCustomerID string    `json:"asaas_customer_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
