package entities

import "time"

type UserRole string

const (
	RoleCollector    UserRole = "collector"
	RoleManager      UserRole = "manager"
	RoleCompanyAdmin UserRole = "company_admin"
)

// Collector is a tenant user with collection duties. Managers and admins share
// the same table; CommissionPercentage only matters for collectors and Branch
// scopes what a manager may touch.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tenant_id-index): tenant_id

type Collector struct {
	ID                   string    `json:"id"`
	TenantID             string    `json:"tenant_id"`
	Name                 string    `json:"name"`
	Role                 UserRole  `json:"role"`
	Branch               string    `json:"branch,omitempty"`
	CommissionPercentage float64   `json:"commission_percentage"`
	CreatedAt            time.Time `json:"created_at"`
}

// Principal is the authenticated caller supplied by the session layer. This
// engine only consumes it; issuing/validating sessions lives elsewhere.

type Principal struct {
	UserID   string   `json:"user_id"`
	TenantID string   `json:"tenant_id"`
	Role     UserRole `json:"role"`
	Branch   string   `json:"branch,omitempty"`
}
