package usecase

import (
	"context"
	"errors"
	"os"
	"strings"

	"cobranca_campo/internal/usecase/interfaces"
)

// ErrPaymentNotConfigured means neither the tenant nor the process carries a
// usable gateway key. Handlers must surface it as a user-facing "payment not
// configured" condition, not a generic 500.
var ErrPaymentNotConfigured = errors.New("payment gateway not configured for this company")

// ICredentialResolver resolves the Asaas API key for a tenant: the tenant's
// own key when present, otherwise the process-wide ASAAS_API_KEY fallback.
// Pure lookup, no state mutation.

type ICredentialResolver interface {
	ResolveAPIKey(ctx context.Context, tenantID string) (string, error)
}

type CredentialResolver struct {
	tenantRepo interfaces.ITenantRepository
}

var _ ICredentialResolver = (*CredentialResolver)(nil)

func NewCredentialResolver(tenantRepo interfaces.ITenantRepository) *CredentialResolver {
	return &CredentialResolver{tenantRepo: tenantRepo}
}

func (r *CredentialResolver) ResolveAPIKey(ctx context.Context, tenantID string) (string, error) {
	key := ""
	if tenantID != "" && r.tenantRepo != nil {
		t, err := r.tenantRepo.GetByID(ctx, tenantID)
		if err != nil {
			return "", err
		}
		key = strings.TrimSpace(t.AsaasAPIKey)
	}
	if key == "" {
		key = strings.TrimSpace(os.Getenv("ASAAS_API_KEY"))
	}
	if key == "" {
		return "", ErrPaymentNotConfigured
	}
	return key, nil
}
