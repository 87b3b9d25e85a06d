package usecase

import (
	"context"
	"errors"
	"testing"

	"cobranca_campo/internal/domain/entities"
	mock_interfaces "cobranca_campo/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCredentialResolver_ResolveAPIKey(t *testing.T) {
	t.Run("tenant key wins over env fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tenants := mock_interfaces.NewMockITenantRepository(ctrl)
		r := NewCredentialResolver(tenants)

		t.Setenv("ASAAS_API_KEY", "env-key")
		tenants.EXPECT().GetByID(gomock.Any(), "t-1").
			Return(entities.Tenant{ID: "t-1", AsaasAPIKey: "  tenant-key  "}, nil)

		key, err := r.ResolveAPIKey(context.Background(), "t-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if key != "tenant-key" {
			t.Fatalf("expected tenant-key, got %q", key)
		}
	})

	t.Run("falls back to env when tenant has no key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tenants := mock_interfaces.NewMockITenantRepository(ctrl)
		r := NewCredentialResolver(tenants)

		t.Setenv("ASAAS_API_KEY", "env-key")
		tenants.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.Tenant{ID: "t-1"}, nil)

		key, err := r.ResolveAPIKey(context.Background(), "t-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if key != "env-key" {
			t.Fatalf("expected env-key, got %q", key)
		}
	})

	t.Run("no key anywhere", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tenants := mock_interfaces.NewMockITenantRepository(ctrl)
		r := NewCredentialResolver(tenants)

		t.Setenv("ASAAS_API_KEY", "")
		tenants.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.Tenant{}, nil)

		_, err := r.ResolveAPIKey(context.Background(), "t-1")
		if !errors.Is(err, ErrPaymentNotConfigured) {
			t.Fatalf("expected ErrPaymentNotConfigured, got %v", err)
		}
	})

	t.Run("tenant lookup failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tenants := mock_interfaces.NewMockITenantRepository(ctrl)
		r := NewCredentialResolver(tenants)

		tenants.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.Tenant{}, errors.New("db down"))

		_, err := r.ResolveAPIKey(context.Background(), "t-1")
		if err == nil || err.Error() != "db down" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
