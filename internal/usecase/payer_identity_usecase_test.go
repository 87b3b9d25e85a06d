package usecase

import (
	"context"
	"errors"
	"testing"

	"cobranca_campo/internal/domain/entities"
	"cobranca_campo/internal/usecase/interfaces"
	mock_interfaces "cobranca_campo/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPayerIdentityUseCase_Resolve_Validation(t *testing.T) {
	uc := NewPayerIdentityUseCase(nil)

	t.Run("empty name", func(t *testing.T) {
		_, err := uc.Resolve(context.Background(), nil, "tenant-1", PayerInput{Name: "   ", Document: "12345678900"})
		if !errors.Is(err, ErrInvalidPayerName) {
			t.Fatalf("expected ErrInvalidPayerName, got %v", err)
		}
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := uc.Resolve(context.Background(), nil, "tenant-1", PayerInput{Name: "Maria", Document: " "})
		if !errors.Is(err, ErrInvalidDocument) {
			t.Fatalf("expected ErrInvalidDocument, got %v", err)
		}
	})
}

func TestPayerIdentityUseCase_Resolve(t *testing.T) {
	t.Run("stored id still valid is reused without writes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPayerRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPayerIdentityUseCase(repo)

		repo.EXPECT().GetByTenantAndDocument(gomock.Any(), "tenant-1", "12345678900").
			Return(entities.Payer{ID: "payer-1", TenantID: "tenant-1", AsaasCustomerID: "cus_1"}, nil)
		gw.EXPECT().GetCustomer(gomock.Any(), "cus_1").
			Return(entities.GatewayCustomer{ID: "cus_1"}, nil)

		got, err := uc.Resolve(context.Background(), gw, "tenant-1", PayerInput{Name: "Maria", Document: "12345678900"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PayerID != "payer-1" || got.AsaasCustomerID != "cus_1" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("stale stored id is discarded and replaced via search", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPayerRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPayerIdentityUseCase(repo)

		repo.EXPECT().GetByTenantAndDocument(gomock.Any(), "tenant-1", "12345678900").
			Return(entities.Payer{ID: "payer-1", TenantID: "tenant-1", AsaasCustomerID: "cus_stale"}, nil)
		gw.EXPECT().GetCustomer(gomock.Any(), "cus_stale").
			Return(entities.GatewayCustomer{}, &entities.GatewayError{StatusCode: 404, Message: "not found"})
		gw.EXPECT().FindCustomerByDocument(gomock.Any(), "12345678900").
			Return(entities.GatewayCustomer{ID: "cus_new"}, nil)
		repo.EXPECT().UpdateAsaasCustomerID(gomock.Any(), "payer-1", "cus_new").Return(nil)

		got, err := uc.Resolve(context.Background(), gw, "tenant-1", PayerInput{Name: "Maria", Document: "12345678900"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.AsaasCustomerID != "cus_new" {
			t.Fatalf("expected cus_new, got %q", got.AsaasCustomerID)
		}
	})

	t.Run("stored id deleted on gateway gets restored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPayerRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPayerIdentityUseCase(repo)

		repo.EXPECT().GetByTenantAndDocument(gomock.Any(), "tenant-1", "12345678900").
			Return(entities.Payer{ID: "payer-1", TenantID: "tenant-1", AsaasCustomerID: "cus_1"}, nil)
		gw.EXPECT().GetCustomer(gomock.Any(), "cus_1").
			Return(entities.GatewayCustomer{ID: "cus_1", Deleted: true}, nil)
		gw.EXPECT().RestoreCustomer(gomock.Any(), "cus_1").
			Return(entities.GatewayCustomer{ID: "cus_1"}, nil)

		got, err := uc.Resolve(context.Background(), gw, "tenant-1", PayerInput{Name: "Maria", Document: "12345678900"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.AsaasCustomerID != "cus_1" {
			t.Fatalf("expected cus_1, got %q", got.AsaasCustomerID)
		}
	})

	t.Run("restore rejected by gateway is unrestorable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPayerRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPayerIdentityUseCase(repo)

		repo.EXPECT().GetByTenantAndDocument(gomock.Any(), "tenant-1", "12345678900").
			Return(entities.Payer{ID: "payer-1", TenantID: "tenant-1", AsaasCustomerID: "cus_1"}, nil)
		gw.EXPECT().GetCustomer(gomock.Any(), "cus_1").
			Return(entities.GatewayCustomer{ID: "cus_1", Deleted: true}, nil)
		gw.EXPECT().RestoreCustomer(gomock.Any(), "cus_1").
			Return(entities.GatewayCustomer{}, &entities.GatewayError{StatusCode: 400, Code: "invalid_action", Message: "cannot restore"})

		_, err := uc.Resolve(context.Background(), gw, "tenant-1", PayerInput{Name: "Maria", Document: "12345678900"})
		if !errors.Is(err, ErrPayerUnrestorable) {
			t.Fatalf("expected ErrPayerUnrestorable, got %v", err)
		}
	})

	t.Run("restore network failure propagates as-is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPayerRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPayerIdentityUseCase(repo)

		transport := &entities.GatewayError{StatusCode: 0, Message: "request failed: connection refused"}
		repo.EXPECT().GetByTenantAndDocument(gomock.Any(), "tenant-1", "12345678900").
			Return(entities.Payer{ID: "payer-1", TenantID: "tenant-1", AsaasCustomerID: "cus_1"}, nil)
		gw.EXPECT().GetCustomer(gomock.Any(), "cus_1").
			Return(entities.GatewayCustomer{ID: "cus_1", Deleted: true}, nil)
		gw.EXPECT().RestoreCustomer(gomock.Any(), "cus_1").
			Return(entities.GatewayCustomer{}, transport)

		_, err := uc.Resolve(context.Background(), gw, "tenant-1", PayerInput{Name: "Maria", Document: "12345678900"})
		if errors.Is(err, ErrPayerUnrestorable) {
			t.Fatalf("transport failure must not be classified unrestorable")
		}
		if !errors.Is(err, transport) {
			t.Fatalf("expected transport error, got %v", err)
		}
	})

	t.Run("no local payer, found by document, local record created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPayerRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPayerIdentityUseCase(repo)

		repo.EXPECT().GetByTenantAndDocument(gomock.Any(), "tenant-1", "12345678900").
			Return(entities.Payer{}, nil)
		gw.EXPECT().FindCustomerByDocument(gomock.Any(), "12345678900").
			Return(entities.GatewayCustomer{ID: "cus_found"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payer{})).DoAndReturn(
			func(_ context.Context, p entities.Payer) (entities.Payer, error) {
				if p.ID == "" || p.TenantID != "tenant-1" || p.AsaasCustomerID != "cus_found" {
					t.Fatalf("unexpected payer: %+v", p)
				}
				return p, nil
			},
		)

		got, err := uc.Resolve(context.Background(), gw, "tenant-1", PayerInput{Name: " Maria ", Document: " 12345678900 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.AsaasCustomerID != "cus_found" {
			t.Fatalf("expected cus_found, got %q", got.AsaasCustomerID)
		}
	})

	t.Run("no local payer, absent on gateway, customer created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPayerRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPayerIdentityUseCase(repo)

		repo.EXPECT().GetByTenantAndDocument(gomock.Any(), "tenant-1", "12345678900").
			Return(entities.Payer{}, nil)
		gw.EXPECT().FindCustomerByDocument(gomock.Any(), "12345678900").
			Return(entities.GatewayCustomer{}, nil)
		gw.EXPECT().CreateCustomer(gomock.Any(), interfaces.CreateCustomerInput{Name: "Maria", CpfCnpj: "12345678900"}).
			Return(entities.GatewayCustomer{ID: "cus_created"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payer{})).DoAndReturn(
			func(_ context.Context, p entities.Payer) (entities.Payer, error) { return p, nil },
		)

		got, err := uc.Resolve(context.Background(), gw, "tenant-1", PayerInput{Name: "Maria", Document: "12345678900"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.AsaasCustomerID != "cus_created" {
			t.Fatalf("expected cus_created, got %q", got.AsaasCustomerID)
		}
	})

	t.Run("found deleted by document gets restored before use", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPayerRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPayerIdentityUseCase(repo)

		repo.EXPECT().GetByTenantAndDocument(gomock.Any(), "tenant-1", "12345678900").
			Return(entities.Payer{}, nil)
		gw.EXPECT().FindCustomerByDocument(gomock.Any(), "12345678900").
			Return(entities.GatewayCustomer{ID: "cus_del", Deleted: true}, nil)
		gw.EXPECT().RestoreCustomer(gomock.Any(), "cus_del").
			Return(entities.GatewayCustomer{ID: "cus_del"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payer{})).DoAndReturn(
			func(_ context.Context, p entities.Payer) (entities.Payer, error) { return p, nil },
		)

		got, err := uc.Resolve(context.Background(), gw, "tenant-1", PayerInput{Name: "Maria", Document: "12345678900"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.AsaasCustomerID != "cus_del" {
			t.Fatalf("expected cus_del, got %q", got.AsaasCustomerID)
		}
	})
}
