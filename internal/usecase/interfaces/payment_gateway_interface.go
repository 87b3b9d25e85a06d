package interfaces

import (
	"context"

	"cobranca_campo/internal/domain/entities"
)

type CreateCustomerInput struct {
	Name    string
	CpfCnpj string
	Email   string
	Phone   string
}

type CreatePaymentInput struct {
	Customer          string
	BillingType       string
	Value             float64
	DueDate           string // ISO date (YYYY-MM-DD)
	Description       string
	ExternalReference string
	InstallmentCount  int
}

type CreditCardHolderInfo struct {
	Name          string
	Email         string
	CpfCnpj       string
	PostalCode    string
	AddressNumber string
	Phone         string
}

type CreditCardInput struct {
	HolderName  string
	Number      string
	ExpiryMonth string
	ExpiryYear  string
	CCV         string
	HolderInfo  CreditCardHolderInfo
}

// IPaymentGateway abstracts the Asaas HTTP API for exactly one API key.
// The client never retries and never mutates local state; every non-2xx
// answer surfaces as *entities.GatewayError.
//
// FindCustomerByDocument is a search and reports absence as a zero-ID
// customer with nil error; direct gets return the 404 error instead, so
// callers can tell a stale id apart from other failures.
type IPaymentGateway interface {
	CreateCustomer(ctx context.Context, in CreateCustomerInput) (entities.GatewayCustomer, error)
	GetCustomer(ctx context.Context, customerID string) (entities.GatewayCustomer, error)
	FindCustomerByDocument(ctx context.Context, cpfCnpj string) (entities.GatewayCustomer, error)
	RestoreCustomer(ctx context.Context, customerID string) (entities.GatewayCustomer, error)
	CreatePayment(ctx context.Context, in CreatePaymentInput) (entities.GatewayPayment, error)
	GetPayment(ctx context.Context, paymentID string) (entities.GatewayPayment, error)
	CancelPayment(ctx context.Context, paymentID string) (entities.GatewayPayment, error)
	GetPixQRCode(ctx context.Context, paymentID string) (entities.PixQRCode, error)
	PayWithCreditCard(ctx context.Context, paymentID string, in CreditCardInput) (entities.GatewayPayment, error)
}

// IPaymentGatewayFactory builds a gateway client for one tenant's API key.
// Clients are cheap request-scoped values; there is deliberately no shared
// mutable client keyed by the last-used credential, since concurrent tenants
// would race on it.
type IPaymentGatewayFactory interface {
	ClientFor(apiKey string) IPaymentGateway
}
