package usecase

import (
	"context"
	"strings"

	"cobranca_campo/internal/domain/entities"
	"cobranca_campo/internal/usecase/interfaces"
)

// IPaymentUseCase is the payer-facing side of a charge: live status reads and
// direct card settlement against the gateway payment the charge mirrors.

type IPaymentUseCase interface {
	GetStatus(ctx context.Context, asaasPaymentID string) (entities.GatewayPayment, error)
	ChargeCreditCard(ctx context.Context, asaasPaymentID string, card interfaces.CreditCardInput) (entities.GatewayPayment, error)
}

type PaymentUseCase struct {
	charges        interfaces.IChargeRepository
	credentials    ICredentialResolver
	gatewayFactory interfaces.IPaymentGatewayFactory
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	charges interfaces.IChargeRepository,
	credentials ICredentialResolver,
	gatewayFactory interfaces.IPaymentGatewayFactory,
) *PaymentUseCase {
	return &PaymentUseCase{charges: charges, credentials: credentials, gatewayFactory: gatewayFactory}
}

func (u *PaymentUseCase) GetStatus(ctx context.Context, asaasPaymentID string) (entities.GatewayPayment, error) {
	gw, err := u.clientForPayment(ctx, asaasPaymentID)
	if err != nil {
		return entities.GatewayPayment{}, err
	}
	return gw.GetPayment(ctx, asaasPaymentID)
}

func (u *PaymentUseCase) ChargeCreditCard(ctx context.Context, asaasPaymentID string, card interfaces.CreditCardInput) (entities.GatewayPayment, error) {
	gw, err := u.clientForPayment(ctx, asaasPaymentID)
	if err != nil {
		return entities.GatewayPayment{}, err
	}
	// Local state is left alone on purpose: settlement lands through the
	// webhook, the same path every other billing type takes.
	return gw.PayWithCreditCard(ctx, asaasPaymentID, card)
}

// clientForPayment locates the charge mirroring the gateway payment and
// builds a gateway client under that charge's tenant credential.
func (u *PaymentUseCase) clientForPayment(ctx context.Context, asaasPaymentID string) (interfaces.IPaymentGateway, error) {
	asaasPaymentID = strings.TrimSpace(asaasPaymentID)
	if asaasPaymentID == "" {
		return nil, ErrChargeNotFound
	}
	charge, err := u.charges.GetByAsaasPaymentID(ctx, asaasPaymentID)
	if err != nil {
		return nil, err
	}
	if charge.ID == "" {
		return nil, ErrChargeNotFound
	}
	apiKey, err := u.credentials.ResolveAPIKey(ctx, charge.TenantID)
	if err != nil {
		return nil, err
	}
	return u.gatewayFactory.ClientFor(apiKey), nil
}
