package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"cobranca_campo/internal/domain/entities"
	"cobranca_campo/internal/usecase/interfaces"
)

var (
	ErrRoleNotAllowed = errors.New("only managers and company admins may cancel charges")
	ErrBranchScope    = errors.New("charge belongs to another branch")
)

// ICancellationUseCase removes a charge both locally and on the gateway.
// force=true is the operator escape hatch for when the two stores have
// diverged: the gateway error is logged and local deletion proceeds anyway.

type ICancellationUseCase interface {
	Cancel(ctx context.Context, principal entities.Principal, chargeID string, force bool) error
}

type CancellationUseCase struct {
	charges        interfaces.IChargeRepository
	collectors     interfaces.ICollectorRepository
	credentials    ICredentialResolver
	gatewayFactory interfaces.IPaymentGatewayFactory
}

var _ ICancellationUseCase = (*CancellationUseCase)(nil)

func NewCancellationUseCase(
	charges interfaces.IChargeRepository,
	collectors interfaces.ICollectorRepository,
	credentials ICredentialResolver,
	gatewayFactory interfaces.IPaymentGatewayFactory,
) *CancellationUseCase {
	return &CancellationUseCase{charges: charges, collectors: collectors, credentials: credentials, gatewayFactory: gatewayFactory}
}

func (u *CancellationUseCase) Cancel(ctx context.Context, principal entities.Principal, chargeID string, force bool) error {
	if principal.Role != entities.RoleManager && principal.Role != entities.RoleCompanyAdmin {
		return ErrRoleNotAllowed
	}

	chargeID = strings.TrimSpace(chargeID)
	charge, err := u.charges.GetByID(ctx, chargeID)
	if err != nil {
		return err
	}
	if charge.ID == "" || charge.TenantID != principal.TenantID {
		return ErrChargeNotFound
	}

	// A manager only reaches charges collected by their own branch.
	if principal.Role == entities.RoleManager && principal.Branch != "" {
		branch := ""
		if charge.CollectorID != "" {
			collector, err := u.collectors.GetByID(ctx, charge.CollectorID)
			if err != nil {
				return err
			}
			branch = collector.Branch
		}
		if branch != principal.Branch {
			return ErrBranchScope
		}
	}

	if charge.AsaasPaymentID != "" {
		apiKey, err := u.credentials.ResolveAPIKey(ctx, principal.TenantID)
		if err != nil {
			return err
		}
		gw := u.gatewayFactory.ClientFor(apiKey)

		if _, err := gw.CancelPayment(ctx, charge.AsaasPaymentID); err != nil {
			var gerr *entities.GatewayError
			switch {
			case errors.As(err, &gerr) && gerr.NotFound():
				// Already gone on the gateway; cancel stays idempotent.
				log.Printf("[cancel][usecase] payment %s already removed on gateway", charge.AsaasPaymentID)
			case force:
				log.Printf("[cancel][usecase] force delete charge=%s despite gateway error: %v", charge.ID, err)
			default:
				log.Printf("[cancel][usecase] gateway cancel failed charge=%s err=%v", charge.ID, err)
				return err
			}
		}
	}

	// No daily-summary rollback here: collected history is not un-collected.
	if err := u.charges.Delete(ctx, charge.ID); err != nil {
		return err
	}
	log.Printf("[cancel][usecase] charge %s deleted tenant=%s actor=%s force=%t", charge.ID, principal.TenantID, principal.UserID, force)
	return nil
}
