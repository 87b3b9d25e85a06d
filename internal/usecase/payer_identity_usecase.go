package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"cobranca_campo/internal/domain/entities"
	"cobranca_campo/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPayerName = errors.New("invalid payer name")
	ErrInvalidDocument  = errors.New("invalid payer document")

	// ErrPayerUnrestorable: the gateway knows the customer but explicitly
	// rejected the restore call. Different failure class from a communication
	// error, and callers present it differently.
	ErrPayerUnrestorable = errors.New("cliente está removido no Asaas e não foi possível restaurá-lo")
)

type PayerInput struct {
	Name     string
	Document string
	Email    string
	Phone    string
}

type ResolvedPayer struct {
	PayerID         string
	AsaasCustomerID string
}

// IPayerIdentityResolver maps a (tenant, document) pair to exactly one
// gateway-side customer id, creating or restoring one when needed, and keeps
// the local payer record in sync. The gateway client is passed per call
// because it is scoped to the tenant's credential.

type IPayerIdentityResolver interface {
	Resolve(ctx context.Context, gw interfaces.IPaymentGateway, tenantID string, in PayerInput) (ResolvedPayer, error)
}

type PayerIdentityUseCase struct {
	payerRepo interfaces.IPayerRepository
}

var _ IPayerIdentityResolver = (*PayerIdentityUseCase)(nil)

func NewPayerIdentityUseCase(payerRepo interfaces.IPayerRepository) *PayerIdentityUseCase {
	return &PayerIdentityUseCase{payerRepo: payerRepo}
}

// Resolve runs the three-step decision table. The order matters: skipping the
// stored-id validation or the document search creates duplicate customers on
// the gateway side.
//
//  1. Local payer with a stored external id: fetch it from the gateway.
//     Deleted there -> restore before reuse. 404 -> discard the stale id and
//     fall through.
//  2. No usable id yet: search the gateway by document. Found deleted ->
//     restore and use. Found live -> use. Absent -> create.
//  3. Upsert the local payer: insert when new, rewrite the external id when
//     it changed.
func (u *PayerIdentityUseCase) Resolve(ctx context.Context, gw interfaces.IPaymentGateway, tenantID string, in PayerInput) (ResolvedPayer, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Document = strings.TrimSpace(in.Document)
	if in.Name == "" {
		return ResolvedPayer{}, ErrInvalidPayerName
	}
	if in.Document == "" {
		return ResolvedPayer{}, ErrInvalidDocument
	}

	payer, err := u.payerRepo.GetByTenantAndDocument(ctx, tenantID, in.Document)
	if err != nil {
		return ResolvedPayer{}, err
	}

	externalID := payer.AsaasCustomerID

	// Step 1: validate the stored external id against the gateway.
	if externalID != "" {
		cust, err := gw.GetCustomer(ctx, externalID)
		switch {
		case err == nil && cust.Deleted:
			log.Printf("[payer][usecase] customer %s deleted on gateway, restoring tenant=%s", externalID, tenantID)
			if _, rerr := gw.RestoreCustomer(ctx, externalID); rerr != nil {
				return ResolvedPayer{}, restoreFailure(rerr)
			}
		case err != nil:
			var gerr *entities.GatewayError
			if errors.As(err, &gerr) && gerr.NotFound() {
				// Stale link. Forget it and fall through to the search.
				log.Printf("[payer][usecase] stored customer id %s unknown to gateway, discarding tenant=%s", externalID, tenantID)
				externalID = ""
			} else {
				return ResolvedPayer{}, err
			}
		}
	}

	// Step 2: search by document, restore or create.
	if externalID == "" {
		existing, err := gw.FindCustomerByDocument(ctx, in.Document)
		if err != nil {
			return ResolvedPayer{}, err
		}
		if existing.ID != "" {
			if existing.Deleted {
				if _, rerr := gw.RestoreCustomer(ctx, existing.ID); rerr != nil {
					return ResolvedPayer{}, restoreFailure(rerr)
				}
				log.Printf("[payer][usecase] restored deleted gateway customer %s tenant=%s", existing.ID, tenantID)
			}
			externalID = existing.ID
		} else {
			created, err := gw.CreateCustomer(ctx, interfaces.CreateCustomerInput{
				Name:    in.Name,
				CpfCnpj: in.Document,
				Email:   in.Email,
				Phone:   in.Phone,
			})
			if err != nil {
				return ResolvedPayer{}, err
			}
			externalID = created.ID
			log.Printf("[payer][usecase] created gateway customer %s tenant=%s", externalID, tenantID)
		}
	}

	// Step 3: upsert the local record.
	if payer.ID == "" {
		now := time.Now().UTC()
		created, err := u.payerRepo.Create(ctx, entities.Payer{
			ID:              uuid.NewString(),
			TenantID:        tenantID,
			Name:            in.Name,
			Document:        in.Document,
			Email:           in.Email,
			Phone:           in.Phone,
			AsaasCustomerID: externalID,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return ResolvedPayer{}, err
		}
		payer = created
	} else if payer.AsaasCustomerID != externalID {
		if err := u.payerRepo.UpdateAsaasCustomerID(ctx, payer.ID, externalID); err != nil {
			return ResolvedPayer{}, err
		}
	}

	return ResolvedPayer{PayerID: payer.ID, AsaasCustomerID: externalID}, nil
}

// restoreFailure classifies a failed restore: an explicit gateway rejection
// means the customer is permanently unrestorable; anything else is a plain
// communication failure and propagates as-is.
func restoreFailure(err error) error {
	var gerr *entities.GatewayError
	if errors.As(err, &gerr) && gerr.StatusCode >= 400 {
		return fmt.Errorf("%w: %v", ErrPayerUnrestorable, err)
	}
	return err
}
