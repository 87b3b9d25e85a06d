package response

import (
	"time"

	"cobranca_campo/internal/domain/entities"
	"cobranca_campo/internal/usecase"
)

type ChargeResponse struct {
	ID            string     `json:"id"`
	TenantID      string     `json:"tenant_id"`
	PayerID       string     `json:"payer_id"`
	CollectorID   string     `json:"collector_id,omitempty"`
	Description   string     `json:"description"`
	Amount        float64    `json:"amount"`
	DueDate       time.Time  `json:"due_date"`
	PaymentMethod string     `json:"payment_method"`
	Status        string     `json:"status"`
	Installments  int        `json:"installments,omitempty"`
	PaymentID     string     `json:"payment_id,omitempty"`
	InvoiceURL    string     `json:"invoice_url,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	PaidAmount    float64    `json:"paid_amount,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type PixResponse struct {
	EncodedImage   string `json:"encoded_image"`
	Payload        string `json:"payload"`
	ExpirationDate string `json:"expiration_date,omitempty"`
}

// CreateChargeResponse mirrors what the field app needs right after
// creation: the stored charge plus gateway artifacts. `pix` is null when the
// QR code fetch was skipped or degraded; `warnings` says why.
type CreateChargeResponse struct {
	Charge     ChargeResponse `json:"charge"`
	PaymentID  string         `json:"payment_id"`
	InvoiceURL string         `json:"invoice_url,omitempty"`
	Pix        *PixResponse   `json:"pix,omitempty"`
	Warnings   []string       `json:"warnings,omitempty"`
}

func FromCharge(c entities.Charge) ChargeResponse {
	return ChargeResponse{
		ID:            c.ID,
		TenantID:      c.TenantID,
		PayerID:       c.PayerID,
		CollectorID:   c.CollectorID,
		Description:   c.Description,
		Amount:        c.Amount,
		DueDate:       c.DueDate,
		PaymentMethod: string(c.PaymentMethod),
		Status:        string(c.Status),
		Installments:  c.Installments,
		PaymentID:     c.AsaasPaymentID,
		InvoiceURL:    c.AsaasInvoiceURL,
		PaidAt:        c.PaidAt,
		PaidAmount:    c.PaidAmount,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func FromChargeResult(res usecase.ChargeResult) CreateChargeResponse {
	out := CreateChargeResponse{
		Charge:     FromCharge(res.Charge),
		PaymentID:  res.PaymentID,
		InvoiceURL: res.InvoiceURL,
	}
	if res.Pix != nil {
		out.Pix = &PixResponse{
			EncodedImage:   res.Pix.QRCodeImage,
			Payload:        res.Pix.Payload,
			ExpirationDate: res.Pix.ExpirationDate,
		}
	}
	if !res.PixFetch.OK {
		out.Warnings = append(out.Warnings, "pix unavailable: "+res.PixFetch.Reason)
	}
	return out
}

func FromCharges(charges []entities.Charge) []ChargeResponse {
	out := make([]ChargeResponse, 0, len(charges))
	for _, c := range charges {
		out = append(out, FromCharge(c))
	}
	return out
}
