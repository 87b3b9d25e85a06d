package response

import "cobranca_campo/internal/domain/entities"

type PaymentStatusResponse struct {
	PaymentID  string  `json:"payment_id"`
	Status     string  `json:"status"`
	Value      float64 `json:"value"`
	DueDate    string  `json:"due_date,omitempty"`
	InvoiceURL string  `json:"invoice_url,omitempty"`
}

func FromGatewayPayment(p entities.GatewayPayment) PaymentStatusResponse {
	invoiceURL := p.BankSlipURL
	if invoiceURL == "" {
		invoiceURL = p.InvoiceURL
	}
	return PaymentStatusResponse{
		PaymentID:  p.ID,
		Status:     p.Status,
		Value:      p.Value,
		DueDate:    p.DueDate,
		InvoiceURL: invoiceURL,
	}
}
