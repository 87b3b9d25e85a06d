package request

import "cobranca_campo/internal/usecase/interfaces"

type CreditCardHolderRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required"`
	CpfCnpj       string `json:"cpf_cnpj" binding:"required"`
	PostalCode    string `json:"postal_code" binding:"required"`
	AddressNumber string `json:"address_number" binding:"required"`
	Phone         string `json:"phone"`
}

// CreditCardPaymentRequest is the payer-facing card payment payload. Card
// data is forwarded to the gateway and never persisted.
type CreditCardPaymentRequest struct {
	HolderName  string                  `json:"holder_name" binding:"required"`
	Number      string                  `json:"number" binding:"required"`
	ExpiryMonth string                  `json:"expiry_month" binding:"required"`
	ExpiryYear  string                  `json:"expiry_year" binding:"required"`
	CCV         string                  `json:"ccv" binding:"required"`
	Holder      CreditCardHolderRequest `json:"holder" binding:"required"`
}

func (r CreditCardPaymentRequest) ToCardInput() interfaces.CreditCardInput {
	return interfaces.CreditCardInput{
		HolderName:  r.HolderName,
		Number:      r.Number,
		ExpiryMonth: r.ExpiryMonth,
		ExpiryYear:  r.ExpiryYear,
		CCV:         r.CCV,
		HolderInfo: interfaces.CreditCardHolderInfo{
			Name:          r.Holder.Name,
			Email:         r.Holder.Email,
			CpfCnpj:       r.Holder.CpfCnpj,
			PostalCode:    r.Holder.PostalCode,
			AddressNumber: r.Holder.AddressNumber,
			Phone:         r.Holder.Phone,
		},
	}
}
