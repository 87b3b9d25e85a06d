package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDueDate = errors.New("invalid due date")

// CreateChargeRequest is the payload collectors send from the field app.
//
// `due_date` is optional and accepted as an ISO date (YYYY-MM-DD); when
// absent the use case applies its own default.
type CreateChargeRequest struct {
	PayerName     string  `json:"payer_name" binding:"required"`
	Document      string  `json:"document" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	DueDate       string  `json:"due_date"`
	PaymentMethod string  `json:"payment_method"`
	Installments  int     `json:"installments"`
}

func (r CreateChargeRequest) ResolveDueDate() (*time.Time, error) {
	raw := strings.TrimSpace(r.DueDate)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, ErrInvalidDueDate
	}
	return &t, nil
}
