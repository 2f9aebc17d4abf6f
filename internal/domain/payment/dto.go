package payment

import (
	"github.com/shopspring/decimal"

	"github.com/sitekhata/labour-backend-go/internal/pkg/validator"
)

type CreatePaymentRequest struct {
	LabourID string  `json:"labour_id"`
	Amount   string  `json:"amount"`
	Date     string  `json:"date"`
	Remark   *string `json:"remark"`
}

func (r *CreatePaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LabourID) {
		errs = append(errs, validator.ValidationError{Field: "labour_id", Message: "labour_id is required"})
	}
	amount, ok := validator.ParseAmount(r.Amount)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be a valid amount"})
	} else if !amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedAmount returns the validated amount. Call only after Validate.
func (r *CreatePaymentRequest) ParsedAmount() decimal.Decimal {
	d, _ := validator.ParseAmount(r.Amount)
	return d
}

// UpdatePaymentRequest edits an advance in place. Corrections change
// amount, date or remark; there is no reversal record type.
type UpdatePaymentRequest struct {
	ID     string
	Amount *string `json:"amount,omitempty"`
	Date   *string `json:"date,omitempty"`
	Remark *string `json:"remark,omitempty"`
}

func (r *UpdatePaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Amount != nil {
		amount, ok := validator.ParseAmount(*r.Amount)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be a valid amount"})
		} else if !amount.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
		}
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PaymentResponse struct {
	ID         string          `json:"id"`
	LabourID   string          `json:"labour_id"`
	LabourName *string         `json:"labour_name,omitempty"`
	SiteID     string          `json:"site_id"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	Remark     *string         `json:"remark,omitempty"`
}

func ToResponse(p Payment) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID,
		LabourID:   p.LabourID,
		LabourName: p.LabourName,
		SiteID:     p.SiteID,
		Amount:     p.Amount,
		Date:       p.Date.Format("2006-01-02"),
		Remark:     p.Remark,
	}
}
