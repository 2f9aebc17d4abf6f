package expense

import (
	"github.com/shopspring/decimal"

	"github.com/sitekhata/labour-backend-go/internal/pkg/validator"
)

type UpsertExpenseRequest struct {
	LabourID      string `json:"labour_id"`
	Month         string `json:"month"`
	MessAmount    string `json:"mess_amount"`
	CanteenAmount string `json:"canteen_amount"`
}

func (r *UpsertExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LabourID) {
		errs = append(errs, validator.ValidationError{Field: "labour_id", Message: "labour_id is required"})
	}
	if !validator.IsValidMonthKey(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be YYYY-MM"})
	}
	if amount, ok := validator.ParseAmount(r.MessAmount); !ok {
		errs = append(errs, validator.ValidationError{Field: "mess_amount", Message: "must be a valid amount"})
	} else if amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "mess_amount", Message: "cannot be negative"})
	}
	if amount, ok := validator.ParseAmount(r.CanteenAmount); !ok {
		errs = append(errs, validator.ValidationError{Field: "canteen_amount", Message: "must be a valid amount"})
	} else if amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "canteen_amount", Message: "cannot be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *UpsertExpenseRequest) ParsedMess() decimal.Decimal {
	d, _ := validator.ParseAmount(r.MessAmount)
	return d
}

func (r *UpsertExpenseRequest) ParsedCanteen() decimal.Decimal {
	d, _ := validator.ParseAmount(r.CanteenAmount)
	return d
}

type ExpenseResponse struct {
	ID            string          `json:"id"`
	LabourID      string          `json:"labour_id"`
	LabourName    *string         `json:"labour_name,omitempty"`
	SiteID        string          `json:"site_id"`
	Month         string          `json:"month"`
	MessAmount    decimal.Decimal `json:"mess_amount"`
	CanteenAmount decimal.Decimal `json:"canteen_amount"`
	Total         decimal.Decimal `json:"total"`
}

func ToResponse(e Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID,
		LabourID:      e.LabourID,
		LabourName:    e.LabourName,
		SiteID:        e.SiteID,
		Month:         e.Month,
		MessAmount:    e.MessAmount,
		CanteenAmount: e.CanteenAmount,
		Total:         e.Total(),
	}
}
