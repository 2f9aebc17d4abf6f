package labour

import (
	"github.com/shopspring/decimal"
	"github.com/sitekhata/labour-backend-go/internal/pkg/validator"
)

// Document kinds accepted by the upload endpoint.
const (
	DocPhoto         = "photo"
	DocIDFront       = "id_front"
	DocIDBack        = "id_back"
	DocGatePassFront = "gate_pass_front"
	DocGatePassBack  = "gate_pass_back"
)

var DocumentKinds = []string{DocPhoto, DocIDFront, DocIDBack, DocGatePassFront, DocGatePassBack}

type CreateLabourRequest struct {
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	SiteID      string  `json:"site_id"`
	GatePassID  *string `json:"gate_pass_id,omitempty"`
	BankAccount *string `json:"bank_account,omitempty"`
	IFSCCode    *string `json:"ifsc_code,omitempty"`
	DailyWage   *string `json:"daily_wage,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r *CreateLabourRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidPhone(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "must be exactly 10 digits"})
	}
	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{Field: "site_id", Message: "is required"})
	}
	if r.BankAccount != nil && *r.BankAccount != "" && !validator.IsValidBankAccount(*r.BankAccount) {
		errs = append(errs, validator.ValidationError{Field: "bank_account", Message: "must contain digits only"})
	}
	if r.IFSCCode != nil && *r.IFSCCode != "" && !validator.IsValidIFSC(*r.IFSCCode) {
		errs = append(errs, validator.ValidationError{Field: "ifsc_code", Message: "is not a valid IFSC code"})
	}
	if r.DailyWage != nil && *r.DailyWage != "" {
		wage, ok := validator.ParseAmount(*r.DailyWage)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "daily_wage", Message: "must be a number"})
		} else if wage.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "daily_wage", Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Wage returns the parsed daily wage, nil when not provided. Call
// Validate first.
func (r *CreateLabourRequest) Wage() *decimal.Decimal {
	if r.DailyWage == nil || *r.DailyWage == "" {
		return nil
	}
	wage, ok := validator.ParseAmount(*r.DailyWage)
	if !ok {
		return nil
	}
	return &wage
}

type UpdateLabourRequest struct {
	ID          string
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	SiteID      *string `json:"site_id,omitempty"`
	GatePassID  *string `json:"gate_pass_id,omitempty"`
	BankAccount *string `json:"bank_account,omitempty"`
	IFSCCode    *string `json:"ifsc_code,omitempty"`
	DailyWage   *string `json:"daily_wage,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r *UpdateLabourRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Phone != nil && !validator.IsValidPhone(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "must be exactly 10 digits"})
	}
	if r.BankAccount != nil && *r.BankAccount != "" && !validator.IsValidBankAccount(*r.BankAccount) {
		errs = append(errs, validator.ValidationError{Field: "bank_account", Message: "must contain digits only"})
	}
	if r.IFSCCode != nil && *r.IFSCCode != "" && !validator.IsValidIFSC(*r.IFSCCode) {
		errs = append(errs, validator.ValidationError{Field: "ifsc_code", Message: "is not a valid IFSC code"})
	}
	if r.DailyWage != nil && *r.DailyWage != "" {
		wage, ok := validator.ParseAmount(*r.DailyWage)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "daily_wage", Message: "must be a number"})
		} else if wage.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "daily_wage", Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LabourResponse struct {
	ID          string           `json:"id"`
	SiteID      string           `json:"site_id"`
	SiteName    *string          `json:"site_name,omitempty"`
	GatePassID  *string          `json:"gate_pass_id,omitempty"`
	Name        string           `json:"name"`
	Phone       string           `json:"phone"`
	BankAccount *string          `json:"bank_account,omitempty"`
	IFSCCode    *string          `json:"ifsc_code,omitempty"`
	DailyWage   *decimal.Decimal `json:"daily_wage,omitempty"`
	PhotoURL    *string          `json:"photo_url,omitempty"`
	IsActive    bool             `json:"is_active"`
}

func ToResponse(l Labour) LabourResponse {
	return LabourResponse{
		ID:          l.ID,
		SiteID:      l.SiteID,
		SiteName:    l.SiteName,
		GatePassID:  l.GatePassID,
		Name:        l.Name,
		Phone:       l.Phone,
		BankAccount: l.BankAccount,
		IFSCCode:    l.IFSCCode,
		DailyWage:   l.DailyWage,
		PhotoURL:    l.PhotoPath,
		IsActive:    l.IsActive,
	}
}
