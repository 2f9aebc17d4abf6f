package site

import (
	"github.com/sitekhata/labour-backend-go/internal/pkg/validator"
)

type CreateSiteRequest struct {
	Name     string  `json:"name"`
	Address  *string `json:"address,omitempty"`
	Location *string `json:"location,omitempty"`
}

func (r *CreateSiteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSiteRequest struct {
	ID       string
	Name     *string `json:"name,omitempty"`
	Address  *string `json:"address,omitempty"`
	Location *string `json:"location,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpdateSiteRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SiteResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Address  *string `json:"address,omitempty"`
	Location *string `json:"location,omitempty"`
	IsActive bool    `json:"is_active"`
}

func ToResponse(s Site) SiteResponse {
	return SiteResponse{
		ID:       s.ID,
		Name:     s.Name,
		Address:  s.Address,
		Location: s.Location,
		IsActive: s.IsActive,
	}
}
