package user

import (
	"github.com/sitekhata/labour-backend-go/internal/pkg/validator"
)

type CreateManagerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	SiteID   string `json:"site_id"`
}

func (r *CreateManagerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "is required"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 6 characters"})
	}
	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{Field: "site_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateManagerRequest struct {
	ID       string
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	SiteID   *string `json:"site_id,omitempty"`
}

func (r *UpdateManagerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Username != nil && validator.IsEmpty(*r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "must not be empty"})
	}
	if r.Password != nil && len(*r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 6 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ManagerResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Role     string  `json:"role"`
	SiteID   *string `json:"site_id,omitempty"`
	SiteName *string `json:"site_name,omitempty"`
}
