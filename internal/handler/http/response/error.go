package response

import (
	"errors"
	"net/http"

	"github.com/sitekhata/labour-backend-go/internal/domain/attendance"
	"github.com/sitekhata/labour-backend-go/internal/domain/auth"
	"github.com/sitekhata/labour-backend-go/internal/domain/expense"
	"github.com/sitekhata/labour-backend-go/internal/domain/labour"
	"github.com/sitekhata/labour-backend-go/internal/domain/payment"
	"github.com/sitekhata/labour-backend-go/internal/domain/site"
	"github.com/sitekhata/labour-backend-go/internal/domain/user"
	"github.com/sitekhata/labour-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrManagerSiteRequired):
		Forbidden(w, "Manager account has no site assigned")

	// Site domain errors
	case errors.Is(err, site.ErrSiteNotFound):
		NotFound(w, "Site not found")
	case errors.Is(err, site.ErrSiteNameExists):
		Conflict(w, "Site name already exists")
	case errors.Is(err, site.ErrSiteHasDependents):
		Conflict(w, "Site still has labours or managers attached; deactivate it instead")

	// Labour domain errors
	case errors.Is(err, labour.ErrLabourNotFound):
		NotFound(w, "Labour not found")
	case errors.Is(err, labour.ErrLabourPhoneExists):
		Conflict(w, "A labour with this phone already exists at the site")
	case errors.Is(err, labour.ErrLabourHasHistory):
		Conflict(w, "Labour has attendance or payment history; deactivate instead of deleting")
	case errors.Is(err, labour.ErrInvalidDocumentKind):
		BadRequest(w, "Unknown document kind", nil)
	case errors.Is(err, labour.ErrDocumentNotFound):
		NotFound(w, "Document not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrLabourNotAtSite):
		BadRequest(w, "Labour does not belong to this site", nil)
	case errors.Is(err, attendance.ErrFutureDate):
		BadRequest(w, "Attendance cannot be marked for a future date", nil)

	// Payment domain errors
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Payment not found")
	case errors.Is(err, payment.ErrFutureDate):
		BadRequest(w, "Advance cannot be dated in the future", nil)

	// Expense domain errors
	case errors.Is(err, expense.ErrExpenseNotFound):
		NotFound(w, "Expense not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
