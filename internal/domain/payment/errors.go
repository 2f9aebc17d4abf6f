package payment

import "errors"

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrFutureDate      = errors.New("advance cannot be dated in the future")
)
