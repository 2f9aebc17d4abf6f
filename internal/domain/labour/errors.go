package labour

import "errors"

var (
	ErrLabourNotFound = errors.New("labour not found")

	// ErrLabourPhoneExists covers both the write-time duplicate check
	// and the (phone, site_id) unique constraint fallback.
	ErrLabourPhoneExists = errors.New("labour with this phone already exists for this site")

	// ErrLabourHasHistory blocks hard deletion while attendance,
	// payment or expense rows reference the labour. Deactivate instead.
	ErrLabourHasHistory = errors.New("labour has attendance or payment history; deactivate instead")

	ErrInvalidDocumentKind = errors.New("invalid document kind")
	ErrDocumentNotFound    = errors.New("document not found")
)
