package attendance

import "errors"

var (
	ErrRecordNotFound = errors.New("attendance record not found")

	// ErrLabourNotAtSite rejects marks for labours outside the
	// manager's site.
	ErrLabourNotAtSite = errors.New("labour does not belong to this site")

	ErrFutureDate = errors.New("attendance cannot be marked for a future date")
)
