package site

import "errors"

var (
	ErrSiteNotFound   = errors.New("site not found")
	ErrSiteNameExists = errors.New("site name already exists")

	// ErrSiteHasDependents blocks hard deletion while labours or
	// manager accounts still reference the site.
	ErrSiteHasDependents = errors.New("site still has labours or managers attached")
)
