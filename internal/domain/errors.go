package domain

import "errors"

var (
	ErrBlockListUnavailable = errors.New("block list unavailable")
	ErrInvalidDomain        = errors.New("invalid domain")
	ErrInvalidDuration      = errors.New("invalid duration")
	ErrNoActiveSession      = errors.New("no active focus session")
	ErrSessionAlreadyActive = errors.New("focus session already active")
	ErrSiteNotFound         = errors.New("site not found")
	ErrUnknownPreset        = errors.New("unknown preset")
)
