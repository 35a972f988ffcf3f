package services

import "errors"

// Sentinel errors surfaced to controllers. Validation errors are returned
// before any store mutation; conflict errors surface at commit time and the
// caller is expected to re-query before retrying.
var (
	ErrInvalidRange         = errors.New("invalid_date_range")
	ErrUnknownUnitType      = errors.New("unknown_unit_type")
	ErrAvailabilityConflict = errors.New("availability_conflict")
	ErrNotFound             = errors.New("not_found")
	ErrInvalidTransition    = errors.New("invalid_status_transition")
)
