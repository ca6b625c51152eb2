package families

import "errors"

var (
	ErrFamilyNotFound     = errors.New("family not found")
	ErrMemberNotFound     = errors.New("member not found")
	ErrInvalidCivilStatus = errors.New("invalid civil status")
	ErrInvalidLocality    = errors.New("invalid locality")
)
