package scholarships

import "errors"

var (
	ErrScholarshipNotFound = errors.New("scholarship not found")
	ErrAlreadyAssigned     = errors.New("study already has a scholarship")
	ErrInvalidPercentage   = errors.New("percentage must be between 1 and 100")
)
