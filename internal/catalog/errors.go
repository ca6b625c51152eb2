package catalog

import "errors"

var (
	ErrSectionNotFound  = errors.New("section not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrEmptyCatalog     = errors.New("catalog has no sections")
)
