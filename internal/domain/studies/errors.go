package studies

import "errors"

var (
	ErrStudyNotFound      = errors.New("study not found")
	ErrAnswerNotFound     = errors.New("answer not found")
	ErrFamilyNotFound     = errors.New("family not found")
	ErrFamilyHasStudy     = errors.New("family already has a study")
	ErrInvalidTransition  = errors.New("invalid study status transition")
	ErrStudyNotReviewable = errors.New("study is not reviewable")
	ErrStudyNotEditable   = errors.New("study is not editable")

	errTextTooLong    = errors.New("answer text too long")
	errOptionMismatch = errors.New("option does not belong to question")
)
