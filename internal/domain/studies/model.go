package studies

import (
	"time"

	"estudios-app-go/internal/catalog"
)

// Study statuses. A study starts as a draft, travels through review and ends
// approved or rejected; deleted is a soft state whose only exit is an
// explicit recover back to draft.
const (
	StatusDraft       = "draft"
	StatusUnderReview = "under_review"
	StatusApproved    = "approved"
	StatusRejected    = "rejected"
	StatusDeleted     = "deleted"
)

type Study struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	FamilyID     string    `gorm:"type:uuid;uniqueIndex;not null"`
	CapturistaID string    `gorm:"type:uuid;index;not null"`
	Status       string    `gorm:"type:varchar(16);not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// Answer holds one response of a study to one question: free text, a
// reference to one of the question's options, or nothing at all ("no answer"
// is a valid state). A question may accumulate any number of answers.
type Answer struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	StudyID    string    `gorm:"type:uuid;index;not null"`
	QuestionID string    `gorm:"type:uuid;index;not null"`
	Text       string    `gorm:"type:text"`
	OptionID   *string   `gorm:"type:uuid"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// Feedback is a reviewer or capturista comment on a study; submitting one is
// what drives the under_review/rejected transitions.
type Feedback struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	StudyID   string    `gorm:"type:uuid;index;not null"`
	AuthorID  string    `gorm:"type:uuid;not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type ListFilter struct {
	CapturistaID string
	Status       string
}

// SectionView is one renderable slice of the questionnaire: every subsection
// of the section in order, every question in order, every existing answer of
// the study paired with the question's options.
type SectionView struct {
	Numero      int              `json:"numero"`
	Name        string           `json:"name"`
	Subsections []SubsectionView `json:"subsections"`
	NextNumero  *int             `json:"next_numero,omitempty"`
	Last        bool             `json:"last"`
}

type SubsectionView struct {
	Numero    int            `json:"numero"`
	Name      string         `json:"name"`
	Questions []QuestionView `json:"questions"`
}

type QuestionView struct {
	QuestionID string                 `json:"question_id"`
	Text       string                 `json:"text"`
	PerMember  bool                   `json:"per_member"`
	Options    []catalog.AnswerOption `json:"options"`
	Answers    []Answer               `json:"answers"`
}

// AnswerEdit binds a submitted payload back to its originating answer row by
// the stable answer id handed out at render time.
type AnswerEdit struct {
	AnswerID string
	Text     string
	OptionID *string
}

type AnswerError struct {
	AnswerID string `json:"answer_id"`
	Message  string `json:"message"`
}

// SubmitResult reports a section submission. Answers are validated and saved
// independently, so Saved and Errors can both be non-empty: a single bad
// field never blocks its siblings.
type SubmitResult struct {
	Saved      int           `json:"saved"`
	Errors     []AnswerError `json:"errors"`
	NextNumero *int          `json:"next_numero,omitempty"`
	Completed  bool          `json:"completed"`
}
