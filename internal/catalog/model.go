package catalog

// The question catalog is fixed at deployment time: sections, subsections,
// questions and their options are seeded once from a fixture and never edited
// through the application. Section and subsection numbers drive navigation
// order and are not required to be contiguous.

type Section struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	Numero int    `gorm:"uniqueIndex;not null" json:"numero"`
	Name   string `gorm:"not null" json:"name"`

	Subsections []Subsection `gorm:"foreignKey:SectionID;references:ID" json:"subsections"`
}

type Subsection struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	SectionID string `gorm:"type:uuid;index;not null" json:"section_id"`
	Numero    int    `gorm:"not null" json:"numero"`
	Name      string `gorm:"not null" json:"name"`

	Questions []Question `gorm:"foreignKey:SubsectionID;references:ID" json:"questions"`
}

type Question struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	SubsectionID string `gorm:"type:uuid;index;not null" json:"subsection_id"`
	Text         string `gorm:"not null" json:"text"`
	Orden        int    `gorm:"not null" json:"orden"`
	PerMember    bool   `gorm:"not null" json:"per_member"`

	Options []AnswerOption `gorm:"foreignKey:QuestionID;references:ID" json:"options"`
}

type AnswerOption struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	QuestionID string `gorm:"type:uuid;index;not null" json:"question_id"`
	Text       string `gorm:"not null" json:"text"`
}

func (Section) TableName() string      { return "sections" }
func (Subsection) TableName() string   { return "subsections" }
func (Question) TableName() string     { return "questions" }
func (AnswerOption) TableName() string { return "answer_options" }
