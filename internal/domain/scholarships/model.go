package scholarships

import "time"

// Scholarship awards a student a percentage discount off tuition, justified
// by the family's approved socioeconomic study.
type Scholarship struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	StudyID    string    `gorm:"type:uuid;uniqueIndex;not null"`
	StudentID  string    `gorm:"type:uuid;index;not null"`
	Percentage int       `gorm:"not null"`
	AssignedBy string    `gorm:"type:uuid;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

type AssignInput struct {
	StudyID    string
	StudentID  string
	Percentage int
	AssignedBy string
}

// Letter carries the already-formatted figures the award letter prints: the
// family's net monthly total and the contribution left after the discount.
type Letter struct {
	Percentage          int    `json:"percentage"`
	NetTotal            string `json:"net_total"`
	MonthlyContribution string `json:"monthly_contribution"`
}
