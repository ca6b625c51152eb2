package families

import "time"

// Civil-status and locality values are closed sets used for statistical
// grouping of studies.
const (
	CivilStatusSingle    = "single"
	CivilStatusMarried   = "married"
	CivilStatusFreeUnion = "free_union"
	CivilStatusSeparated = "separated"
	CivilStatusWidowed   = "widowed"
)

const (
	LocalityUrban      = "urban"
	LocalitySuburban   = "suburban"
	LocalityRural      = "rural"
	LocalityIndigenous = "indigenous"
)

// Family is the aggregate root for a household: it owns its members, the
// study comments and (through the finances domain) its transactions.
type Family struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	CivilStatus string    `gorm:"type:varchar(16);not null"`
	Locality    string    `gorm:"type:varchar(16);not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// Member is a person belonging to a family. It may specialize into a Student
// or a Tutor row. Members are deactivated, never removed, when a study is
// soft-deleted.
type Member struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	FamilyID  string    `gorm:"type:uuid;index;not null"`
	FullName  string    `gorm:"not null"`
	BirthDate time.Time `gorm:"type:date"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type Student struct {
	MemberID string `gorm:"type:uuid;primaryKey"`
	Grade    string `gorm:"type:varchar(32)"`
	Active   bool   `gorm:"not null;default:true"`
}

type Tutor struct {
	MemberID   string `gorm:"type:uuid;primaryKey"`
	Occupation string `gorm:"type:text"`
}

type Comment struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	FamilyID  string    `gorm:"type:uuid;index;not null"`
	AuthorID  string    `gorm:"type:uuid;not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type MemberWithProfiles struct {
	Member
	Student *Student
	Tutor   *Tutor
}

type CreateFamilyInput struct {
	Name        string
	CivilStatus string
	Locality    string
}

type UpdateFamilyInput struct {
	ID          string
	Name        string
	CivilStatus string
	Locality    string
}

type AddMemberInput struct {
	FamilyID  string
	FullName  string
	BirthDate time.Time
	Student   *Student
	Tutor     *Tutor
}
