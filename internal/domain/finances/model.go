package finances

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	IncomeTypeVerifiable    = "verifiable"
	IncomeTypeNonVerifiable = "non_verifiable"
)

// Period is a named recurrence rate. Monthly normalization multiplies the
// amount by Factor when Multiplies is set and divides by it otherwise, so a
// weekly wage carries factor 4.3 with Multiplies=true while a yearly one
// carries factor 12 with Multiplies=false.
type Period struct {
	ID         string          `gorm:"type:uuid;primaryKey"`
	Name       string          `gorm:"not null;uniqueIndex"`
	Factor     decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	Multiplies bool            `gorm:"not null"`
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
}

// Transaction is a single periodic income or expense of a family. Rows are
// never hard-deleted; Active=false keeps the history while excluding the row
// from every total.
type Transaction struct {
	ID        string          `gorm:"type:uuid;primaryKey"`
	FamilyID  string          `gorm:"type:uuid;index;not null"`
	PeriodID  string          `gorm:"type:uuid;index;not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	IsIncome  bool            `gorm:"not null"`
	Active    bool            `gorm:"not null;default:true"`
	Note      string          `gorm:"type:text"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
}

// Income extends an income transaction with its verification details and,
// optionally, the guardian the money comes through.
type Income struct {
	TransactionID string     `gorm:"type:uuid;primaryKey"`
	DateReceived  time.Time  `gorm:"type:date;not null"`
	Type          string     `gorm:"type:varchar(16);not null"`
	TutorID       *string    `gorm:"type:uuid"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
}

type TransactionWithPeriod struct {
	Transaction
	Period Period
}

// Totals are the family-level monthly aggregates. Expenses are non-positive
// because normalization already negates non-income transactions, so
// Net == Income + Expenses by construction.
type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

type CreatePeriodInput struct {
	Name       string
	Factor     decimal.Decimal
	Multiplies bool
}

type IncomeDetails struct {
	DateReceived time.Time
	Type         string
	TutorID      *string
}

type CreateTransactionInput struct {
	FamilyID string
	PeriodID string
	Amount   decimal.Decimal
	IsIncome bool
	Note     string
	Income   *IncomeDetails
}

type UpdateTransactionInput struct {
	ID       string
	FamilyID string
	PeriodID string
	Amount   decimal.Decimal
	Note     string
}
