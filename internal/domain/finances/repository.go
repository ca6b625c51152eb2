package finances

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	CreatePeriod(ctx context.Context, period *Period) error
	ListPeriods(ctx context.Context) ([]Period, error)
	GetPeriodByID(ctx context.Context, periodID string) (*Period, error)

	FamilyExists(ctx context.Context, familyID string) (bool, error)

	CreateTransaction(ctx context.Context, transaction *Transaction) error
	GetTransactionByID(ctx context.Context, familyID, transactionID string) (*Transaction, error)
	UpdateTransaction(ctx context.Context, transaction *Transaction) error
	SetTransactionActive(ctx context.Context, familyID, transactionID string, active bool) (bool, error)
	ListTransactionsByFamily(ctx context.Context, familyID string) ([]Transaction, error)
	GetPeriodsByIDs(ctx context.Context, periodIDs []string) (map[string]Period, error)

	CreateIncome(ctx context.Context, income *Income) error
	GetIncomeByTransaction(ctx context.Context, transactionID string) (*Income, error)
}
