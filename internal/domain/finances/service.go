package finances

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreatePeriod(ctx context.Context, input CreatePeriodInput) (*Period, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !input.Factor.IsPositive() {
		return nil, ErrInvalidFactor
	}

	period := Period{
		ID:         uuid.NewString(),
		Name:       name,
		Factor:     input.Factor,
		Multiplies: input.Multiplies,
	}

	if err := s.repo.CreatePeriod(ctx, &period); err != nil {
		return nil, err
	}

	return &period, nil
}

func (s *Service) ListPeriods(ctx context.Context) ([]Period, error) {
	return s.repo.ListPeriods(ctx)
}

func (s *Service) GetPeriod(ctx context.Context, periodID string) (*Period, error) {
	return s.repo.GetPeriodByID(ctx, periodID)
}

func (s *Service) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*Transaction, error) {
	if input.Amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if input.Income != nil {
		if !input.IsIncome {
			return nil, ErrNotIncome
		}
		if input.Income.Type != IncomeTypeVerifiable && input.Income.Type != IncomeTypeNonVerifiable {
			return nil, ErrInvalidIncomeType
		}
	}

	transaction := Transaction{
		ID:       uuid.NewString(),
		FamilyID: input.FamilyID,
		PeriodID: input.PeriodID,
		Amount:   input.Amount,
		IsIncome: input.IsIncome,
		Active:   true,
		Note:     strings.TrimSpace(input.Note),
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		exists, err := tx.FamilyExists(ctx, input.FamilyID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrFamilyNotFound
		}

		if _, err := tx.GetPeriodByID(ctx, input.PeriodID); err != nil {
			return err
		}

		if err := tx.CreateTransaction(ctx, &transaction); err != nil {
			return err
		}

		if input.Income != nil {
			income := Income{
				TransactionID: transaction.ID,
				DateReceived:  input.Income.DateReceived,
				Type:          input.Income.Type,
				TutorID:       input.Income.TutorID,
			}
			return tx.CreateIncome(ctx, &income)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &transaction, nil
}

func (s *Service) UpdateTransaction(ctx context.Context, input UpdateTransactionInput) (*Transaction, error) {
	if input.Amount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	var updated Transaction
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		transaction, err := tx.GetTransactionByID(ctx, input.FamilyID, input.ID)
		if err != nil {
			return err
		}

		if _, err := tx.GetPeriodByID(ctx, input.PeriodID); err != nil {
			return err
		}

		transaction.PeriodID = input.PeriodID
		transaction.Amount = input.Amount
		transaction.Note = strings.TrimSpace(input.Note)
		transaction.UpdatedAt = time.Now().UTC()

		if err := tx.UpdateTransaction(ctx, transaction); err != nil {
			return err
		}

		updated = *transaction
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeactivateTransaction excludes a transaction from every total while keeping
// the row. There is no hard delete for transactions.
func (s *Service) DeactivateTransaction(ctx context.Context, familyID, transactionID string) error {
	found, err := s.repo.SetTransactionActive(ctx, familyID, transactionID, false)
	if err != nil {
		return err
	}
	if !found {
		return ErrTransactionNotFound
	}
	return nil
}

func (s *Service) ReactivateTransaction(ctx context.Context, familyID, transactionID string) error {
	found, err := s.repo.SetTransactionActive(ctx, familyID, transactionID, true)
	if err != nil {
		return err
	}
	if !found {
		return ErrTransactionNotFound
	}
	return nil
}

func (s *Service) ListTransactions(ctx context.Context, familyID string) ([]TransactionWithPeriod, error) {
	exists, err := s.repo.FamilyExists(ctx, familyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrFamilyNotFound
	}

	transactions, err := s.repo.ListTransactionsByFamily(ctx, familyID)
	if err != nil {
		return nil, err
	}

	periods, err := s.periodsFor(ctx, transactions)
	if err != nil {
		return nil, err
	}

	items := make([]TransactionWithPeriod, 0, len(transactions))
	for _, transaction := range transactions {
		items = append(items, TransactionWithPeriod{
			Transaction: transaction,
			Period:      periods[transaction.PeriodID],
		})
	}

	return items, nil
}

func (s *Service) GetIncome(ctx context.Context, familyID, transactionID string) (*Income, error) {
	if _, err := s.repo.GetTransactionByID(ctx, familyID, transactionID); err != nil {
		return nil, err
	}
	return s.repo.GetIncomeByTransaction(ctx, transactionID)
}

// FamilyTotals aggregates the monthly-normalized figures for a family.
// Expenses come back non-positive, so Net equals Income plus Expenses.
func (s *Service) FamilyTotals(ctx context.Context, familyID string) (Totals, error) {
	exists, err := s.repo.FamilyExists(ctx, familyID)
	if err != nil {
		return Totals{}, err
	}
	if !exists {
		return Totals{}, ErrFamilyNotFound
	}

	transactions, err := s.repo.ListTransactionsByFamily(ctx, familyID)
	if err != nil {
		return Totals{}, err
	}

	periods, err := s.periodsFor(ctx, transactions)
	if err != nil {
		return Totals{}, err
	}

	totals := Totals{
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
		Net:      decimal.Zero,
	}

	for _, transaction := range transactions {
		value := MonthlyValue(transaction, periods[transaction.PeriodID])
		if transaction.IsIncome {
			totals.Income = totals.Income.Add(value)
		} else {
			totals.Expenses = totals.Expenses.Add(value)
		}
		totals.Net = totals.Net.Add(value)
	}

	return totals, nil
}

func (s *Service) periodsFor(ctx context.Context, transactions []Transaction) (map[string]Period, error) {
	if len(transactions) == 0 {
		return map[string]Period{}, nil
	}

	seen := make(map[string]struct{}, len(transactions))
	ids := make([]string, 0, len(transactions))
	for _, transaction := range transactions {
		if _, ok := seen[transaction.PeriodID]; ok {
			continue
		}
		seen[transaction.PeriodID] = struct{}{}
		ids = append(ids, transaction.PeriodID)
	}

	return s.repo.GetPeriodsByIDs(ctx, ids)
}
