package finances

import "errors"

var (
	ErrPeriodNotFound      = errors.New("period not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrFamilyNotFound      = errors.New("family not found")
	ErrInvalidFactor       = errors.New("period factor must be positive")
	ErrNegativeAmount      = errors.New("amount must not be negative")
	ErrInvalidIncomeType   = errors.New("invalid income type")
	ErrNotIncome           = errors.New("transaction is not an income")
)
