package finances

import "github.com/shopspring/decimal"

// MonthlyValue normalizes a transaction to its signed monthly figure. An
// inactive transaction always normalizes to exactly zero: it models "we
// stopped counting it", not a zero income. The result is exact decimal
// arithmetic so totals never drift across many transactions.
//
// Period validity (Factor > 0) is enforced at period creation, so the
// division below cannot hit zero for rows created through this package.
func MonthlyValue(transaction Transaction, period Period) decimal.Decimal {
	if !transaction.Active {
		return decimal.Zero
	}

	signed := transaction.Amount
	if !transaction.IsIncome {
		signed = signed.Neg()
	}

	if period.Multiplies {
		return signed.Mul(period.Factor)
	}
	return signed.Div(period.Factor)
}

// FormatAmount renders a monthly figure the way award letters print it,
// e.g. "$1250.00 mensuales".
func FormatAmount(value decimal.Decimal) string {
	return "$" + value.StringFixed(2) + " mensuales"
}
