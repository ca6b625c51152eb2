package finances

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestMonthlyValue(t *testing.T) {
	weekly := Period{ID: "p-week", Name: "Semanal", Factor: dec("4.3"), Multiplies: true}
	yearly := Period{ID: "p-year", Name: "Anual", Factor: dec("12"), Multiplies: false}
	monthly := Period{ID: "p-month", Name: "Mensual", Factor: dec("1"), Multiplies: true}

	tests := []struct {
		name        string
		transaction Transaction
		period      Period
		want        string
	}{
		{
			name:        "weekly income multiplies",
			transaction: Transaction{Amount: dec("100"), IsIncome: true, Active: true},
			period:      weekly,
			want:        "430",
		},
		{
			name:        "yearly income divides",
			transaction: Transaction{Amount: dec("1200"), IsIncome: true, Active: true},
			period:      yearly,
			want:        "100",
		},
		{
			name:        "yearly expense divides and negates",
			transaction: Transaction{Amount: dec("1200"), IsIncome: false, Active: true},
			period:      yearly,
			want:        "-100",
		},
		{
			name:        "monthly passes through",
			transaction: Transaction{Amount: dec("250.50"), IsIncome: true, Active: true},
			period:      monthly,
			want:        "250.5",
		},
		{
			name:        "inactive contributes zero",
			transaction: Transaction{Amount: dec("1200"), IsIncome: true, Active: false},
			period:      yearly,
			want:        "0",
		},
		{
			name:        "inactive expense contributes zero",
			transaction: Transaction{Amount: dec("500"), IsIncome: false, Active: false},
			period:      weekly,
			want:        "0",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MonthlyValue(tc.transaction, tc.period)
			if !got.Equal(dec(tc.want)) {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"100", "$100.00 mensuales"},
		{"-100", "$-100.00 mensuales"},
		{"0", "$0.00 mensuales"},
		{"1234.5", "$1234.50 mensuales"},
	}

	for _, tc := range tests {
		if got := FormatAmount(dec(tc.value)); got != tc.want {
			t.Fatalf("FormatAmount(%s): expected %q, got %q", tc.value, tc.want, got)
		}
	}
}
