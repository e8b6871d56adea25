package domain

import "github.com/shopspring/decimal"

var gramsPerKg = decimal.NewFromInt(1000)

// FormatGrams renders a weight in kilograms as whole grams, e.g. 0.4 -> "400g".
func FormatGrams(kg decimal.Decimal) string {
	return kg.Mul(gramsPerKg).StringFixed(0) + "g"
}

// FormatKilograms renders a weight with one decimal place, e.g. 1.5 -> "1.5kg".
func FormatKilograms(kg decimal.Decimal) string {
	return kg.StringFixed(1) + "kg"
}
