package service

import "github.com/shopspring/decimal"

// LineTotal is quantity times unitPrice, rounded to cents.
func LineTotal(quantity int, unitPrice float64) float64 {
	total := decimal.NewFromFloat(unitPrice).
		Mul(decimal.NewFromInt(int64(quantity))).
		Round(2)
	f, _ := total.Float64()
	return f
}
