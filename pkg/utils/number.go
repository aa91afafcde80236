package utils

import "github.com/shopspring/decimal"

// RoundWithTwoDecimalPlace arredonda para duas casas (meio para cima)
func RoundWithTwoDecimalPlace(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}

	return d.Round(2)
}

// AveragePerItem divide o total pela quantidade, retornando zero quando não há itens
func AveragePerItem(total decimal.Decimal, count int) decimal.Decimal {
	if count <= 0 {
		return decimal.Zero
	}

	return RoundWithTwoDecimalPlace(total.Div(decimal.NewFromInt(int64(count))))
}
