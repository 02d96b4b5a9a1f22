package products

import "github.com/shopspring/decimal"

// Money es un importe exacto (DB: numeric(10,2)).
// A diferencia de decimal.Decimal, se serializa como número JSON: 150, no "150".
// Lectura y escritura en Postgres usan Scan/Value del decimal embebido.
type Money struct {
	decimal.Decimal
}

// NewMoney parsea un importe ("150", "150.50").
func NewMoney(value string) (Money, error) {
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{Decimal: parsed}, nil
}

// MoneyFromInt crea un importe entero.
func MoneyFromInt(value int64) Money {
	return Money{Decimal: decimal.NewFromInt(value)}
}

func (money Money) MarshalJSON() ([]byte, error) {
	return []byte(money.Decimal.String()), nil
}
