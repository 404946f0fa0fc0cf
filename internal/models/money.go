package models

import "github.com/shopspring/decimal"

// Money is a fixed-point monetary amount. Plain decimal marshaling trims
// trailing zeros ("30", "5.4"); amounts must cross the API boundary as
// two-decimal strings, so Money overrides MarshalJSON with StringFixed(2).
// Scanning, arithmetic and unmarshaling come from the embedded decimal.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money { return Money{Decimal: d} }

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}
