package domain

import "github.com/shopspring/decimal"

// QuotationToFloat converts the API's units+nano encoding to a float64
// price. The intermediate arithmetic is exact; only the final value is
// rounded to the nearest representable float.
func QuotationToFloat(units int64, nano int32) float64 {
	return decimal.New(units, 0).
		Add(decimal.New(int64(nano), -9)).
		InexactFloat64()
}

// Float returns the money amount as a float64.
func (m Money) Float() float64 {
	return QuotationToFloat(m.Units, m.Nano)
}
