package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Product is one catalog entry.
type Product struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Value is the stock value of the product (price × quantity).
func (p Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// NormalizeID returns the catalog key for a product id.
func NormalizeID(id string) string {
	return strings.ToUpper(id)
}

// NormalizeCategory upper-cases the first rune and lower-cases the rest.
func NormalizeCategory(category string) string {
	r, size := utf8.DecodeRuneInString(category)
	if r == utf8.RuneError && size <= 1 {
		return strings.ToLower(category)
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(category[size:])
}

// Summary aggregates the catalog.
type Summary struct {
	Products int             `json:"products"`
	Units    int             `json:"units"`
	Value    decimal.Decimal `json:"value"`
}

// Summarize folds products into a Summary.
func Summarize(products []Product) Summary {
	s := Summary{Value: decimal.Zero}
	for _, p := range products {
		s.Products++
		s.Units += p.Quantity
		s.Value = s.Value.Add(p.Value())
	}
	return s
}
