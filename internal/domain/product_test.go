package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/truestock/truestock/internal/domain"
)

func TestNormalizeID(t *testing.T) {
	assert.Equal(t, "M002", domain.NormalizeID("m002"))
	assert.Equal(t, "ABC-9", domain.NormalizeID("aBc-9"))
}

func TestNormalizeCategory(t *testing.T) {
	tests := map[string]string{
		"monitor":        "Monitor",
		"MONITOR":        "Monitor",
		"gaming MONITOR": "Gaming monitor",
		"m":              "M",
		"":               "",
		"éCRAN":          "Écran",
		"4k displays":    "4k displays",
	}
	for in, want := range tests {
		assert.Equal(t, want, domain.NormalizeCategory(in), "input %q", in)
	}
}

func TestProductValue(t *testing.T) {
	p := domain.Product{Price: decimal.RequireFromString("19.99"), Quantity: 3}
	assert.Equal(t, "59.97", p.Value().String())
}

func TestSummarize_Empty(t *testing.T) {
	s := domain.Summarize(nil)
	assert.Zero(t, s.Products)
	assert.Zero(t, s.Units)
	assert.True(t, s.Value.IsZero())
}
