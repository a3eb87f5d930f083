package tui_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/truestock/truestock/internal/adapters/outbound/tui"
	"github.com/truestock/truestock/internal/domain"
)

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: "L001", Category: "Laptop", Name: "Apple MacBook Pro M4", Price: decimal.RequireFromString("479900"), Quantity: 5},
		{ID: "K001", Category: "Keyboard", Name: "Logitech G512 CARBON", Price: decimal.RequireFromString("34500"), Quantity: 0},
	}
}

func TestRenderCatalog_ContainsRows(t *testing.T) {
	output := tui.RenderCatalog(sampleProducts(), "Rs.")
	assert.Contains(t, output, "TrueStock Inventory System")
	assert.Contains(t, output, "ID")
	assert.Contains(t, output, "Quantity")
	assert.Contains(t, output, "L001")
	assert.Contains(t, output, "Apple MacBook Pro M4")
	assert.Contains(t, output, "Rs. 479900.00")
	assert.Contains(t, output, "Logitech G512 CARBON")
}

func TestRenderCatalog_Summary(t *testing.T) {
	output := tui.RenderCatalog(sampleProducts(), "Rs.")
	assert.Contains(t, output, "2 products")
	assert.Contains(t, output, "5 units")
	assert.Contains(t, output, "value Rs. 2399500.00")
}

func TestRenderCatalog_Empty(t *testing.T) {
	output := tui.RenderCatalog(nil, "Rs.")
	assert.Contains(t, output, "Catalog is empty.")
}

func TestFormatPrice_NoCurrency(t *testing.T) {
	p := domain.Product{Price: decimal.RequireFromString("9.5")}
	assert.Equal(t, "9.50", tui.FormatPrice("", p))
}

func TestRenderError_KeepsEngineMessage(t *testing.T) {
	err := fmt.Errorf("reserve: %w", &domain.InsufficientStockError{ID: "L001"})
	output := tui.RenderError(err)
	assert.Contains(t, output, "insufficient stock")
	assert.Contains(t, output, "Not enough stock for product ID: L001")
	assert.NotContains(t, output, "reserve:")
}

func TestErrorTag(t *testing.T) {
	assert.Equal(t, "invalid input", tui.ErrorTag(domain.Invalid("", domain.MsgAllFieldsRequired)))
	assert.Equal(t, "not found", tui.ErrorTag(&domain.NotFoundError{ID: "x"}))
	assert.Equal(t, "error", tui.ErrorTag(errors.New("boom")))
}

func TestRenderSuccessAndNoMatch(t *testing.T) {
	assert.Contains(t, tui.RenderSuccess(tui.MsgReserved), "Reserved successfully!")
	assert.Contains(t, tui.RenderNoMatch(), "Product not found!")
}
