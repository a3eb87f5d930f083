// Package inventory implements the in-memory catalog engine. Every operation
// validates its raw input, locates the product and mutates the catalog while
// holding a single lock, so a failed call never leaves partial state behind.
package inventory

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/truestock/truestock/internal/domain"
)

// Accepted prices have at most maxPriceScale fractional digits and stay
// below maxPrice.
const (
	maxPriceScale    = 10
	maxPriceExponent = 15
)

var maxPrice = decimal.New(1, maxPriceExponent)

// Engine owns the catalog. The zero value is an empty, ready-to-use catalog.
type Engine struct {
	mu       sync.Mutex
	products []*domain.Product
	// units is the catalog-wide stock, kept so totals never overflow int.
	units int
}

var _ domain.Ledger = (*Engine)(nil)

// New returns an empty engine.
func New() *Engine {
	return &Engine{}
}

// NewSeeded returns an engine holding seed, added in order through
// AddProduct so seeds obey the same rules as user input.
func NewSeeded(seed []domain.SeedProduct) (*Engine, error) {
	e := New()
	for i, s := range seed {
		if err := e.AddProduct(s.ID, s.Category, s.Name, s.Price, s.Quantity); err != nil {
			return nil, fmt.Errorf("seed entry %d (%s): %w", i, s.ID, err)
		}
	}
	return e, nil
}

// AddProduct validates and appends a new product. id is stored upper-cased
// and category title-cased.
func (e *Engine) AddProduct(id, category, name, priceText, quantityText string) error {
	_, err := e.Add(id, category, name, priceText, quantityText)
	return err
}

// Add is AddProduct returning a copy of the stored product.
func (e *Engine) Add(id, category, name, priceText, quantityText string) (domain.Product, error) {
	id, category = strings.TrimSpace(id), strings.TrimSpace(category)
	if id == "" || category == "" || isBlank(name) || isBlank(priceText) || isBlank(quantityText) {
		return domain.Product{}, domain.Invalid("", domain.MsgAllFieldsRequired)
	}

	price, err := parsePrice(priceText)
	if err != nil {
		return domain.Product{}, err
	}
	qty, err := strconv.Atoi(strings.TrimSpace(quantityText))
	if err != nil {
		return domain.Product{}, domain.Invalid("quantity", domain.MsgInvalidPriceQuantity)
	}
	if !price.IsPositive() || qty <= 0 {
		return domain.Product{}, domain.Invalid("", domain.MsgPriceQuantityPositive)
	}

	p := &domain.Product{
		ID:       domain.NormalizeID(id),
		Category: domain.NormalizeCategory(category),
		Name:     name,
		Price:    price,
		Quantity: qty,
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.indexOf(p.ID) >= 0 {
		return domain.Product{}, domain.Invalid("id", domain.MsgDuplicateID)
	}
	if qty > math.MaxInt-e.units {
		return domain.Product{}, domain.Invalid("quantity", domain.MsgQuantityTooLarge)
	}
	e.products = append(e.products, p)
	e.units += qty
	return *p, nil
}

// RemoveProduct deletes the product matching id.
func (e *Engine) RemoveProduct(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Invalid("id", domain.MsgIDRequiredForRemove)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.indexOf(id)
	if i < 0 {
		return &domain.NotFoundError{ID: id, Remove: true}
	}
	e.units -= e.products[i].Quantity
	e.products = slices.Delete(e.products, i, i+1)
	return nil
}

// RestockProduct adds the parsed quantity to the product's stock.
func (e *Engine) RestockProduct(id, quantityText string) error {
	_, err := e.Restock(id, quantityText)
	return err
}

// Restock is RestockProduct returning a copy of the updated product.
func (e *Engine) Restock(id, quantityText string) (domain.Product, error) {
	id, qty, err := parseMovement(id, quantityText)
	if err != nil {
		return domain.Product{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.indexOf(id)
	if i < 0 {
		return domain.Product{}, &domain.NotFoundError{ID: id}
	}
	if qty > math.MaxInt-e.units {
		return domain.Product{}, domain.Invalid("quantity", domain.MsgQuantityTooLarge)
	}
	p := e.products[i]
	p.Quantity += qty
	e.units += qty
	return *p, nil
}

// ReserveProduct takes the parsed quantity out of the product's stock. The
// request is rejected whole when stock is short.
func (e *Engine) ReserveProduct(id, quantityText string) error {
	_, err := e.Reserve(id, quantityText)
	return err
}

// Reserve is ReserveProduct returning a copy of the updated product.
func (e *Engine) Reserve(id, quantityText string) (domain.Product, error) {
	id, qty, err := parseMovement(id, quantityText)
	if err != nil {
		return domain.Product{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.indexOf(id)
	if i < 0 {
		return domain.Product{}, &domain.NotFoundError{ID: id}
	}
	p := e.products[i]
	if p.Quantity < qty {
		return domain.Product{}, &domain.InsufficientStockError{ID: id, Available: p.Quantity, Requested: qty}
	}
	p.Quantity -= qty
	e.units -= qty
	return *p, nil
}

// Search returns copies of the products whose name and category contain the
// given filters, case-insensitively. An empty filter matches everything, so
// Search("", "") lists the whole catalog in insertion order.
func (e *Engine) Search(nameFilter, categoryFilter string) []domain.Product {
	name := strings.ToLower(strings.TrimSpace(nameFilter))
	category := strings.ToLower(strings.TrimSpace(categoryFilter))

	e.mu.Lock()
	defer e.mu.Unlock()

	found := make([]domain.Product, 0, len(e.products))
	for _, p := range e.products {
		if name != "" && !strings.Contains(strings.ToLower(p.Name), name) {
			continue
		}
		if category != "" && !strings.Contains(strings.ToLower(p.Category), category) {
			continue
		}
		found = append(found, *p)
	}
	return found
}

// Get returns a copy of the product matching id.
func (e *Engine) Get(id string) (domain.Product, error) {
	id = strings.TrimSpace(id)

	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.indexOf(id)
	if i < 0 {
		return domain.Product{}, &domain.NotFoundError{ID: id}
	}
	return *e.products[i], nil
}

// Len reports the number of products in the catalog.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.products)
}

// Summary aggregates the current catalog.
func (e *Engine) Summary() domain.Summary {
	return domain.Summarize(e.Search("", ""))
}

// indexOf finds id case-insensitively. Callers hold e.mu.
func (e *Engine) indexOf(id string) int {
	for i, p := range e.products {
		if strings.EqualFold(p.ID, id) {
			return i
		}
	}
	return -1
}

// parsePrice rejects prices too precise or too large to store. The sign is
// checked by the caller.
func parsePrice(text string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Decimal{}, domain.Invalid("price", domain.MsgInvalidPriceQuantity)
	}
	exp := price.Exponent()
	if exp < -maxPriceScale || exp > maxPriceExponent || price.Abs().GreaterThanOrEqual(maxPrice) {
		return decimal.Decimal{}, domain.Invalid("price", domain.MsgInvalidPriceQuantity)
	}
	return price, nil
}

// parseMovement validates the shared restock/reserve input.
func parseMovement(id, quantityText string) (string, int, error) {
	id = strings.TrimSpace(id)
	if id == "" || isBlank(quantityText) {
		return "", 0, domain.Invalid("", domain.MsgIDAndQuantityRequired)
	}
	qty, err := strconv.Atoi(strings.TrimSpace(quantityText))
	if err != nil {
		return "", 0, domain.Invalid("quantity", domain.MsgInvalidQuantity)
	}
	if qty <= 0 {
		return "", 0, domain.Invalid("quantity", domain.MsgQuantityPositive)
	}
	return id, qty, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
