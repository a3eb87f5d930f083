package application

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/truestock/truestock/internal/domain"
	"github.com/truestock/truestock/internal/domain/inventory"
)

// Operation names used in log entries.
const (
	OpAdd     = "add"
	OpRemove  = "remove"
	OpRestock = "restock"
	OpReserve = "reserve"
)

// InventoryService is the entry point the presentation shells share:
// seed engine -> validated mutations, with every outcome logged.
type InventoryService struct {
	ledger   domain.Ledger
	currency string
	log      *zap.Logger
}

// NewInventoryService wraps an existing ledger.
func NewInventoryService(ledger domain.Ledger, currency string, log *zap.Logger) *InventoryService {
	if log == nil {
		log = zap.NewNop()
	}
	return &InventoryService{ledger: ledger, currency: currency, log: log}
}

// NewInventoryFromConfig seeds a fresh engine from cfg.
func NewInventoryFromConfig(cfg domain.Config, log *zap.Logger) (*InventoryService, error) {
	seed := cfg.SeedOrDefault()
	engine, err := inventory.NewSeeded(seed)
	if err != nil {
		return nil, fmt.Errorf("seeding catalog: %w", err)
	}

	svc := NewInventoryService(engine, cfg.Currency, log)
	svc.log.Debug("catalog seeded", zap.Int("products", len(seed)))
	return svc, nil
}

// Currency is the label rendered in front of prices.
func (s *InventoryService) Currency() string { return s.currency }

func (s *InventoryService) AddProduct(id, category, name, priceText, quantityText string) (domain.Product, error) {
	p, err := s.ledger.Add(id, category, name, priceText, quantityText)
	s.record(OpAdd, id, err, zap.String("category", category), zap.String("price", priceText), zap.String("quantity", quantityText))
	return p, err
}

func (s *InventoryService) RemoveProduct(id string) error {
	err := s.ledger.RemoveProduct(id)
	s.record(OpRemove, id, err)
	return err
}

func (s *InventoryService) RestockProduct(id, quantityText string) (domain.Product, error) {
	p, err := s.ledger.Restock(id, quantityText)
	s.record(OpRestock, id, err, zap.String("quantity", quantityText))
	return p, err
}

func (s *InventoryService) ReserveProduct(id, quantityText string) (domain.Product, error) {
	p, err := s.ledger.Reserve(id, quantityText)
	s.record(OpReserve, id, err, zap.String("quantity", quantityText))
	return p, err
}

func (s *InventoryService) Search(nameFilter, categoryFilter string) []domain.Product {
	return s.ledger.Search(nameFilter, categoryFilter)
}

func (s *InventoryService) List() []domain.Product {
	return s.ledger.Search("", "")
}

func (s *InventoryService) Get(id string) (domain.Product, error) {
	return s.ledger.Get(id)
}

func (s *InventoryService) Summary() domain.Summary {
	return s.ledger.Summary()
}

// record logs an operation outcome. Rejected input is an expected outcome
// and stays at debug level.
func (s *InventoryService) record(op, id string, err error, fields ...zap.Field) {
	fields = append(fields, zap.String("op", op), zap.String("id", id))
	if err == nil {
		s.log.Info("inventory updated", fields...)
		return
	}

	kind := domain.ErrorKind(err)
	fields = append(fields, zap.String("kind", kind), zap.Error(err))
	if kind == domain.KindInternal {
		s.log.Error("inventory operation failed", fields...)
		return
	}
	s.log.Debug("inventory operation rejected", fields...)
}
