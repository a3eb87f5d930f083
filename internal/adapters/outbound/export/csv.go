package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/truestock/truestock/internal/domain"
)

type productRow struct {
	ID       string `csv:"id"`
	Category string `csv:"category"`
	Name     string `csv:"name"`
	Price    string `csv:"price"`
	Quantity int    `csv:"quantity"`
	Value    string `csv:"value"`
}

// WriteCSV writes products as CSV with a header row. Prices are written
// with two decimal places.
func WriteCSV(w io.Writer, products []domain.Product) error {
	rows := make([]*productRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, &productRow{
			ID:       p.ID,
			Category: p.Category,
			Name:     p.Name,
			Price:    p.Price.StringFixed(2),
			Quantity: p.Quantity,
			Value:    p.Value().StringFixed(2),
		})
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}
