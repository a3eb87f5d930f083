package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/truestock/truestock/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#22849E") // teal
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

// LowStock is the quantity at or below which stock is highlighted.
const LowStock = 5

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 4).
			Align(lipgloss.Center)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	headCellStyle = cellStyle.Bold(true).Foreground(accent)
)

var catalogHeaders = []string{"ID", "Category", "Name", "Price", "Quantity"}

const (
	colPrice    = 3
	colQuantity = 4
)

// RenderCatalog renders products as a table followed by a summary line.
func RenderCatalog(products []domain.Product, currency string) string {
	var b strings.Builder

	b.WriteString(boxStyle.Render(headerStyle.Render("TrueStock Inventory System")))
	b.WriteString("\n")

	if len(products) == 0 {
		b.WriteString("  " + dimStyle.Render("Catalog is empty.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.ID,
			p.Category,
			p.Name,
			FormatPrice(currency, p),
			strconv.Itoa(p.Quantity),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(faintStyle).
		Headers(catalogHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headCellStyle
			}
			switch col {
			case colPrice:
				return cellStyle.Align(lipgloss.Right)
			case colQuantity:
				return cellStyle.Align(lipgloss.Right).Foreground(stockColor(products[row].Quantity))
			default:
				return cellStyle
			}
		})

	b.WriteString(t.String())
	b.WriteString("\n")
	b.WriteString(RenderSummary(domain.Summarize(products), currency))
	return b.String()
}

// RenderSummary renders the product count, unit count and stock value.
func RenderSummary(s domain.Summary, currency string) string {
	return fmt.Sprintf("  %s  %s  %s\n",
		titleStyle.Render(fmt.Sprintf("%d products", s.Products)),
		dimStyle.Render(fmt.Sprintf("%d units", s.Units)),
		dimStyle.Render("value "+prefixed(currency, s.Value.StringFixed(2))),
	)
}

// FormatPrice renders a product price with the currency label.
func FormatPrice(currency string, p domain.Product) string {
	return prefixed(currency, p.Price.StringFixed(2))
}

func prefixed(currency, amount string) string {
	if currency == "" {
		return amount
	}
	return currency + " " + amount
}

func stockColor(qty int) lipgloss.Color {
	switch {
	case qty == 0:
		return danger
	case qty <= LowStock:
		return warning
	default:
		return success
	}
}
