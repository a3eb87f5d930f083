package domain

// ConfigLoader loads application configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}

// Ledger is the inventory surface the presentation shells drive. Numeric
// arguments are raw text, exactly as a user typed them. Add, Restock and
// Reserve return the product as it stood right after the change.
type Ledger interface {
	Add(id, category, name, priceText, quantityText string) (Product, error)
	RemoveProduct(id string) error
	Restock(id, quantityText string) (Product, error)
	Reserve(id, quantityText string) (Product, error)
	Search(nameFilter, categoryFilter string) []Product
	Get(id string) (Product, error)
	Summary() Summary
}
