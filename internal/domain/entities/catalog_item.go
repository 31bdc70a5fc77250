package entities

import "time"

// ItemCategory distinguishes services (unlimited availability) from products
// (finite stock).
//
// Domain notes:
//   - "servico" items ignore StockCount entirely.
//   - "produto" items may only be quoted while StockCount covers the quantity.

type ItemCategory string

const (
	ItemCategoryServico ItemCategory = "servico"
	ItemCategoryProduto ItemCategory = "produto"
)

func (c ItemCategory) Valid() bool {
	return c == ItemCategoryServico || c == ItemCategoryProduto
}

// CatalogItem is an orderable studio offering persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - PriceCents holds the unit price in centavos. All arithmetic stays in
//     integer cents; conversion to reais happens only at the HTTP boundary.
type CatalogItem struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	PriceCents int64        `json:"price_cents"`
	Category   ItemCategory `json:"category"`
	StockCount int          `json:"stock_count"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func (i CatalogItem) IsProduct() bool {
	return i.Category == ItemCategoryProduto
}
