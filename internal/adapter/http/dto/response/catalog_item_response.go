package response

import (
	"time"

	"atelier_noiva/internal/domain/entities"
)

type CatalogItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Category  string    `json:"category"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromCatalogItem(i entities.CatalogItem) CatalogItemResponse {
	return CatalogItemResponse{
		ID:        i.ID,
		Name:      i.Name,
		Price:     reais(i.PriceCents),
		Category:  string(i.Category),
		Stock:     i.StockCount,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func FromCatalogItems(items []entities.CatalogItem) []CatalogItemResponse {
	out := make([]CatalogItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, FromCatalogItem(i))
	}
	return out
}

// reais converts integer centavos into the decimal representation used by the
// API surface. Division happens only here, at presentation time.
func reais(cents int64) float64 {
	return float64(cents) / 100
}
