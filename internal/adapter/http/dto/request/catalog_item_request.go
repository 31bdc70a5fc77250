package request

import (
	"errors"
	"math"
	"strings"

	"atelier_noiva/internal/domain/entities"
	"atelier_noiva/internal/usecase"
)

var (
	ErrInvalidItemPayload = errors.New("invalid catalog item payload")
)

// CatalogItemRequest is the create/update payload for inventory items.
//
// Price comes in reais (e.g. 350.00) and is converted to integer centavos at
// this boundary; everything past the DTO layer works in cents.
type CatalogItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	Category string  `json:"category" binding:"required"`
	Stock    int     `json:"stock"`
}

func (r CatalogItemRequest) ToInput() (usecase.CatalogItemInput, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" || r.Price < 0 || r.Stock < 0 {
		return usecase.CatalogItemInput{}, ErrInvalidItemPayload
	}

	category := entities.ItemCategory(strings.ToLower(strings.TrimSpace(r.Category)))
	if !category.Valid() {
		return usecase.CatalogItemInput{}, ErrInvalidItemPayload
	}

	return usecase.CatalogItemInput{
		Name:       name,
		PriceCents: int64(math.Round(r.Price * 100)),
		Category:   category,
		StockCount: r.Stock,
	}, nil
}
