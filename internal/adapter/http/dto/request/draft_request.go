package request

import "strings"

// AddDraftItemRequest selects a catalog item for the draft.
type AddDraftItemRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

func (r AddDraftItemRequest) ResolveItemID() string {
	return strings.TrimSpace(r.ItemID)
}

// SetQuantityRequest overwrites the quantity of a selected line. Quantities
// below 1, including the zero value, are accepted here and treated as a no-op
// downstream, so there is no required binding on the field.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}
