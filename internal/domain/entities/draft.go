package entities

import "time"

// Draft is an in-progress quote: the ordered selection of catalog items being
// assembled before finalize. Drafts live in the in-memory draft store only and
// never reach DynamoDB; finalize turns a draft into a Quote and discards it.
type Draft struct {
	ID        string      `json:"id"`
	Lines     []QuoteLine `json:"lines"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// LineIndex returns the position of the line referencing itemID, or -1.
func (d Draft) LineIndex(itemID string) int {
	for i, l := range d.Lines {
		if l.ItemID == itemID {
			return i
		}
	}
	return -1
}
