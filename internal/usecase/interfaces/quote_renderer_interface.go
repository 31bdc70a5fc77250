package interfaces

import "atelier_noiva/internal/domain/entities"

// IQuoteDocumentRenderer turns a finalized quote into a printable document
// (PDF). The core only supplies the Quote value; layout belongs to the
// renderer.
type IQuoteDocumentRenderer interface {
	Render(q entities.Quote) ([]byte, error)
}
