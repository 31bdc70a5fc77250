package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	request "atelier_noiva/internal/adapter/http/dto/request"
	response "atelier_noiva/internal/adapter/http/dto/response"
	"atelier_noiva/internal/usecase"
	"atelier_noiva/internal/usecase/interfaces"
	"atelier_noiva/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for finalized quotes, including the
// printable PDF export.

type QuoteHandler struct {
	usecase  usecase.IQuoteUseCase
	renderer interfaces.IQuoteDocumentRenderer
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, renderer interfaces.IQuoteDocumentRenderer) *QuoteHandler {
	return &QuoteHandler{usecase: uc, renderer: renderer}
}

// FinalizeQuote validates the draft plus customer fields, prices the
// selection and persists the quote.
func (h *QuoteHandler) FinalizeQuote(c *gin.Context) {
	var payload request.FinalizeQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Finalize(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(q))
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) RemoveQuote(c *gin.Context) {
	if err := h.usecase.Remove(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// DownloadQuotePDF renders the quote as a printable document.
func (h *QuoteHandler) DownloadQuotePDF(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	pdf, err := h.renderer.Render(q)
	if err != nil {
		log.Printf("[quote][handler] pdf render failed quote_id=%s err=%v", q.ID, err)
		appErr := pkg.NewDomainError("PDF_RENDER_FAILED", "Failed to render quote document", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filename := fmt.Sprintf("Orcamento_%s_%s.pdf", strings.ReplaceAll(q.BrideName, " ", "_"), q.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidDraftID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteValidation):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Required quote fields missing or no items selected", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Quantity exceeds available stock", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
