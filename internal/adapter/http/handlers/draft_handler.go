package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "atelier_noiva/internal/adapter/http/dto/request"
	response "atelier_noiva/internal/adapter/http/dto/response"
	"atelier_noiva/internal/domain/entities"
	"atelier_noiva/internal/usecase"
	"atelier_noiva/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid draft payload", http.StatusBadRequest)
)

// DraftHandler exposes the quote line builder over HTTP.
//
// Every response carries the draft's lines plus totals recomputed with the
// payment terms supplied via query parameters (discount_percent,
// payment_method, installments), so the front-end always sees live numbers.

type DraftHandler struct {
	usecase usecase.IDraftUseCase
}

func NewDraftHandler(uc usecase.IDraftUseCase) *DraftHandler {
	return &DraftHandler{usecase: uc}
}

func (h *DraftHandler) OpenDraft(c *gin.Context) {
	d, err := h.usecase.Open(c.Request.Context())
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromDraft(d, usecase.PricingTotals{}))
}

func (h *DraftHandler) GetDraft(c *gin.Context) {
	h.respondWithDraft(c, http.StatusOK, c.Param("id"))
}

func (h *DraftHandler) AddItem(c *gin.Context) {
	var payload request.AddDraftItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}
	itemID := payload.ResolveItemID()
	if itemID == "" {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	if _, err := h.usecase.AddItem(c.Request.Context(), c.Param("id"), itemID); err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.respondWithDraft(c, http.StatusOK, c.Param("id"))
}

func (h *DraftHandler) SetQuantity(c *gin.Context) {
	var payload request.SetQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	if _, err := h.usecase.SetQuantity(c.Request.Context(), c.Param("id"), c.Param("item_id"), payload.Quantity); err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.respondWithDraft(c, http.StatusOK, c.Param("id"))
}

func (h *DraftHandler) RemoveItem(c *gin.Context) {
	if _, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("item_id")); err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.respondWithDraft(c, http.StatusOK, c.Param("id"))
}

func (h *DraftHandler) DiscardDraft(c *gin.Context) {
	if err := h.usecase.Discard(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DraftHandler) respondWithDraft(c *gin.Context, status int, draftID string) {
	d, err := h.usecase.Get(c.Request.Context(), draftID)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	totals, err := h.usecase.Preview(c.Request.Context(), draftID, termsFromQuery(c))
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(status, response.FromDraft(d, totals))
}

func termsFromQuery(c *gin.Context) entities.PaymentTerms {
	terms := entities.PaymentTerms{
		Method: entities.PaymentMethod(strings.ToLower(strings.TrimSpace(c.Query("payment_method")))),
	}
	if v, err := strconv.ParseFloat(c.Query("discount_percent"), 64); err == nil {
		terms.DiscountPercent = v
	}
	if v, err := strconv.Atoi(c.Query("installments")); err == nil {
		terms.Installments = v
	}
	return terms
}

func mapDraftError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDraftID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOutOfStock):
		return pkg.NewDomainErrorSimple("OUT_OF_STOCK", "Product out of stock", http.StatusConflict)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Quantity exceeds available stock", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
