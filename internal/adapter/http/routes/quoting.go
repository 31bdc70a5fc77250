package routes

import (
	"atelier_noiva/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog = "/catalog"
	PathDrafts  = "/drafts"
	PathQuotes  = "/quotes"
)

func addQuotingRoutes(
	rg *gin.RouterGroup,
	catalogHandler *handlers.CatalogHandler,
	draftHandler *handlers.DraftHandler,
	quoteHandler *handlers.QuoteHandler,
	paymentHandler *handlers.QuotePaymentHandler,
) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("", catalogHandler.ListItems)
		catalog.POST("", catalogHandler.CreateItem)
		catalog.GET("/:id", catalogHandler.GetItem)
		catalog.PUT("/:id", catalogHandler.UpdateItem)
		catalog.DELETE("/:id", catalogHandler.DeleteItem)
	}

	drafts := rg.Group(PathDrafts)
	{
		drafts.POST("", draftHandler.OpenDraft)
		drafts.GET("/:id", draftHandler.GetDraft)
		drafts.DELETE("/:id", draftHandler.DiscardDraft)
		drafts.POST("/:id/items", draftHandler.AddItem)
		drafts.PATCH("/:id/items/:item_id", draftHandler.SetQuantity)
		drafts.DELETE("/:id/items/:item_id", draftHandler.RemoveItem)
		drafts.POST("/:id/finalize", quoteHandler.FinalizeQuote)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.DELETE("/:id", quoteHandler.RemoveQuote)
		quotes.GET("/:id/pdf", quoteHandler.DownloadQuotePDF)
		quotes.POST("/:id/checkout", paymentHandler.CreatePaymentByQuoteID)
		quotes.GET("/:id/checkout", paymentHandler.GetPaymentByQuoteID)
	}
}
