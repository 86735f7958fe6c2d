package routes

import (
	"techflow_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog = "/catalog"
	PathQuotes  = "/quotes"
)

func addCatalogRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	cat := rg.Group(PathCatalog)
	{
		cat.GET("/services", quoteHandler.ListServices)
		cat.GET("/hourly-rates", quoteHandler.ListHourlyRates)
	}
	rg.POST(PathQuotes, quoteHandler.CreateQuote)
}
