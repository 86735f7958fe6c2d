package routes

import (
	"techflow_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}
