package routes

import (
	"techflow_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathCustomers = "/customers"

func addCustomerRoutes(rg *gin.RouterGroup, customerHandler *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.SaveCustomer)
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.DELETE("/:id", customerHandler.DeleteCustomer)
	}
}
