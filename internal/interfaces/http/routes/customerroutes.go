package routes

import (
	"github.com/gin-gonic/gin"

	customerhandlers "flyadmin/internal/interfaces/http/handlers/customer"
)

type CustomerRouteConfig struct {
	CustomerHandler *customerhandlers.CustomerHandler
}

func SetupCustomerRoutes(api *gin.RouterGroup, config *CustomerRouteConfig) {
	customers := api.Group("/customers")
	{
		customers.GET("", config.CustomerHandler.ListCustomers)
		customers.POST("", config.CustomerHandler.CreateCustomer)
	}
}
