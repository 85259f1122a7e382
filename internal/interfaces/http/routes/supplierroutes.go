package routes

import (
	"github.com/gin-gonic/gin"

	supplierhandlers "flyadmin/internal/interfaces/http/handlers/supplier"
)

type SupplierRouteConfig struct {
	SupplierHandler *supplierhandlers.SupplierHandler
}

func SetupSupplierRoutes(api *gin.RouterGroup, config *SupplierRouteConfig) {
	suppliers := api.Group("/suppliers")
	{
		suppliers.GET("", config.SupplierHandler.ListSuppliers)
		suppliers.POST("", config.SupplierHandler.CreateSupplier)
	}
}
