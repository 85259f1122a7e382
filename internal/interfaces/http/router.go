// Package http wires the gin engine, middleware and resource routes.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	customerhandlers "flyadmin/internal/interfaces/http/handlers/customer"
	dashboardhandlers "flyadmin/internal/interfaces/http/handlers/dashboard"
	supplierhandlers "flyadmin/internal/interfaces/http/handlers/supplier"
	tickethandlers "flyadmin/internal/interfaces/http/handlers/ticket"
	"flyadmin/internal/interfaces/http/middleware"
	"flyadmin/internal/interfaces/http/routes"
	"flyadmin/internal/shared/logger"
)

type Router struct {
	engine           *gin.Engine
	ticketHandler    *tickethandlers.TicketHandler
	customerHandler  *customerhandlers.CustomerHandler
	supplierHandler  *supplierhandlers.SupplierHandler
	dashboardHandler *dashboardhandlers.DashboardHandler
	logger           logger.Interface
}

func NewRouter(
	ticketHandler *tickethandlers.TicketHandler,
	customerHandler *customerhandlers.CustomerHandler,
	supplierHandler *supplierhandlers.SupplierHandler,
	dashboardHandler *dashboardhandlers.DashboardHandler,
	log logger.Interface,
) *Router {
	return &Router{
		engine:           gin.New(),
		ticketHandler:    ticketHandler,
		customerHandler:  customerHandler,
		supplierHandler:  supplierHandler,
		dashboardHandler: dashboardHandler,
		logger:           log,
	}
}

func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestLogger(r.logger))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api/v1")

	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler: r.ticketHandler,
	})
	routes.SetupCustomerRoutes(api, &routes.CustomerRouteConfig{
		CustomerHandler: r.customerHandler,
	})
	routes.SetupSupplierRoutes(api, &routes.SupplierRouteConfig{
		SupplierHandler: r.supplierHandler,
	})
	routes.SetupDashboardRoutes(api, &routes.DashboardRouteConfig{
		DashboardHandler: r.dashboardHandler,
	})
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
