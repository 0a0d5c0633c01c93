package app

import (
	authHandler "catalog-service/internal/handlers/auth"
	customerHandler "catalog-service/internal/handlers/customer"
	productHandler "catalog-service/internal/handlers/product"
	"catalog-service/internal/middleware"
	"catalog-service/internal/websocket"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	AuthHandler     *authHandler.AuthHandler
	ProductHandler  *productHandler.ProductHandler
	CustomerHandler *customerHandler.CustomerHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Hub             *websocket.Hub
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== WebSocket ====================
	r.GET("/ws", func(c *gin.Context) {
		if err := h.Hub.ServeWS(c.Writer, c.Request); err != nil {
			c.Status(400)
		}
	})

	// ==================== Auth ====================
	api.POST("/auth/token", h.AuthHandler.IssueToken)

	// ==================== Products ====================
	products := api.Group("/products")
	{
		products.GET("", h.ProductHandler.ListProducts)
		products.GET("/:id", h.ProductHandler.GetProduct)
		products.GET("/category/:category", h.ProductHandler.GetProductsByCategory)

		mutate := products.Group("")
		mutate.Use(h.AuthMiddleware.Auth())
		{
			mutate.POST("", h.ProductHandler.CreateProduct)
			mutate.PUT("/:id", h.ProductHandler.UpdateProduct)
			mutate.DELETE("/:id", h.ProductHandler.DeleteProduct)
		}
	}

	// ==================== Customers ====================
	customers := api.Group("/customers")
	{
		customers.GET("", h.CustomerHandler.ListCustomers)
		customers.GET("/:id", h.CustomerHandler.GetCustomer)
		customers.GET("/country/:country", h.CustomerHandler.GetCustomersByCountry)

		mutate := customers.Group("")
		mutate.Use(h.AuthMiddleware.Auth())
		{
			mutate.POST("", h.CustomerHandler.CreateCustomer)
			mutate.PUT("/:id", h.CustomerHandler.UpdateCustomer)
			mutate.DELETE("/:id", h.CustomerHandler.DeleteCustomer)
		}
	}
}
