package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gearstore/gearstore-api/internal/handlers"
	"github.com/gearstore/gearstore-api/internal/middleware"
)

// CORSMiddleware allows the storefront clients to call the API from a
// browser context.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware())

	v1 := router.Group("/v1")
	{
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth Routes (Public) ---
		v1.POST("/auth/register", h.Register)
		v1.POST("/auth/login", h.Login)
		v1.POST("/auth/forgot-password", h.ForgotPassword)

		// --- Catalog Routes (Public) ---
		v1.GET("/banners", h.GetBanners)
		v1.GET("/categories", h.GetCategories)
		v1.GET("/categories/:id/products", h.GetProductsByCategory)
		v1.GET("/products/featured", h.GetFeaturedProducts)
		v1.GET("/products/search", h.SearchProducts)
		v1.GET("/products/:id", h.GetProduct)
		v1.GET("/products/:id/related", h.GetRelatedProducts)

		// --- Protected Routes (Login Required) ---
		auth := v1.Group("/")
		auth.Use(middleware.AuthMiddleware())
		{
			auth.POST("/auth/logout", h.Logout)

			// --- Cart ---
			auth.GET("/cart", h.GetCart)
			auth.DELETE("/cart", h.ClearCart)
			auth.POST("/cart/items", h.AddToCart)
			auth.PUT("/cart/items/:product_id", h.UpdateCartItem)
			auth.DELETE("/cart/items/:product_id", h.DeleteCartItem)

			// --- Checkout ---
			auth.POST("/checkout", h.StartCheckout)
			auth.GET("/checkout", h.GetCheckout)
			auth.PUT("/checkout/shipping", h.SubmitShipping)
			auth.PUT("/checkout/payment", h.SubmitPayment)
			auth.POST("/checkout/next", h.NextStep)
			auth.POST("/checkout/back", h.BackStep)

			// --- Orders ---
			auth.GET("/orders", h.GetMyOrders)
			auth.GET("/orders/:id", h.GetOrderDetails)
			auth.PUT("/orders/:id/cancel", h.CancelOrder)

			// --- Profile ---
			auth.GET("/profile", h.GetProfile)
			auth.PUT("/profile", h.UpdateProfile)
			auth.PUT("/profile/password", h.ChangePassword)
		}
	}

	return router
}
