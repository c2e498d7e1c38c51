package routes

import (
	"net/http"
	"time"

	"homigo/handlers"
	"homigo/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCartRoutes sets up the pricing orchestration endpoints. Every
// mutation goes through the cart store's mutator contract.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.GET("", hb.Cart.GetCart)
		api.PUT("/payment-mode", hb.Cart.SelectPaymentMode)
		api.POST("/wallet/toggle", hb.Cart.ToggleWallet)
		api.PUT("/vip-plan", hb.Cart.SelectVipPlan)
		api.POST("/coupon", hb.Cart.ApplyCoupon)
		api.DELETE("/coupon", hb.Cart.RemoveCoupon)
		api.POST("/refresh", hb.Cart.Refresh)
		api.DELETE("", hb.Cart.DropCart)
	}
}

// RegisterPlanRoutes registers the VIP plan catalog endpoints.
func RegisterPlanRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/plans")
	{
		api.GET("", hb.Plans.ListPlansHandler)
		api.GET("/:id", hb.Plans.GetPlanHandler)
	}
}

// RegisterCouponRoutes registers coupon validation.
func RegisterCouponRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/coupons")
	{
		api.POST("/validate", hb.Coupons.ValidateCouponHandler)
	}
}

// RegisterAddressRoutes registers the address book endpoints.
func RegisterAddressRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/addresses")
	{
		api.GET("", hb.Addresses.ListAddressesHandler)
		api.POST("", hb.Addresses.CreateAddressHandler)
		api.PUT("/:id", hb.Addresses.UpdateAddressHandler)
		api.DELETE("/:id", hb.Addresses.DeleteAddressHandler)
		api.POST("/:id/select", hb.Addresses.SelectAddressHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Homigo"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.SessionHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.SessionHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.SessionMiddleware())

	RegisterHealthRoute(r)
	RegisterCartRoutes(r, hb)
	RegisterPlanRoutes(r, hb)
	RegisterCouponRoutes(r, hb)
	RegisterAddressRoutes(r, hb)
}
