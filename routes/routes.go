package routes

import (
	"net/http"
	"time"

	"nestly/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterServiceRoutes registers the service catalogue endpoints.
func RegisterServiceRoutes(r *gin.Engine) {
	api := r.Group("/api/services")
	{
		api.GET("", handlers.GetAvailableServices)
		api.GET("/:serviceID", handlers.GetServiceConfig)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", bh.InitiateSession)
		bookingGroup.GET("/session/:sessionID", bh.GetSession)
		bookingGroup.POST("/session/:sessionID/service", bh.StartService)
		bookingGroup.PATCH("/session/:sessionID/form", bh.UpdateForm)
		bookingGroup.POST("/session/:sessionID/next", bh.NextStep)
		bookingGroup.POST("/session/:sessionID/back", bh.PrevStep)
		bookingGroup.PUT("/session/:sessionID/provider", bh.SelectProvider)
		bookingGroup.POST("/session/:sessionID/cart", bh.AddToCart)
		bookingGroup.POST("/session/:sessionID/confirm", bh.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", bh.CancelSession)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Nestly"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterServiceRoutes(r)
	RegisterBookingRoutes(r, bh)
}
