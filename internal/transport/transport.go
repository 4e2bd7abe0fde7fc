package transport

import (
	"net/http"

	"github.com/freshnest/bookingadmin/config"
	"github.com/freshnest/bookingadmin/internal/service"
	"github.com/freshnest/bookingadmin/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

func InitRoutes(
	cfg *config.Config,
	authHandler *AuthHandler,
	bookingHandler *BookingHandler,
	catalogHandler *CatalogHandler,
	authService service.AuthService,
) *gin.Engine {

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(cfg.Server.Timeout))
	router.Use(middleware.Session(cfg.Session.CookieName, cfg.Session.Secure))

	// Web interface routes
	router.Static("/static", "./web/static")
	router.LoadHTMLGlob("web/templates/*")

	router.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", nil)
	})

	router.GET("/services", func(c *gin.Context) {
		c.HTML(http.StatusOK, "services.html", nil)
	})

	router.GET("/booking", func(c *gin.Context) {
		c.HTML(http.StatusOK, "booking.html", gin.H{
			"service": c.Query("service"),
		})
	})

	router.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"from": c.Query("from"),
		})
	})

	// Public API routes
	api := router.Group("/api/v1")
	{
		api.GET("/services", catalogHandler.GetServices)

		bookings := api.Group("/bookings")
		{
			bookings.POST("", bookingHandler.CreateBooking)
			bookings.GET("/number/:number", bookingHandler.GetBookingByNumber)
		}
	}

	// Login and logout stay outside the guard
	router.POST("/admin/api/login", authHandler.Login)
	router.POST("/admin/api/logout", authHandler.Logout)

	// Admin routes, gated on an authenticated session
	admin := router.Group("/admin")
	admin.Use(middleware.AdminGuard(authService))
	{
		admin.GET("/bookings", func(c *gin.Context) {
			c.HTML(http.StatusOK, "admin_bookings.html", nil)
		})
		admin.GET("/settings", func(c *gin.Context) {
			c.HTML(http.StatusOK, "admin_settings.html", nil)
		})

		adminAPI := admin.Group("/api")
		{
			adminAPI.GET("/bookings", bookingHandler.GetAllBookings)
			adminAPI.GET("/bookings/:id", bookingHandler.GetBooking)
			adminAPI.PUT("/bookings/:id/status", bookingHandler.UpdateStatus)
			adminAPI.DELETE("/bookings/:id", bookingHandler.DeleteBooking)

			adminAPI.GET("/passwords", authHandler.GetPasswords)
			adminAPI.POST("/passwords", authHandler.AddPassword)
			adminAPI.DELETE("/passwords/:id", authHandler.DeletePassword)
		}
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": cfg.Server.AppVersion,
		})
	})

	return router
}
