package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"alexweb-api/controllers"
	"alexweb-api/middleware"
	"alexweb-api/services"
	"alexweb-api/utils"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, emailService *services.EmailService, log *logrus.Logger) {
	// Controllers
	vehicleController := controllers.NewVehicleController(db)
	testimonialController := controllers.NewTestimonialController(db)
	staffController := controllers.NewStaffController(db)
	popularItemController := controllers.NewPopularItemController(db)
	backgroundImageController := controllers.NewBackgroundImageController(db)
	contactController := controllers.NewContactController(db, emailService, log)
	financeController := controllers.NewFinanceController(db)

	// Liveness probes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Server is running"})
	})

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "API is healthy"})
	})

	vehicles := api.Group("/vehicles")
	{
		vehicles.GET("", vehicleController.GetAll)
		vehicles.GET("/:id", vehicleController.GetByID)
		vehicles.POST("", vehicleController.Create)
		vehicles.PUT("/:id", vehicleController.Update)
		vehicles.DELETE("/:id", vehicleController.Delete)
	}

	testimonials := api.Group("/testimonials")
	{
		testimonials.GET("", testimonialController.GetAll)
		testimonials.GET("/:id", testimonialController.GetByID)
		testimonials.POST("", testimonialController.Create)
		testimonials.PUT("/:id", testimonialController.Update)
		testimonials.DELETE("/:id", testimonialController.Delete)
	}

	staff := api.Group("/staff")
	{
		staff.GET("", staffController.GetAll)
		staff.GET("/:id", staffController.GetByID)
		staff.POST("", staffController.Create)
		staff.PUT("/:id", staffController.Update)
		staff.DELETE("/:id", staffController.Delete)
	}

	popularItems := api.Group("/popular-items")
	{
		popularItems.GET("", popularItemController.GetAll)
		popularItems.GET("/:category", popularItemController.GetByCategory)
		popularItems.POST("/:category", popularItemController.Create)
		popularItems.PUT("/:category/:name", popularItemController.Update)
		popularItems.DELETE("/:category/:name", popularItemController.Delete)
	}

	backgroundImages := api.Group("/background-images")
	{
		backgroundImages.GET("", backgroundImageController.GetAll)
		backgroundImages.GET("/:id", backgroundImageController.GetByID)
		backgroundImages.POST("", backgroundImageController.Create)
		backgroundImages.PUT("/:id", backgroundImageController.Update)
		backgroundImages.DELETE("/:id", backgroundImageController.Delete)
	}

	// Public intake endpoints are rate limited against form spam.
	intakeLimit := middleware.RateLimit(10, 5)

	contact := api.Group("/contact")
	{
		contact.POST("", intakeLimit, contactController.Create)
		contact.GET("", contactController.GetAll)
		contact.GET("/:id", contactController.GetByID)
	}

	finance := api.Group("/finance")
	{
		finance.POST("", intakeLimit, financeController.Create)
		finance.GET("", financeController.GetAll)
		finance.GET("/:id", financeController.GetByID)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utils.Response{
			Success: false,
			Message: "Route not found",
		})
	})
}
