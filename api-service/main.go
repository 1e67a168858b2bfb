package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"marigold-backend/api-service/handlers"
	"marigold-backend/api-service/middleware"
	"marigold-backend/api-service/services"
	"marigold-backend/shared/config"
	"marigold-backend/shared/database"

	_ "marigold-backend/docs"
)

// @title Marigold Catering API
// @version 1.0
// @description Content management and inquiry intake API for the Marigold Catering website

// @contact.name API Support
// @contact.email support@marigoldcatering.com

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.

func main() {
	// Load configuration
	config.LoadConfig()
	cfg := config.GetConfig()

	// Initialize database
	if err := database.InitDatabase(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDatabase()

	// Seed the admin account from environment credentials
	if err := database.SeedDatabase(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// File storage is optional; upload routes answer 500 until configured
	if err := handlers.InitStorage(); err != nil {
		log.Printf("🚫 File storage disabled: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS for the public website and admin panel
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Shared counter store backs both rate limit windows
	store := middleware.NewCounterStore()
	generalLimiter := middleware.NewRateLimiter("general", store)
	loginLimiter := middleware.NewRateLimiter("login", store)
	router.Use(generalLimiter.Middleware(middleware.GeneralRateLimitConfig()))

	requireAdmin := []gin.HandlerFunc{middleware.AuthMiddleware(), middleware.RequireAdmin()}

	api := router.Group("/api")

	// Auth routes
	api.POST("/auth/login", loginLimiter.Middleware(middleware.LoginRateLimitConfig()), handlers.Login)
	api.POST("/auth/verify", middleware.AuthMiddleware(), handlers.VerifyToken)

	// Contact routes
	api.POST("/contacts", handlers.CreateContact)
	api.GET("/contacts", append(requireAdmin, handlers.GetContacts)...)
	api.GET("/contacts/stats", append(requireAdmin, handlers.GetContactStats)...)
	api.GET("/contacts/:id", append(requireAdmin, handlers.GetContact)...)
	api.PUT("/contacts/:id", append(requireAdmin, handlers.UpdateContact)...)
	api.DELETE("/contacts/:id", append(requireAdmin, handlers.DeleteContact)...)

	// Career routes
	api.POST("/careers", handlers.CreateCareerApplication)
	api.GET("/careers", append(requireAdmin, handlers.GetCareerApplications)...)
	api.GET("/careers/stats", append(requireAdmin, handlers.GetCareerStats)...)
	api.GET("/careers/:id", append(requireAdmin, handlers.GetCareerApplication)...)
	api.PUT("/careers/:id", append(requireAdmin, handlers.UpdateCareerApplication)...)
	api.POST("/careers/:id/archive", append(requireAdmin, handlers.ArchiveCareerApplication)...)
	api.DELETE("/careers/:id", append(requireAdmin, handlers.DeleteCareerApplication)...)

	// Venue routes
	api.GET("/venues", handlers.GetVenues)
	api.GET("/venues/categories", handlers.GetVenueCategories)
	api.GET("/venues/slug/:slug", handlers.GetVenueBySlug)
	api.GET("/venues/:id", handlers.GetVenue)
	api.POST("/venues", append(requireAdmin, handlers.CreateVenue)...)
	api.PUT("/venues/:id", append(requireAdmin, handlers.UpdateVenue)...)
	api.PUT("/venues/:id/reorder", append(requireAdmin, handlers.ReorderVenue)...)
	api.DELETE("/venues/:id", append(requireAdmin, handlers.DeleteVenue)...)

	// Service page routes
	api.GET("/services", handlers.GetServices)
	api.GET("/services/slug/:slug", handlers.GetServiceBySlug)
	api.GET("/services/:id", handlers.GetService)
	api.POST("/services", append(requireAdmin, handlers.CreateService)...)
	api.PUT("/services/:id", append(requireAdmin, handlers.UpdateService)...)
	api.DELETE("/services/:id", append(requireAdmin, handlers.DeleteService)...)

	// Menu item routes
	api.GET("/menu-items", handlers.GetMenuItems)
	api.GET("/menu-items/:id", handlers.GetMenuItem)
	api.POST("/menu-items", append(requireAdmin, handlers.CreateMenuItem)...)
	api.PUT("/menu-items/:id", append(requireAdmin, handlers.UpdateMenuItem)...)
	api.DELETE("/menu-items/:id", append(requireAdmin, handlers.DeleteMenuItem)...)

	// Corporate service routes
	api.GET("/corporate-services", handlers.GetCorporateServices)
	api.GET("/corporate-services/:id", handlers.GetCorporateService)
	api.POST("/corporate-services", append(requireAdmin, handlers.CreateCorporateService)...)
	api.PUT("/corporate-services/:id", append(requireAdmin, handlers.UpdateCorporateService)...)
	api.DELETE("/corporate-services/:id", append(requireAdmin, handlers.DeleteCorporateService)...)

	// Exclusive location routes
	api.GET("/exclusive-locations", handlers.GetExclusiveLocations)
	api.GET("/exclusive-locations/featured", handlers.GetFeaturedExclusiveLocations)
	api.GET("/exclusive-locations/slug/:slug", handlers.GetExclusiveLocationBySlug)
	api.GET("/exclusive-locations/:id", handlers.GetExclusiveLocation)
	api.POST("/exclusive-locations", append(requireAdmin, handlers.CreateExclusiveLocation)...)
	api.PUT("/exclusive-locations/:id", append(requireAdmin, handlers.UpdateExclusiveLocation)...)
	api.PUT("/exclusive-locations/:id/reorder", append(requireAdmin, handlers.ReorderExclusiveLocation)...)
	api.DELETE("/exclusive-locations/:id", append(requireAdmin, handlers.DeleteExclusiveLocation)...)

	// Team routes
	api.GET("/team", handlers.GetTeamMembers)
	api.GET("/team/with-photos", handlers.GetTeamMembersWithPhotos)
	api.GET("/team/without-photos", handlers.GetTeamMembersWithoutPhotos)
	api.GET("/team/:id", append(requireAdmin, handlers.GetTeamMember)...)
	api.POST("/team", append(requireAdmin, handlers.CreateTeamMember)...)
	api.PUT("/team/reorder", append(requireAdmin, handlers.ReorderTeamMembers)...)
	api.PUT("/team/:id", append(requireAdmin, handlers.UpdateTeamMember)...)
	api.PUT("/team/:id/reorder", append(requireAdmin, handlers.ReorderTeamMember)...)
	api.DELETE("/team/:id", append(requireAdmin, handlers.DeleteTeamMember)...)

	// Testimonial routes
	api.GET("/testimonials", handlers.GetTestimonials)
	api.GET("/testimonials/:id", handlers.GetTestimonial)
	api.POST("/testimonials", append(requireAdmin, handlers.CreateTestimonial)...)
	api.PUT("/testimonials/:id", append(requireAdmin, handlers.UpdateTestimonial)...)
	api.DELETE("/testimonials/:id", append(requireAdmin, handlers.DeleteTestimonial)...)

	// Upload routes
	api.POST("/uploads/upload", append(requireAdmin, handlers.UploadFile)...)
	api.POST("/uploads/delete", append(requireAdmin, handlers.DeleteFile)...)
	api.GET("/uploads/token", append(requireAdmin, handlers.GetUploadToken)...)

	// Live admin notifications over websocket
	api.GET("/admin/ws", middleware.AuthMiddleware(), middleware.RequireAdmin(), services.GetNotificationHub().HandleConnection)

	// Health check
	healthCheck := func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":      "healthy",
			"service":     "marigold-api",
			"environment": cfg.Environment,
		})
	}
	router.GET("/health", healthCheck)
	api.GET("/health", healthCheck)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Unknown API routes get the standard envelope
	router.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			ctx.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Route not found",
			})
			return
		}
		ctx.Status(http.StatusNotFound)
	})

	log.Printf("🌱 Marigold API starting on port %s...", cfg.Port)
	router.Run(":" + cfg.Port)
}
