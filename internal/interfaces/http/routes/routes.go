package routes

import (
	"github.com/patrickmn/go-cache"
	"github.com/ramabhadrarao/opencart-api/internal/application/usecases"
	"github.com/ramabhadrarao/opencart-api/internal/config"
	"github.com/ramabhadrarao/opencart-api/internal/domain/repositories"
	"github.com/ramabhadrarao/opencart-api/internal/infrastructure/auth"
	"github.com/ramabhadrarao/opencart-api/internal/infrastructure/geolocation"
	"github.com/ramabhadrarao/opencart-api/internal/interfaces/http/handlers"
	"github.com/ramabhadrarao/opencart-api/internal/interfaces/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	// Repositories
	trackingRepo := repositories.NewTrackingRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	adminRepo := repositories.NewAdminRepository(db)
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	manufacturerRepo := repositories.NewManufacturerRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	addressRepo := repositories.NewAddressRepository(db)
	locationRepo := repositories.NewLocationRepository(db)
	cartRepo := repositories.NewCartRepository(db)

	// Auth service
	tokens := auth.NewTokenManager(cfg.SecretKey, cfg.AccessTokenTTL)
	authUseCase := usecases.NewAuthUseCase(customerRepo, adminRepo, tokens)

	// Request tracker: injected geolocation cache so tests can swap it
	geoCache := cache.New(cache.NoExpiration, 0)
	geoClient := geolocation.NewClient(cfg.GeolocationURL, geoCache)
	tracker := middleware.NewTracker(trackingRepo, geoClient, middleware.PrincipalFromCtx)
	app.Use(tracker.Handle())

	// Use Cases
	productUseCase := usecases.NewProductUseCase(productRepo)
	categoryUseCase := usecases.NewCategoryUseCase(categoryRepo)
	manufacturerUseCase := usecases.NewManufacturerUseCase(manufacturerRepo)
	customerUseCase := usecases.NewCustomerUseCase(customerRepo)
	orderUseCase := usecases.NewOrderUseCase(orderRepo)
	addressUseCase := usecases.NewAddressUseCase(addressRepo)
	locationUseCase := usecases.NewLocationUseCase(locationRepo)
	cartUseCase := usecases.NewCartUseCase(cartRepo, productRepo)
	analyticsUseCase := usecases.NewAnalyticsUseCase(trackingRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	categoryHandler := handlers.NewCategoryHandler(categoryUseCase)
	manufacturerHandler := handlers.NewManufacturerHandler(manufacturerUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	addressHandler := handlers.NewAddressHandler(addressUseCase)
	locationHandler := handlers.NewLocationHandler(locationUseCase)
	cartHandler := handlers.NewCartHandler(cartUseCase)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUseCase)

	// Auth guards
	requireCustomer := middleware.RequireCustomer(authUseCase)
	requireAdmin := middleware.RequireAdmin(authUseCase)
	requireAuth := middleware.RequireAuth(authUseCase)
	optionalAuth := middleware.OptionalAuth(authUseCase)

	// Root and health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":       "Welcome to " + cfg.ProjectName + " version " + cfg.ProjectVersion,
			"documentation": "/docs",
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": cfg.ProjectVersion,
		})
	})

	api := app.Group("/api")

	// Authentication routes
	authGroup := api.Group("/auth")
	authGroup.Post("/customer/login", authHandler.LoginCustomer)
	authGroup.Post("/admin/login", authHandler.LoginAdmin)
	authGroup.Get("/customer/me", requireCustomer, authHandler.CustomerMe)
	authGroup.Put("/customer/password", requireCustomer, authHandler.ChangePassword)
	authGroup.Get("/admin/me", requireAdmin, authHandler.AdminMe)

	// Catalog routes (public reads, admin writes)
	api.Get("/products", productHandler.GetProducts)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Post("/products", requireAdmin, productHandler.CreateProduct)
	api.Put("/products/:id", requireAdmin, productHandler.UpdateProduct)
	api.Delete("/products/:id", requireAdmin, productHandler.DeleteProduct)

	api.Get("/categories", categoryHandler.GetCategories)
	api.Get("/categories/:id", categoryHandler.GetCategory)
	api.Post("/categories", requireAdmin, categoryHandler.CreateCategory)
	api.Put("/categories/:id", requireAdmin, categoryHandler.UpdateCategory)
	api.Delete("/categories/:id", requireAdmin, categoryHandler.DeleteCategory)

	api.Get("/manufacturers", manufacturerHandler.GetManufacturers)
	api.Get("/manufacturers/:id", manufacturerHandler.GetManufacturer)
	api.Post("/manufacturers", requireAdmin, manufacturerHandler.CreateManufacturer)
	api.Put("/manufacturers/:id", requireAdmin, manufacturerHandler.UpdateManufacturer)
	api.Delete("/manufacturers/:id", requireAdmin, manufacturerHandler.DeleteManufacturer)

	// Customer administration
	api.Get("/customers", requireAdmin, customerHandler.GetCustomers)
	api.Get("/customers/:id", requireAdmin, customerHandler.GetCustomer)

	// Orders (customers see their own, admins see all)
	api.Get("/orders", requireAuth, orderHandler.GetOrders)
	api.Get("/orders/:id", requireAuth, orderHandler.GetOrder)
	api.Put("/orders/:id/status", requireAdmin, orderHandler.UpdateOrderStatus)

	// Customer addresses
	api.Get("/addresses", requireCustomer, addressHandler.GetAddresses)
	api.Get("/addresses/:id", requireCustomer, addressHandler.GetAddress)
	api.Post("/addresses", requireCustomer, addressHandler.CreateAddress)
	api.Put("/addresses/:id", requireCustomer, addressHandler.UpdateAddress)
	api.Delete("/addresses/:id", requireCustomer, addressHandler.DeleteAddress)

	// Countries and zones
	api.Get("/countries", locationHandler.GetCountries)
	api.Get("/countries/:id", locationHandler.GetCountry)
	api.Get("/zones", locationHandler.GetZones)
	api.Get("/zones/:id", locationHandler.GetZone)

	// Shopping cart: guests allowed, keyed by tracking session
	cartGroup := api.Group("/cart", optionalAuth)
	cartGroup.Get("/", cartHandler.GetCart)
	cartGroup.Post("/items", cartHandler.AddItem)
	cartGroup.Put("/items/:id", cartHandler.UpdateItem)
	cartGroup.Delete("/items/:id", cartHandler.RemoveItem)
	cartGroup.Delete("/", cartHandler.ClearCart)

	// Analytics (admin only)
	analyticsGroup := api.Group("/analytics", requireAdmin)
	analyticsGroup.Get("/activity", analyticsHandler.GetActivities)
	analyticsGroup.Get("/sessions", analyticsHandler.GetSessions)
	analyticsGroup.Get("/online", analyticsHandler.GetOnlineCount)
	analyticsGroup.Get("/summary", analyticsHandler.GetSummary)
}
