package main

import (
	"strings"

	"barstock-backend/internal/apperror"
	"barstock-backend/internal/audit"
	"barstock-backend/internal/auth"
	"barstock-backend/internal/catalog"
	"barstock-backend/internal/config"
	"barstock-backend/internal/database"
	"barstock-backend/internal/inventory"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

func newLogger(appEnv string) *zap.Logger {
	if appEnv == "development" {
		log, _ := zap.NewDevelopment()
		return log
	}
	log, _ := zap.NewProduction()
	return log
}

func main() {
	log := newLogger("production")
	cfg := config.Load(log)
	if cfg.AppEnv == "development" {
		log = newLogger(cfg.AppEnv)
	}
	defer log.Sync()

	db, err := database.Open(cfg, log)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: apperror.ErrorHandler(log),
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	recorder := audit.NewRecorder(db)
	countHandlers := inventory.NewHandlers(
		inventory.NewService(inventory.NewGormRepository(db), log),
		recorder, log)

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register", auth.RegisterHandler(cfg, db))
	api.Post("/auth/login", auth.LoginHandler(cfg, db))

	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler(db))

	// Counts. Static paths registered before /:id.
	protected.Get("/inventories/available-products", countHandlers.AvailableProducts)
	protected.Get("/inventories/last-products/:locationId", countHandlers.LastProducts)
	protected.Get("/inventories", countHandlers.List)
	protected.Get("/inventories/:id", countHandlers.Get)
	protected.Post("/inventories", countHandlers.Create)
	protected.Put("/inventories/:id", countHandlers.Update)
	protected.Patch("/inventories/:id/toggle-lock", countHandlers.ToggleLock)
	protected.Patch("/inventories/:id/reorder", countHandlers.Reorder)
	protected.Delete("/inventories/:id", countHandlers.Delete)

	// Stores and locations
	protected.Get("/stores", catalog.ListStoresHandler(db))
	protected.Get("/locations", catalog.ListLocationsHandler(db))
	protected.Get("/locations/:id", catalog.GetLocationHandler(db))
	protected.Post("/locations", catalog.CreateLocationHandler(db))
	protected.Put("/locations/:id", catalog.UpdateLocationHandler(db))
	protected.Delete("/locations/:id", catalog.DeleteLocationHandler(db))

	// Catalog products (read-only)
	protected.Get("/products", catalog.ListProductsHandler(db))

	// Audit logs
	protected.Get("/audit-logs", audit.ListAuditLogsHandler(db))

	log.Info("server listening", zap.String("port", cfg.HTTPPort))
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
