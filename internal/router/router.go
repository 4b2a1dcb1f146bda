package router

import (
	"strings"

	"stockcount-backend/internal/auth"
	"stockcount-backend/internal/binmapping"
	"stockcount-backend/internal/config"
	"stockcount-backend/internal/counting"
	"stockcount-backend/internal/countperson"
	"stockcount-backend/internal/dashboard"
	"stockcount-backend/internal/freezedata"
	"stockcount-backend/internal/location"
	"stockcount-backend/internal/models"
	"stockcount-backend/internal/users"
	"stockcount-backend/internal/warehouse"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

// New builds the fiber app with the full route table. Kept separate from main
// so tests can run requests against it.
func New(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			zap.L().Error("unexpected error", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(corsOrigins, ","),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowCredentials: true,
		ExposeHeaders:    "X-New-Token",
	}))

	api := app.Group("/api")

	// Public
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))
	protected.Use(auth.RefreshMiddleware(cfg))

	adminOnly := auth.RequireRole(models.RoleAdmin)

	// Auth
	protected.Post("/auth/register", adminOnly, auth.RegisterHandler())
	protected.Post("/auth/change-password", auth.ChangePasswordHandler())
	protected.Get("/auth/me", auth.MeHandler())
	protected.Post("/auth/logout", auth.LogoutHandler())

	// Warehouses
	protected.Get("/warehouses", warehouse.ListWarehousesHandler())
	protected.Get("/warehouses/:id", warehouse.GetWarehouseHandler())
	protected.Post("/warehouses", adminOnly, warehouse.CreateWarehouseHandler())
	protected.Put("/warehouses/:id", adminOnly, warehouse.UpdateWarehouseHandler())
	protected.Delete("/warehouses/:id", adminOnly, warehouse.DeleteWarehouseHandler())

	// Locations
	protected.Get("/locations", location.ListLocationsHandler())
	protected.Get("/locations/:id", location.GetLocationHandler())
	protected.Post("/locations", adminOnly, location.CreateLocationHandler())
	protected.Put("/locations/:id", adminOnly, location.UpdateLocationHandler())
	protected.Delete("/locations/:id", adminOnly, location.DeleteLocationHandler())

	// Bin mappings
	protected.Get("/bin-mappings", binmapping.ListBinMappingsHandler())
	protected.Get("/bin-mappings/:id", binmapping.GetBinMappingHandler())
	protected.Post("/bin-mappings/scan", binmapping.ScanLabelHandler())
	protected.Post("/bin-mappings", binmapping.CreateBinMappingHandler())
	protected.Delete("/bin-mappings/:id", adminOnly, binmapping.DeleteBinMappingHandler())

	// Count persons
	protected.Get("/count-persons", countperson.ListCountPersonsHandler())
	protected.Get("/count-persons/:id", countperson.GetCountPersonHandler())
	protected.Post("/count-persons", adminOnly, countperson.CreateCountPersonHandler())
	protected.Put("/count-persons/:id", adminOnly, countperson.UpdateCountPersonHandler())
	protected.Delete("/count-persons/:id", adminOnly, countperson.DeleteCountPersonHandler())

	// Freeze data
	protected.Get("/freeze-data", freezedata.ListFreezeDataHandler())
	protected.Get("/freeze-data/:id", freezedata.GetFreezeDataHandler())
	protected.Post("/freeze-data/import", adminOnly, freezedata.ImportFreezeDataHandler())
	protected.Delete("/freeze-data/warehouse/:whsId", adminOnly, freezedata.DeleteByWarehouseHandler())
	protected.Delete("/freeze-data/:id", adminOnly, freezedata.DeleteFreezeDataHandler())

	// Counting
	protected.Get("/counting", counting.ListCountingHandler())
	protected.Get("/counting/:id", counting.GetCountingHandler())
	protected.Post("/counting", counting.CreateCountingHandler())
	protected.Put("/counting/:id", counting.UpdateCountingHandler())
	protected.Delete("/counting/:id", counting.DeleteCountingHandler())

	// Dashboard
	protected.Get("/dashboard/statistics", dashboard.StatisticsHandler())
	protected.Get("/dashboard/warehouse/:whsId", dashboard.WarehouseDetailHandler())

	// Users (admin only)
	usersGroup := protected.Group("/users", adminOnly)
	usersGroup.Get("/", users.ListUsersHandler())
	usersGroup.Get("/:id", users.GetUserHandler())
	usersGroup.Post("/", users.CreateUserHandler())
	usersGroup.Put("/:id", users.UpdateUserHandler())
	usersGroup.Delete("/:id", users.DeleteUserHandler())
	usersGroup.Post("/:id/reset-password", users.ResetPasswordHandler())

	return app
}
