package routes

import (
	"wine-api/config"
	"wine-api/controllers"
	"wine-api/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStockRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES + "/stocks")

	stockController := controllers.NewStockController(db)

	api.Post("/", stockController.CreateStock)
	// Registered before /:id so "export" is not parsed as an id.
	api.Get("/export", middleware.AuthMiddleware, stockController.ExportExcel)
	api.Get("/:id", stockController.GetStockByID)
}
