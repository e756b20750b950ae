package routes

import (
	"wine-api/config"
	"wine-api/controllers"
	"wine-api/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupWineRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES + "/wines")

	wineController := controllers.NewWineSKUController(db)

	api.Post("/", wineController.CreateWineSKU)
	// Bulk import is an operator tool and requires a token.
	api.Post("/import", middleware.AuthMiddleware, wineController.ImportWinesFromExcel)
	api.Get("/:id", wineController.GetWineSKUByID)
}
