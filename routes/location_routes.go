package routes

import (
	"wine-api/config"
	"wine-api/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLocationRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES + "/locations")

	locationController := controllers.NewLocationController(db)

	api.Post("/", locationController.CreateLocation)
	api.Get("/:id", locationController.GetLocationByID)
}
