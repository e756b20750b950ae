package routes

import (
	"wine-api/config"
	"wine-api/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStorageLotRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES + "/storagelots")

	storageLotController := controllers.NewStorageLotController(db)

	api.Post("/", storageLotController.CreateStorageLot)
	api.Get("/:id", storageLotController.GetStorageLotByID)
}
