package routes

import (
	"wine-api/config"
	"wine-api/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMovementRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES + "/movements")

	movementController := controllers.NewMovementController(db)

	api.Post("/", movementController.CreateMovement)
	api.Get("/:id", movementController.GetMovementByID)
}
