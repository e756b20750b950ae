package routes

import (
	"wine-api/config"
	"wine-api/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES + "/users")

	userController := controllers.NewUserController(db)

	api.Post("/", userController.CreateUser)
	api.Get("/:id", userController.GetUserByID)
}
