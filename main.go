package main

import (
	"log"

	"wine-api/config"
	"wine-api/database"
	"wine-api/idgen"
	"wine-api/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadConfig()

	app := fiber.New()

	database.EnsureDatabaseExists(config.DBName)

	db, err := database.GetDBConnection(config.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init(config.SnowflakeNode)
	database.RunSeeders(db)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupUserRoutes(app, db)
	routes.SetupWineRoutes(app, db)
	routes.SetupLocationRoutes(app, db)
	routes.SetupStorageLotRoutes(app, db)
	routes.SetupStockRoutes(app, db)
	routes.SetupMovementRoutes(app, db)

	logger := config.GetLogger()
	logger.WithField("port", config.APP_PORT).Info("wine inventory api listening")

	if err := app.Listen(":" + config.APP_PORT); err != nil {
		log.Fatal(err)
	}
}
