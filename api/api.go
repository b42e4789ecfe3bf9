package main

import (
	"log"
	"riftview/api/modules"
	"riftview/api/routes"
	"riftview/pkg/config"
	"riftview/pkg/database"
	"riftview/pkg/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading the configuration: %v", err)
	}

	db, err := database.NewConnection(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Error getting the underlying connection: %v", err)
	}

	if err := database.RunMigrations(cfg, sqlDB); err != nil {
		log.Fatalf("Error running the migrations: %v", err)
	}

	redisClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Error connecting to Redis: %v", err)
	}

	// Create a module with all necessary handlers.
	deps := modules.NewModuleDependencies(cfg, db, redisClient)
	module := modules.NewModule(deps)

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.SummonerHandler,
		module.MatchHandler,
		module.AssetHandler,
		module.MetaHandler,
	)

	// Start the server.
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Error starting the server: %v", err)
	}
}
