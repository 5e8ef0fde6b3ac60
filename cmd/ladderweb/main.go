package main

import (
	"github.com/darkademic/oraladder/api/cache"
	"github.com/darkademic/oraladder/api/modules"
	"github.com/darkademic/oraladder/api/routes"
	"github.com/darkademic/oraladder/pkg/config"
	"github.com/darkademic/oraladder/pkg/database"
	"github.com/darkademic/oraladder/pkg/logger"
	"github.com/darkademic/oraladder/pkg/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logger.New("info")
		l.Fatal().Err(err).Msg("Error loading the configuration")
	}

	log := logger.New(cfg.LogLevel)

	// Open the snapshot registry over the instance directory.
	registry := database.NewRegistry(cfg.InstanceDir, log)
	defer registry.Close()

	redisClient := redis.NewClient(cfg)
	defer redisClient.Close()

	memCache := cache.NewMemCache()
	defer memCache.Close()

	// Create a module with all necessary handlers.
	module := modules.NewModule(&modules.ModuleDependencies{
		Cfg:      cfg,
		Registry: registry,
		MemCache: memCache,
		Redis:    redisClient,
	})

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.LeaderboardHandler,
		module.PlayerHandler,
		module.StatsHandler,
		module.MatchesHandler,
		module.ModsHandler,
	)

	// Start the server.
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("Error running the server")
	}
}
