package modules

import (
	"github.com/darkademic/oraladder/api/cache"
	"github.com/darkademic/oraladder/api/handlers"
	"github.com/darkademic/oraladder/pkg/config"
	"github.com/darkademic/oraladder/pkg/database"
	"github.com/darkademic/oraladder/pkg/redis"

	"github.com/gin-gonic/gin"
)

// Module containing the necessary handlers.
type Module struct {
	Router *gin.Engine

	LeaderboardHandler *handlers.LeaderboardHandler
	PlayerHandler      *handlers.PlayerHandler
	StatsHandler       *handlers.StatsHandler
	MatchesHandler     *handlers.MatchesHandler
	ModsHandler        *handlers.ModsHandler
}

// ModuleDependencies is the shared dependency list for every handler.
type ModuleDependencies struct {
	Cfg      *config.Config
	Registry *database.Registry
	MemCache cache.MemCache
	Redis    *redis.RedisClient
}

// Create a new module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) *Module {
	router := gin.Default()

	return &Module{
		Router: router,

		LeaderboardHandler: initializeLeaderboardHandler(deps),
		PlayerHandler:      initializePlayerHandler(deps),
		StatsHandler:       initializeStatsHandler(deps),
		MatchesHandler:     initializeMatchesHandler(deps),
		ModsHandler:        handlers.NewModsHandler(),
	}
}
