package modules

import (
	"github.com/darkademic/oraladder/api/handlers"
	leaderboardservice "github.com/darkademic/oraladder/api/services/leaderboard"
)

func initializeLeaderboardHandler(deps *ModuleDependencies) *handlers.LeaderboardHandler {
	// Initialize the leaderboard service and handler.
	leaderboardDeps := &leaderboardservice.LeaderboardServiceDeps{
		Registry: deps.Registry,
		MemCache: deps.MemCache,
		Redis:    deps.Redis,
		Limit:    deps.Cfg.LeaderboardLimit,
	}

	leaderboardService := leaderboardservice.NewLeaderboardService(leaderboardDeps)

	leaderboardHandlerDeps := &handlers.LeaderboardHandlerDependencies{
		LeaderboardService: leaderboardService,
	}

	return handlers.NewLeaderboardHandler(leaderboardHandlerDeps)
}
