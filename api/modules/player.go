package modules

import (
	"github.com/darkademic/oraladder/api/handlers"
	playerservice "github.com/darkademic/oraladder/api/services/player"
)

func initializePlayerHandler(deps *ModuleDependencies) *handlers.PlayerHandler {
	// Initialize the player service and handler.
	playerDeps := &playerservice.PlayerServiceDeps{
		Registry:      deps.Registry,
		MemCache:      deps.MemCache,
		Redis:         deps.Redis,
		MinDatapoints: deps.Cfg.MinDatapoints,
		CurveWidth:    deps.Cfg.CurveWidth,
		GamesLimit:    deps.Cfg.PlayerGamesLimit,
	}

	playerService := playerservice.NewPlayerService(playerDeps)

	playerHandlerDeps := &handlers.PlayerHandlerDependencies{
		PlayerService: playerService,
	}

	return handlers.NewPlayerHandler(playerHandlerDeps)
}
