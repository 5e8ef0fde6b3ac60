package modules

import (
	"path/filepath"

	"github.com/darkademic/oraladder/api/handlers"
	matchesservice "github.com/darkademic/oraladder/api/services/matches"
)

func initializeMatchesHandler(deps *ModuleDependencies) *handlers.MatchesHandler {
	// Initialize the matches service and handler.
	matchesDeps := &matchesservice.MatchesServiceDeps{
		Registry: deps.Registry,
		MemCache: deps.MemCache,
		Redis:    deps.Redis,
		Limit:    deps.Cfg.LatestGamesLimit,
	}

	matchesService := matchesservice.NewMatchesService(matchesDeps)

	matchesHandlerDeps := &handlers.MatchesHandlerDependencies{
		MatchesService: matchesService,
		ReplayDir:      filepath.Join(deps.Cfg.InstanceDir, "replays"),
	}

	return handlers.NewMatchesHandler(matchesHandlerDeps)
}
