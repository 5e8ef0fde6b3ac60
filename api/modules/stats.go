package modules

import (
	"github.com/darkademic/oraladder/api/handlers"
	statsservice "github.com/darkademic/oraladder/api/services/stats"
)

func initializeStatsHandler(deps *ModuleDependencies) *handlers.StatsHandler {
	// Initialize the stats service and handler.
	statsDeps := &statsservice.StatsServiceDeps{
		Registry: deps.Registry,
		MemCache: deps.MemCache,
		Redis:    deps.Redis,
	}

	statsService := statsservice.NewStatsService(statsDeps)

	statsHandlerDeps := &handlers.StatsHandlerDependencies{
		StatsService: statsService,
	}

	return handlers.NewStatsHandler(statsHandlerDeps)
}
