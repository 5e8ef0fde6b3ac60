package routes

import (
	"github.com/darkademic/oraladder/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	Engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group("/api/v1"),
		Engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.LeaderboardHandler:
			r.registerLeaderboardHandler(handler)
		case *handlers.PlayerHandler:
			r.registerPlayerHandler(handler)
		case *handlers.StatsHandler:
			r.registerStatsHandler(handler)
		case *handlers.MatchesHandler:
			r.registerMatchesHandler(handler)
		case *handlers.ModsHandler:
			r.registerModsHandler(handler)
		}
	}
}

// Register the leaderboard handler.
func (r *Router) registerLeaderboardHandler(handler *handlers.LeaderboardHandler) {
	leaderboard := r.api.Group("/leaderboard")
	{
		leaderboard.GET("", handler.GetLeaderboard)
	}
}

// Register the player handler.
func (r *Router) registerPlayerHandler(handler *handlers.PlayerHandler) {
	player := r.api.Group("/player")
	{
		player.GET("/:profileId", handler.GetPlayerProfile)
	}
}

// Register the stats handler.
func (r *Router) registerStatsHandler(handler *handlers.StatsHandler) {
	stats := r.api.Group("/stats")
	{
		stats.GET("", handler.GetGlobalStats)
	}
}

// Register the matches handler.
func (r *Router) registerMatchesHandler(handler *handlers.MatchesHandler) {
	matches := r.api.Group("/matches")
	{
		matches.GET("/latest", handler.GetLatestGames)
	}

	replay := r.api.Group("/replay")
	{
		replay.GET("/:hash", handler.GetReplay)
	}
}

// Register the mods handler.
func (r *Router) registerModsHandler(handler *handlers.ModsHandler) {
	mods := r.api.Group("/mods")
	{
		mods.GET("", handler.GetMods)
	}
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.Engine.Run(addr)
}
