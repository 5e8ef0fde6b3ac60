package routes

import (
	"testing"

	"github.com/darkademic/oraladder/api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *Router {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	return NewRouter(engine)
}

func TestNewRouter(t *testing.T) {
	router := setupTestRouter()

	assert.NotNil(t, router)
	assert.NotNil(t, router.Engine)
	assert.NotNil(t, router.api)
}

func TestSetupRoutes(t *testing.T) {
	router := setupTestRouter()

	leaderboardHandler := &handlers.LeaderboardHandler{}
	playerHandler := &handlers.PlayerHandler{}
	statsHandler := &handlers.StatsHandler{}
	matchesHandler := &handlers.MatchesHandler{}
	modsHandler := &handlers.ModsHandler{}

	router.SetupRoutes(leaderboardHandler, playerHandler, statsHandler, matchesHandler, modsHandler)

	routes := router.Engine.Routes()
	assert.Len(t, routes, 6)

	paths := make([]string, 0, len(routes))
	for _, route := range routes {
		paths = append(paths, route.Path)
	}

	assert.Contains(t, paths, "/api/v1/leaderboard")
	assert.Contains(t, paths, "/api/v1/player/:profileId")
	assert.Contains(t, paths, "/api/v1/stats")
	assert.Contains(t, paths, "/api/v1/matches/latest")
	assert.Contains(t, paths, "/api/v1/replay/:hash")
	assert.Contains(t, paths, "/api/v1/mods")
}
