package handlers

import (
	"net/http"

	"github.com/darkademic/oraladder/api/filters"
	leaderboardservice "github.com/darkademic/oraladder/api/services/leaderboard"

	"github.com/gin-gonic/gin"
)

// Leaderboard handler.
type LeaderboardHandler struct {
	leaderboardService *leaderboardservice.LeaderboardService
}

type LeaderboardHandlerDependencies struct {
	LeaderboardService *leaderboardservice.LeaderboardService
}

// Create a new instance of the leaderboard handler.
func NewLeaderboardHandler(deps *LeaderboardHandlerDependencies) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: deps.LeaderboardService,
	}
}

// Handler for getting the ranked listing.
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	var qp filters.ScopeQueryParams

	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	scope := qp.Scope()

	result, err := h.leaderboardService.GetLeaderboard(c.Request.Context(), &scope)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
