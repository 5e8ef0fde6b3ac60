package handlers

import (
	"net/http"
	"strconv"

	"github.com/darkademic/oraladder/api/filters"
	playerservice "github.com/darkademic/oraladder/api/services/player"

	"github.com/gin-gonic/gin"
)

// Player profile handler.
type PlayerHandler struct {
	playerService *playerservice.PlayerService
}

type PlayerHandlerDependencies struct {
	PlayerService *playerservice.PlayerService
}

// Create a new instance of the player handler.
func NewPlayerHandler(deps *PlayerHandlerDependencies) *PlayerHandler {
	return &PlayerHandler{
		playerService: deps.PlayerService,
	}
}

// Handler for getting the full player profile.
func (h *PlayerHandler) GetPlayerProfile(c *gin.Context) {
	var qp filters.ScopeQueryParams

	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	scope := qp.Scope()

	profileID, err := strconv.ParseInt(c.Param("profileId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}

	result, err := h.playerService.GetPlayerProfile(c.Request.Context(), &scope, profileID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
