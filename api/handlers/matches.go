package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/darkademic/oraladder/api/filters"
	matchesservice "github.com/darkademic/oraladder/api/services/matches"

	"github.com/gin-gonic/gin"
)

// Recent matches and replay download handler.
type MatchesHandler struct {
	matchesService *matchesservice.MatchesService
	replayDir      string
}

type MatchesHandlerDependencies struct {
	MatchesService *matchesservice.MatchesService

	// Directory holding the replay files referenced by the ledger.
	ReplayDir string
}

// Create a new instance of the matches handler.
func NewMatchesHandler(deps *MatchesHandlerDependencies) *MatchesHandler {
	return &MatchesHandler{
		matchesService: deps.MatchesService,
		replayDir:      deps.ReplayDir,
	}
}

// Handler for getting the recent-activity feed.
func (h *MatchesHandler) GetLatestGames(c *gin.Context) {
	var qp filters.ScopeQueryParams

	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	scope := qp.Scope()

	result, err := h.matchesService.GetLatestGames(c.Request.Context(), &scope)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// Handler for downloading a replay by its hash.
func (h *MatchesHandler) GetReplay(c *gin.Context) {
	var qp filters.ScopeQueryParams

	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	scope := qp.Scope()

	hash := c.Param("hash")

	filename, err := h.matchesService.GetReplayFile(c.Request.Context(), &scope, hash)
	if err != nil {
		respondError(c, err)
		return
	}

	// The ledger stores bare file names; never let a stored value walk
	// out of the replay directory.
	filename = filepath.Base(filename)
	c.FileAttachment(filepath.Join(h.replayDir, filename), filename)
}
