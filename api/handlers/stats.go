package handlers

import (
	"net/http"

	"github.com/darkademic/oraladder/api/filters"
	statsservice "github.com/darkademic/oraladder/api/services/stats"

	"github.com/gin-gonic/gin"
)

// Global statistics handler.
type StatsHandler struct {
	statsService *statsservice.StatsService
}

type StatsHandlerDependencies struct {
	StatsService *statsservice.StatsService
}

// Create a new instance of the stats handler.
func NewStatsHandler(deps *StatsHandlerDependencies) *StatsHandler {
	return &StatsHandler{
		statsService: deps.StatsService,
	}
}

// Handler for getting the server-wide statistics.
func (h *StatsHandler) GetGlobalStats(c *gin.Context) {
	var qp filters.ScopeQueryParams

	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	scope := qp.Scope()

	result, err := h.statsService.GetGlobalStats(c.Request.Context(), &scope)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
