package handlers

import (
	"net/http"

	"github.com/darkademic/oraladder/pkg/mods"

	"github.com/gin-gonic/gin"
)

// Game variant listing handler.
type ModsHandler struct{}

// Create a new instance of the mods handler.
func NewModsHandler() *ModsHandler {
	return &ModsHandler{}
}

// Handler for listing the tracked game variants.
func (h *ModsHandler) GetMods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"result": mods.All()})
}
