package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rsduel/arena-server/internal/constants"
	"github.com/rsduel/arena-server/internal/game"
)

// GetAgent returns the directory row (class, levels, rating, record) for an
// agent id.
func (h *FightHandler) GetAgent(c *gin.Context) {
	prof, err := h.repo.GetAgentByID(c.Param("agentID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrAgentNotFound})
		return
	}
	c.JSON(http.StatusOK, prof)
}

// ListLeaderboard returns the top agents by rating.
func (h *FightHandler) ListLeaderboard(c *gin.Context) {
	agents, err := h.repo.GetTopAgents(20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedLeaderboard})
		return
	}
	c.JSON(http.StatusOK, agents)
}

// ListCatalog returns the built-in attack, special and food tables so
// clients can present valid choices.
func (h *FightHandler) ListCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"attacks":  game.Attacks(),
		"specials": game.Specials(),
		"food":     game.Foods(),
	})
}
