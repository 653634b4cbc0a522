package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rsduel/arena-server/internal/arena"
	"github.com/rsduel/arena-server/internal/constants"
)

type CreateFightPayload struct {
	AgentA string `json:"agent_a"`
	AgentB string `json:"agent_b"`
	ClassA string `json:"class_a"`
	ClassB string `json:"class_b"`
	Arena  string `json:"arena"`
	Wager  int64  `json:"wager"`
}

// CreateFight registers a new fight between two agents and returns its id.
func (h *FightHandler) CreateFight(c *gin.Context) {
	var req CreateFightPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.AgentA == "" || req.AgentB == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	snap, err := h.registry.CreateFight(req.AgentA, req.AgentB, req.ClassA, req.ClassB, req.Arena, req.Wager)
	if err != nil {
		switch err {
		case arena.ErrSameAgent:
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrSameAgent})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateFight})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"fight_id": snap.FightID, "snapshot": snap})
}

// GetFight returns the sanitized snapshot of a live fight.
func (h *FightHandler) GetFight(c *gin.Context) {
	snap, err := h.registry.GetFight(c.Param("fightID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrFightNotFound})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// AdvanceRound starts the next round of a fight whose round just ended.
func (h *FightHandler) AdvanceRound(c *gin.Context) {
	out, err := h.registry.AdvanceRound(c.Param("fightID"))
	if err != nil {
		switch err {
		case arena.ErrFightNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrFightNotFound})
		case arena.ErrRoundNotOver:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrRoundNotOver})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: err.Error()})
		}
		return
	}
	if out.FightOver {
		c.JSON(http.StatusOK, gin.H{
			"fight_over": true,
			"winner":     out.Winner,
			"rounds_won": out.RoundsWon,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"round_started": true, "snapshot": out.Snapshot})
}
