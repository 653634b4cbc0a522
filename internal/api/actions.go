package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rsduel/arena-server/internal/arena"
	"github.com/rsduel/arena-server/internal/constants"
	"github.com/rsduel/arena-server/internal/game"
)

type ActionRequest struct {
	AgentID  string `json:"agent_id"`
	Attack   string `json:"attack"`
	Special  string `json:"special"`
	Prayer   string `json:"prayer"`
	Food     string `json:"food"`
	Movement string `json:"movement"`
}

// SubmitAction stores an agent's choices for the current tick. Missing
// fields default to none; the response says whether the tick resolved
// immediately or the fight is waiting.
func (h *FightHandler) SubmitAction(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.AgentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	sub := &game.ActionSubmission{
		Attack:   req.Attack,
		Special:  req.Special,
		Prayer:   req.Prayer,
		Food:     req.Food,
		Movement: req.Movement,
	}
	out, err := h.registry.SubmitAction(c.Param("fightID"), req.AgentID, sub)
	if err != nil {
		switch err {
		case arena.ErrFightNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrFightNotFound})
		case arena.ErrFightNotInProgress:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrFightNotInProgress})
		case arena.ErrNotParticipant:
			c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrNotParticipant})
		case arena.ErrUnknownAction:
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownAction})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSubmitAction})
		}
		return
	}
	c.JSON(http.StatusOK, out)
}
