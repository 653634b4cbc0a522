package api

import (
	"github.com/rsduel/arena-server/internal/arena"
	"github.com/rsduel/arena-server/internal/storage"
)

// FightHandler groups all fight-related HTTP handlers.
type FightHandler struct {
	registry *arena.Registry
	repo     storage.Repository
	hub      *arena.Broadcaster
}

// NewFightHandler creates a FightHandler over the live-fight registry, the
// persistence repository and the spectator broadcaster.
func NewFightHandler(registry *arena.Registry, repo storage.Repository, hub *arena.Broadcaster) *FightHandler {
	return &FightHandler{registry: registry, repo: repo, hub: hub}
}
