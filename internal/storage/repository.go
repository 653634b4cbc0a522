package storage

import "github.com/rsduel/arena-server/internal/game"

// Repository is the persistence collaborator consumed by the arena core.
// The core treats every call as best-effort: failures are logged by the
// caller and never block tick resolution.
type Repository interface {
	// GetOrCreateAgent returns the directory row for an agent, creating it
	// with default levels and rating when first seen. The stored class wins
	// over the provided one for existing agents.
	GetOrCreateAgent(agentID, class string) (*game.AgentProfile, error)
	GetAgentByID(agentID string) (*game.AgentProfile, error)

	// SaveTick appends one resolved tick's payload to the tick log.
	SaveTick(fightID string, round, tick int, payload string) error
	// SaveFightRecord persists the summary row of a finished fight.
	SaveFightRecord(rec *game.FightRecord) error
	// UpdateRatingsOnFightEnd applies the Elo update and win/loss counters
	// for both participants of a finished fight.
	UpdateRatingsOnFightEnd(f *game.Fight) error

	// GetTopAgents returns the leaderboard ordered by rating.
	GetTopAgents(limit int) ([]game.AgentProfile, error)
}
