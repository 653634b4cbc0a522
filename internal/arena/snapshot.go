package arena

import (
	"time"

	"github.com/rsduel/arena-server/internal/game"
)

// PlayerView is one party's state as exposed to clients and spectators.
// HasSubmitted tells watchers a choice is in; the choice itself is withheld
// until the tick resolves so an opponent's in-flight action never leaks.
type PlayerView struct {
	game.PlayerState
	HasSubmitted bool `json:"has_submitted"`
}

// Snapshot is a sanitized, deep-copied view of a fight. It can be
// marshalled after the entry lock is released without racing resolution.
type Snapshot struct {
	FightID    string           `json:"fight_id"`
	Arena      string           `json:"arena"`
	Wager      int64            `json:"wager"`
	Round      int              `json:"round"`
	Tick       int              `json:"tick"`
	Status     game.FightStatus `json:"status"`
	NextTickAt time.Time        `json:"next_tick_at"`
	RoundsWon  [2]int           `json:"rounds_won"`
	Winner     string           `json:"winner,omitempty"`
	Players    [2]PlayerView    `json:"players"`
	LastResult *game.TickResult `json:"last_result,omitempty"`
}

// snapshotOf must be called with the fight's entry lock held.
func snapshotOf(f *game.Fight) *Snapshot {
	s := &Snapshot{
		FightID:    f.ID,
		Arena:      f.Arena,
		Wager:      f.Wager,
		Round:      f.Round,
		Tick:       f.Tick,
		Status:     f.Status,
		NextTickAt: f.NextTickAt,
		RoundsWon:  f.RoundsWon,
		Winner:     f.Winner,
		LastResult: f.LastResult,
	}
	for i := range f.Players {
		p := *f.Players[i]
		food := make(map[string]int, len(p.Food))
		for name, n := range p.Food {
			food[name] = n
		}
		p.Food = food
		s.Players[i] = PlayerView{PlayerState: p, HasSubmitted: f.Pending[i] != nil}
	}
	return s
}
