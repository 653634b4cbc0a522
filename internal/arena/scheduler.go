package arena

import (
	"encoding/json"
	"time"

	"github.com/rsduel/arena-server/internal/engine"
	"github.com/rsduel/arena-server/internal/game"
	"github.com/rsduel/arena-server/internal/logging"
)

// Tick scheduling. Each fight owns at most one live timer: either the
// tick-pacing timer (both actions in, waiting for the window floor) or the
// action-timeout timer (one action in, waiting for the laggard). Scheduling
// one always cancels the other, and a fired timer re-checks the fight's
// state under the entry lock, so a stale fire is silently absorbed.

// SubmitOutcome reports what happened to a submission: stored and waiting,
// or resolved into a tick result.
type SubmitOutcome struct {
	Resolved   bool             `json:"resolved"`
	WaitingFor string           `json:"waiting_for,omitempty"`
	Result     *game.TickResult `json:"tick_result,omitempty"`
	Snapshot   *Snapshot        `json:"snapshot,omitempty"`
}

// SubmitAction stores one party's choices for the current tick. It never
// blocks on resolution timing: when the pacing floor is still in effect the
// tick resolves later on the fight's timer.
func (r *Registry) SubmitAction(fightID, agentID string, sub *game.ActionSubmission) (*SubmitOutcome, error) {
	entry := r.lookup(fightID)
	if entry == nil {
		return nil, ErrFightNotFound
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	f := entry.fight
	if f.Status != game.StatusInProgress {
		return nil, ErrFightNotInProgress
	}
	idx := f.ParticipantIndex(agentID)
	if idx < 0 {
		return nil, ErrNotParticipant
	}
	if err := validateSubmission(sub); err != nil {
		return nil, err
	}
	sub.AgentID = agentID
	sub.FightID = fightID

	// Overwrites a stale submission for the same tick; once both slots are
	// filled there is no partial retraction.
	f.Pending[idx] = sub

	if f.BothSubmitted() {
		now := time.Now()
		if !now.Before(f.NextTickAt) {
			res := r.resolveLocked(entry)
			return &SubmitOutcome{Resolved: true, Result: res, Snapshot: snapshotOf(f)}, nil
		}
		// Ticks never resolve faster than the pacing window even when
		// both parties answer instantly.
		r.scheduleLocked(entry, timerPacing, f.NextTickAt.Sub(now))
		return &SubmitOutcome{Snapshot: snapshotOf(f)}, nil
	}

	// First submission of the tick starts the action-timeout clock.
	if entry.kind == timerNone {
		r.scheduleLocked(entry, timerTimeout, r.settings.ActionTimeout)
	}
	return &SubmitOutcome{WaitingFor: f.Players[1-idx].AgentID, Snapshot: snapshotOf(f)}, nil
}

func validateSubmission(sub *game.ActionSubmission) error {
	if sub == nil {
		return ErrUnknownAction
	}
	if sub.Attack != "" && sub.Attack != "none" && game.AttackByName(sub.Attack) == nil {
		return ErrUnknownAction
	}
	if sub.Special != "" && sub.Special != "none" && game.SpecialByName(sub.Special) == nil {
		return ErrUnknownAction
	}
	if sub.Food != "" && sub.Food != "none" && game.FoodByName(sub.Food) == nil {
		return ErrUnknownAction
	}
	switch sub.Movement {
	case game.MoveNone, game.MoveStepUnder, "none":
	default:
		return ErrUnknownAction
	}
	return nil
}

// scheduleLocked arms the given timer kind, cancelling whatever was live.
func (r *Registry) scheduleLocked(entry *fightEntry, kind timerKind, d time.Duration) {
	entry.cancelTimerLocked()
	entry.kind = kind
	epoch := entry.epoch
	fightID := entry.fight.ID
	if d < 0 {
		d = 0
	}
	entry.timer = time.AfterFunc(d, func() {
		r.onTimer(fightID, epoch, kind)
	})
}

// cancelTimerLocked stops the live timer (if any) and bumps the epoch so a
// concurrently-fired callback detects it is stale.
func (e *fightEntry) cancelTimerLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.kind = timerNone
	e.epoch++
}

// onTimer runs when a pacing or timeout timer fires. A timer that outlived
// its fight, or that was superseded before it could acquire the lock,
// detects the mismatch and no-ops.
func (r *Registry) onTimer(fightID string, epoch uint64, kind timerKind) {
	entry := r.lookup(fightID)
	if entry == nil {
		return
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.epoch != epoch || entry.kind != kind {
		return
	}
	entry.timer = nil
	entry.kind = timerNone

	f := entry.fight
	if f.Status != game.StatusInProgress {
		return
	}

	switch kind {
	case timerPacing:
		if !f.BothSubmitted() {
			return
		}
		r.resolveLocked(entry)
	case timerTimeout:
		// Any still-empty slot is deemed idle, then the pacing floor
		// still applies.
		for i := range f.Pending {
			if f.Pending[i] == nil {
				f.Pending[i] = game.IdleSubmission(f.ID, f.Players[i].AgentID)
				logging.Info("action timeout: treating agent as idle", logging.Fields{"fight_id": f.ID, "agent_id": f.Players[i].AgentID})
			}
		}
		if now := time.Now(); now.Before(f.NextTickAt) {
			r.scheduleLocked(entry, timerPacing, f.NextTickAt.Sub(now))
			return
		}
		r.resolveLocked(entry)
	}
}

// resolveLocked runs the resolution engine for the current tick, then clears
// the slots, restarts the pacing window and fans the result out. Persistence
// and broadcast are best-effort and never fail the tick.
func (r *Registry) resolveLocked(entry *fightEntry) *game.TickResult {
	entry.cancelTimerLocked()
	f := entry.fight

	subs := f.Pending
	res := engine.ResolveTick(f, subs)

	f.Pending[0], f.Pending[1] = nil, nil
	f.NextTickAt = time.Now().Add(f.TickWindow)

	if payload, err := json.Marshal(res); err == nil {
		if err := r.repo.SaveTick(f.ID, res.Round, res.Tick, string(payload)); err != nil {
			logging.Error("tick persist failed", err, logging.Fields{"fight_id": f.ID, "tick": res.Tick})
		}
	}

	if res.FightOver {
		r.finishFightLocked(f)
	}

	r.hub.Publish(f.ID, TickEvent{Result: res, Snapshot: snapshotOf(f)})
	return res
}
