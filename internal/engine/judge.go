package engine

import (
	"strconv"

	"github.com/rsduel/arena-server/internal/game"
)

// judge runs immediately after end-of-tick bookkeeping. It detects round
// termination (KO or tick cap), credits round wins, and promotes the fight
// to round_over or fight_over.
func (tc *tickContext) judge(res *game.TickResult) {
	f := tc.f
	p0 := tc.player(0)
	p1 := tc.player(1)

	ko0 := p0.HitPoints <= 0
	ko1 := p1.HitPoints <= 0
	capped := f.Tick >= f.TickCap

	if !ko0 && !ko1 && !capped {
		return
	}

	winner := -1
	switch {
	case ko0 && ko1:
		tc.add("both fighters fall; the round is a draw")
	case ko0:
		winner = 1
		tc.add(p1.AgentID + " knocks out " + p0.AgentID)
	case ko1:
		winner = 0
		tc.add(p0.AgentID + " knocks out " + p1.AgentID)
	default:
		// Tick cap: higher remaining hp wins the round; an exact tie
		// awards neither party.
		switch {
		case p0.HitPoints > p1.HitPoints:
			winner = 0
			tc.add("round timed out: " + p0.AgentID + " wins on remaining hit points (" +
				strconv.Itoa(p0.HitPoints) + " vs " + strconv.Itoa(p1.HitPoints) + ")")
		case p1.HitPoints > p0.HitPoints:
			winner = 1
			tc.add("round timed out: " + p1.AgentID + " wins on remaining hit points (" +
				strconv.Itoa(p1.HitPoints) + " vs " + strconv.Itoa(p0.HitPoints) + ")")
		default:
			tc.add("round timed out with equal hit points; drawn round")
		}
	}

	res.RoundOver = true
	if winner >= 0 {
		f.RoundsWon[winner]++
		res.RoundWinner = f.Players[winner].AgentID
	}

	if winner >= 0 && f.RoundsWon[winner] >= game.RoundsToWinMatch {
		f.Status = game.StatusFightOver
		f.Winner = f.Players[winner].AgentID
		res.FightOver = true
		res.Winner = f.Winner
		tc.add(f.Winner + " wins the match " +
			strconv.Itoa(f.RoundsWon[winner]) + "-" + strconv.Itoa(f.RoundsWon[1-winner]))
	} else {
		f.Status = game.StatusRoundOver
	}
}
