package engine

import (
	"strconv"
	"strings"

	"github.com/rsduel/arena-server/internal/game"
)

// tickContext accumulates per-tick mutation and narrative while one tick of
// a fight resolves.
type tickContext struct {
	f    *game.Fight
	subs [2]*game.ActionSubmission

	summary     []string
	damage      [2]int
	healed      [2]int
	usedSpecial [2]bool
	labels      [2]string
}

func newTickContext(f *game.Fight, subs [2]*game.ActionSubmission) *tickContext {
	tc := &tickContext{f: f, subs: subs, summary: make([]string, 0, 16)}
	for i := range tc.subs {
		if tc.subs[i] == nil {
			tc.subs[i] = game.IdleSubmission(f.ID, f.Players[i].AgentID)
		}
		tc.labels[i] = "idle"
	}
	return tc
}

func (tc *tickContext) add(msg string) { tc.summary = append(tc.summary, msg) }

// joinSummary returns the accumulated narrative as a single string.
func (tc *tickContext) joinSummary() string {
	return strings.Join(tc.summary, "\n")
}

func (tc *tickContext) player(i int) *game.PlayerState { return tc.f.Players[i] }

func (tc *tickContext) opponent(i int) *game.PlayerState { return tc.f.Players[1-i] }

// dealDamage applies damage from side i to its opponent and runs the shared
// on-damage effects: a smite-praying attacker drains the defender's prayer
// proportional to damage, and an armed vengeance on the defender reflects
// 75% back onto the attacker (once).
func (tc *tickContext) dealDamage(i int, dmg int) {
	if dmg <= 0 {
		return
	}
	att := tc.player(i)
	def := tc.opponent(i)
	def.HitPoints -= dmg
	tc.damage[i] += dmg

	if att.ActivePrayer == game.PrayerSmite && def.PrayerPoints > 0 {
		drain := dmg / smiteDrainDivisor
		if drain > 0 {
			def.PrayerPoints -= drain
			if def.PrayerPoints <= 0 {
				def.PrayerPoints = 0
				def.ActivePrayer = game.PrayerNone
			}
			tc.add(att.AgentID + " smites " + strconv.Itoa(drain) + " prayer from " + def.AgentID)
		}
	}

	if def.VengeanceArmed {
		reflect := int(float64(dmg) * vengeanceReflectFraction)
		def.VengeanceArmed = false
		if reflect > 0 {
			att.HitPoints -= reflect
			tc.damage[1-i] += reflect
			tc.add(def.AgentID + " vengeance reflects " + strconv.Itoa(reflect) + " back at " + att.AgentID)
		}
	}
}
