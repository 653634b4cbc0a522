package engine

import (
	"math/rand"
	"strconv"

	"github.com/rsduel/arena-server/internal/game"
)

// ResolveTick resolves one tick of a fight using both parties' submissions
// (nil means idle). The fixed order is: prayer, food, movement, specials,
// normal attacks, end-of-tick bookkeeping, then the round/match judge.
// The returned result is also recorded on the fight.
func ResolveTick(f *game.Fight, subs [2]*game.ActionSubmission) *game.TickResult {
	tc := newTickContext(f, subs)

	tc.applyPrayers()
	tc.applyFood()
	tc.applyMovement()
	tc.applySpecials()
	tc.applyAttacks()
	tc.endOfTick()

	res := &game.TickResult{
		Round:       f.Round,
		Tick:        f.Tick,
		Actions:     tc.labels,
		DamageDealt: tc.damage,
		Healed:      tc.healed,
	}
	tc.judge(res)
	res.Narrative = tc.joinSummary()

	f.LastResult = res
	f.History = append(f.History, res)
	return res
}

// applyPrayers sets both parties' active prayer for the tick and drains
// prayer points by the fixed per-prayer cost.
func (tc *tickContext) applyPrayers() {
	for i := range tc.subs {
		p := tc.player(i)
		prayer := game.NormalizePrayer(tc.subs[i].Prayer)
		p.ActivePrayer = prayer
		cost := prayer.DrainCost()
		if cost > 0 {
			p.PrayerPoints -= cost
			if p.PrayerPoints <= 0 {
				p.PrayerPoints = 0
				p.ActivePrayer = game.PrayerNone
				if prayer != game.PrayerNone {
					tc.add(p.AgentID + " is out of prayer points")
				}
			}
		}
	}
}

// applyFood consumes the chosen food if stocked. Healing is applied
// unclamped here; the end-of-tick clamp bounds hp.
func (tc *tickContext) applyFood() {
	for i := range tc.subs {
		name := tc.subs[i].Food
		if name == "" {
			continue
		}
		food := game.FoodByName(name)
		if food == nil {
			continue
		}
		p := tc.player(i)
		if p.Food[food.Name] <= 0 {
			continue
		}
		p.Food[food.Name]--
		p.HitPoints += food.Heal
		tc.healed[i] += food.Heal
		if p.AttackDelay < food.EatDelay {
			p.AttackDelay = food.EatDelay
		}
		if food.StatDrain {
			p.AttackLevel -= 3
			if p.AttackLevel < 1 {
				p.AttackLevel = 1
			}
		}
		tc.add(p.AgentID + " eats " + food.Name + " (+" + strconv.Itoa(food.Heal) + " hp)")
	}
}

// applyMovement handles the tactical movement flags. A frozen party cannot
// move; stepping under imposes +1 attack delay on the opponent.
func (tc *tickContext) applyMovement() {
	for i := range tc.subs {
		move := tc.subs[i].Movement
		if move == game.MoveNone {
			continue
		}
		p := tc.player(i)
		if p.FrozenTicks > 0 {
			tc.add(p.AgentID + " is held in place and cannot move")
			continue
		}
		if move == game.MoveStepUnder {
			tc.opponent(i).AttackDelay++
			tc.add(p.AgentID + " steps under, delaying the opponent's attack")
		}
	}
}

// applySpecials executes special attacks for parties that chose one and can
// afford its energy cost. A special that fires suppresses that party's
// normal attack for the tick.
func (tc *tickContext) applySpecials() {
	for i := range tc.subs {
		name := tc.subs[i].Special
		if name == "" {
			continue
		}
		spec := game.SpecialByName(name)
		if spec == nil {
			continue
		}
		p := tc.player(i)
		def := tc.opponent(i)
		if p.SpecialEnergy < spec.EnergyCost {
			tc.add(p.AgentID + " lacks the special energy for " + spec.Name)
			continue
		}
		p.SpecialEnergy -= spec.EnergyCost
		tc.usedSpecial[i] = true
		tc.labels[i] = "special:" + spec.Name
		p.LastSpecial = spec.Name

		total := 0
		for hit := 0; hit < spec.Hits; hit++ {
			roll := rollDamage(spec.MinDamage, spec.MaxDamage)
			if spec.Effect == game.EffectCascade && hit > 0 {
				scale := 1.0
				for extra := 0; extra < hit; extra++ {
					scale *= 0.8
				}
				roll = int(float64(roll) * scale)
			}
			if spec.Effect == game.EffectGuaranteedMin && roll < spec.MinimumHit {
				roll = spec.MinimumHit
			}
			if spec.Effect == game.EffectPrayerPunish && def.ActivePrayer != game.PrayerNone {
				roll = roll * 3 / 2
			}
			if spec.Effect != game.EffectIgnoreDefense {
				roll = applyProtection(roll, def, spec.Class)
			}
			total += roll
		}
		tc.dealDamage(i, total)
		tc.add(p.AgentID + " unleashes " + spec.Name + " for " + strconv.Itoa(total) + " damage")

		switch spec.Effect {
		case game.EffectHealRestore:
			heal := int(float64(total) * spec.HealFraction)
			restore := int(float64(total) * spec.PrayerRestore)
			p.HitPoints += heal
			p.PrayerPoints += restore
			tc.healed[i] += heal
			if heal > 0 || restore > 0 {
				tc.add(p.AgentID + " siphons " + strconv.Itoa(heal) + " hp and " + strconv.Itoa(restore) + " prayer")
			}
		case game.EffectPoisonChance:
			if !def.Poisoned && rand.Float64() < spec.PoisonChance {
				def.Poisoned = true
				tc.add(def.AgentID + " is poisoned")
			}
		}
	}
}

// applyAttacks executes each party's normal attack when it used no special
// this tick and is not recovering from a previous swing.
func (tc *tickContext) applyAttacks() {
	for i := range tc.subs {
		if tc.usedSpecial[i] {
			continue
		}
		name := tc.subs[i].Attack
		if name == "" {
			continue
		}
		atk := game.AttackByName(name)
		if atk == nil {
			continue
		}
		p := tc.player(i)
		if p.AttackDelay > 0 {
			tc.add(p.AgentID + " is still recovering and cannot attack")
			continue
		}
		def := tc.opponent(i)
		tc.labels[i] = "attack:" + atk.Name
		p.LastAttack = atk.Name
		p.AttackDelay = atk.SpeedTicks

		// Vengeance is a self-cast: it arms retaliation instead of
		// dealing damage.
		if atk.Status == game.StatusVengeance {
			p.VengeanceArmed = true
			tc.add(p.AgentID + " casts vengeance")
			continue
		}

		if !rollHit(p, def, atk) {
			tc.add(p.AgentID + "'s " + atk.Name + " misses")
			continue
		}

		dmg := rollDamage(atk.MinDamage, atk.MaxDamage)
		dmg = int(float64(dmg) * damagePrayerMultiplier(p.ActivePrayer, atk.Class))
		dmg = applyProtection(dmg, def, atk.Class)

		switch atk.Status {
		case game.StatusBoltProc:
			if rand.Float64() < atk.ProcChance {
				dmg += atk.ProcBonus
				tc.add(p.AgentID + "'s bolt flares for bonus damage")
			}
		case game.StatusFreeze, game.StatusBind:
			def.FrozenTicks = atk.FreezeTicks
			tc.add(def.AgentID + " is frozen for " + strconv.Itoa(atk.FreezeTicks) + " ticks")
		case game.StatusTeleblock:
			def.Teleblocked = true
			tc.add(def.AgentID + " is teleblocked")
		}

		tc.dealDamage(i, dmg)
		tc.add(p.AgentID + " hits " + strconv.Itoa(dmg) + " with " + atk.Name)

		if atk.Status == game.StatusHeal && dmg > 0 {
			heal := int(float64(dmg) * atk.HealFraction)
			if heal > 0 {
				p.HitPoints += heal
				tc.healed[i] += heal
				tc.add(p.AgentID + " drains " + strconv.Itoa(heal) + " hp")
			}
		}
	}
}

// endOfTick applies regeneration, countdowns, poison and clamping, then
// advances the tick counter.
func (tc *tickContext) endOfTick() {
	for i := range tc.f.Players {
		p := tc.player(i)
		p.SpecialEnergy = clampInt(p.SpecialEnergy+game.SpecialRegenPerTick, 0, game.MaxSpecialEnergy)
		if p.AttackDelay > 0 {
			p.AttackDelay--
		}
		if p.FrozenTicks > 0 {
			p.FrozenTicks--
		}
		if p.Poisoned {
			p.HitPoints -= game.PoisonDamagePerTick
			tc.add(p.AgentID + " suffers " + strconv.Itoa(game.PoisonDamagePerTick) + " poison damage")
		}
		p.HitPoints = clampInt(p.HitPoints, 0, game.MaxHitPoints)
		p.PrayerPoints = clampInt(p.PrayerPoints, 0, game.MaxPrayer)
	}
	tc.f.Tick++
}
