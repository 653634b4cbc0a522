package engine

import (
	"math"
	"math/rand"

	"github.com/rsduel/arena-server/internal/game"
)

// Accuracy/damage model: pure functions over stats and modifiers.

const (
	// protectReduction is the fraction of damage that survives a matching
	// protect prayer.
	protectReduction = 0.6

	triangleAdvantage    = 1.10
	triangleDisadvantage = 0.90

	accuracyPrayerMelee  = 1.20
	accuracyPrayerRanged = 1.20
	accuracyPrayerMagic  = 1.25

	damagePrayerMelee  = 1.23
	damagePrayerRanged = 1.23
	damagePrayerMagic  = 1.04

	vengeanceReflectFraction = 0.75
	smiteDrainDivisor        = 4
)

// TriangleModifier returns the cyclic-dominance accuracy modifier for an
// attacker class against a defender class.
func TriangleModifier(att, def game.CombatClass) float64 {
	if att.Beats(def) {
		return triangleAdvantage
	}
	if def.Beats(att) {
		return triangleDisadvantage
	}
	return 1.0
}

// accuracyPrayerMultiplier applies only when the offensive prayer's class
// matches the attack's class.
func accuracyPrayerMultiplier(prayer game.PrayerAction, attackClass game.CombatClass) float64 {
	if prayer.OffensiveClass() != attackClass {
		return 1.0
	}
	switch attackClass {
	case game.ClassMelee:
		return accuracyPrayerMelee
	case game.ClassRanged:
		return accuracyPrayerRanged
	case game.ClassMagic:
		return accuracyPrayerMagic
	}
	return 1.0
}

// damagePrayerMultiplier scales rolled damage when the offensive prayer's
// class matches the attack's class.
func damagePrayerMultiplier(prayer game.PrayerAction, attackClass game.CombatClass) float64 {
	if prayer.OffensiveClass() != attackClass {
		return 1.0
	}
	switch attackClass {
	case game.ClassMelee:
		return damagePrayerMelee
	case game.ClassRanged:
		return damagePrayerRanged
	case game.ClassMagic:
		return damagePrayerMagic
	}
	return 1.0
}

// HitChance computes the probability of a successful hit. Both rolls zero
// means a guaranteed hit.
func HitChance(attackerLevel int, effectiveAccuracy, triangle float64, defenderLevel int) float64 {
	attackRoll := math.Floor(float64(attackerLevel) * (effectiveAccuracy + 64) * triangle)
	defenseRoll := math.Floor(float64(defenderLevel) * 64)
	if attackRoll <= 0 && defenseRoll <= 0 {
		return 1.0
	}
	if attackRoll < 0 {
		attackRoll = 0
	}
	return attackRoll / (attackRoll + defenseRoll)
}

// rollHit draws against the accuracy model for one normal attack.
func rollHit(attacker *game.PlayerState, defender *game.PlayerState, atk *game.AttackAction) bool {
	effAcc := float64(atk.AccuracyBonus) * accuracyPrayerMultiplier(attacker.ActivePrayer, atk.Class)
	tri := TriangleModifier(atk.Class, defender.Class)
	p := HitChance(attacker.AttackLevel, effAcc, tri, defender.DefenceLevel)
	return rand.Float64() < p
}

// rollDamage draws a uniform integer in [min, max].
func rollDamage(min, max int) int {
	if max <= min {
		return min
	}
	return min + rand.Intn(max-min+1)
}

// applyProtection reduces damage by 40% when the defender's protect prayer
// matches the attack class.
func applyProtection(dmg int, defender *game.PlayerState, attackClass game.CombatClass) int {
	if defender.ActivePrayer.ProtectsAgainst(attackClass) {
		return int(math.Floor(float64(dmg) * protectReduction))
	}
	return dmg
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
