package engine

import (
	"strings"
	"testing"

	"github.com/rsduel/arena-server/internal/game"
)

func init() {
	// Deterministic test attacks: fixed damage, guaranteed to hit anything
	// with zero defence.
	game.RegisterAttack(game.AttackAction{
		Name: "test_jab", Class: game.ClassMelee,
		MinDamage: 25, MaxDamage: 25, SpeedTicks: 4, AccuracyBonus: 100,
		Status: game.StatusNone,
	})
	game.RegisterAttack(game.AttackAction{
		Name: "test_freeze", Class: game.ClassMagic,
		MinDamage: 0, MaxDamage: 0, SpeedTicks: 5, AccuracyBonus: 100,
		Status: game.StatusFreeze, FreezeTicks: 8,
	})
}

func testFight() *game.Fight {
	f := &game.Fight{
		ID:      "f1",
		Round:   1,
		TickCap: 100,
		Status:  game.StatusInProgress,
	}
	f.Players[0] = game.NewPlayerState("p1", game.ClassMelee, 99, 0, nil)
	f.Players[1] = game.NewPlayerState("p2", game.ClassMelee, 99, 0, nil)
	return f
}

func subs(a, b *game.ActionSubmission) [2]*game.ActionSubmission {
	return [2]*game.ActionSubmission{a, b}
}

func TestResolveTick_ProtectPrayerReducesMatchingDamage(t *testing.T) {
	f := testFight()
	res := ResolveTick(f, subs(
		&game.ActionSubmission{Attack: "test_jab"},
		&game.ActionSubmission{Prayer: "protect_melee"},
	))

	if res.DamageDealt[0] != 15 {
		t.Fatalf("expected floor(25*0.6)=15 damage through protect_melee, got %d", res.DamageDealt[0])
	}
	if f.Players[1].HitPoints != 99-15 {
		t.Fatalf("expected defender at 84 hp, got %d", f.Players[1].HitPoints)
	}
	if f.Players[1].PrayerPoints != 99-4 {
		t.Fatalf("expected protect prayer to drain 4 points, got %d", f.Players[1].PrayerPoints)
	}
}

func TestResolveTick_LegacyPrayerAliasNormalized(t *testing.T) {
	f := testFight()
	ResolveTick(f, subs(
		&game.ActionSubmission{Attack: "test_jab"},
		&game.ActionSubmission{Prayer: "melee"},
	))
	if f.Players[1].HitPoints != 84 {
		t.Fatalf("legacy alias should protect like protect_melee, defender hp = %d", f.Players[1].HitPoints)
	}
}

func TestResolveTick_SpecialEnergyCostAndRegen(t *testing.T) {
	f := testFight()
	res := ResolveTick(f, subs(
		&game.ActionSubmission{Special: "dragon_claws", Attack: "test_jab"},
		nil,
	))

	// 100 - 50 cost + 10 end-of-tick regen
	if f.Players[0].SpecialEnergy != 60 {
		t.Fatalf("expected 60 special energy after cost and regen, got %d", f.Players[0].SpecialEnergy)
	}
	if res.Actions[0] != "special:dragon_claws" {
		t.Fatalf("special should suppress the normal attack, got action %q", res.Actions[0])
	}
	if f.Players[1].SpecialEnergy != 100 {
		t.Fatalf("idle party regen is capped at 100, got %d", f.Players[1].SpecialEnergy)
	}
}

func TestResolveTick_SpecialWithoutEnergyFallsBackToAttack(t *testing.T) {
	f := testFight()
	f.Players[0].SpecialEnergy = 10
	res := ResolveTick(f, subs(
		&game.ActionSubmission{Special: "dragon_claws", Attack: "test_jab"},
		nil,
	))
	if res.Actions[0] != "attack:test_jab" {
		t.Fatalf("unaffordable special should fall back to the normal attack, got %q", res.Actions[0])
	}
	if f.Players[0].SpecialEnergy != 20 {
		t.Fatalf("energy should only regen, got %d", f.Players[0].SpecialEnergy)
	}
}

func TestResolveTick_VengeanceArmsThenReflects(t *testing.T) {
	f := testFight()
	ResolveTick(f, subs(nil, &game.ActionSubmission{Attack: "vengeance"}))
	if !f.Players[1].VengeanceArmed {
		t.Fatalf("expected vengeance to arm")
	}
	if f.Players[0].HitPoints != 99 {
		t.Fatalf("vengeance cast must not deal damage, attacker hp = %d", f.Players[0].HitPoints)
	}

	ResolveTick(f, subs(&game.ActionSubmission{Attack: "test_jab"}, nil))
	// 25 damage lands; 75% reflected = 18
	if f.Players[1].HitPoints != 99-25 {
		t.Fatalf("defender should take 25, got hp %d", f.Players[1].HitPoints)
	}
	if f.Players[0].HitPoints != 99-18 {
		t.Fatalf("attacker should take floor(25*0.75)=18 reflected, got hp %d", f.Players[0].HitPoints)
	}
	if f.Players[1].VengeanceArmed {
		t.Fatalf("vengeance must clear after reflecting once")
	}
}

func TestResolveTick_SmiteDrainsDefenderPrayer(t *testing.T) {
	f := testFight()
	ResolveTick(f, subs(&game.ActionSubmission{Attack: "test_jab", Prayer: "smite"}, nil))
	if f.Players[0].PrayerPoints != 99-6 {
		t.Fatalf("smite costs 6 per tick, attacker prayer = %d", f.Players[0].PrayerPoints)
	}
	if f.Players[1].PrayerPoints != 99-6 {
		t.Fatalf("expected floor(25/4)=6 prayer smited from defender, got %d", f.Players[1].PrayerPoints)
	}
}

func TestResolveTick_FoodHealsAndDecrementsStock(t *testing.T) {
	f := testFight()
	f.Players[0].HitPoints = 50
	res := ResolveTick(f, subs(&game.ActionSubmission{Food: "shark"}, nil))
	if f.Players[0].HitPoints != 70 {
		t.Fatalf("shark heals 20, hp = %d", f.Players[0].HitPoints)
	}
	if f.Players[0].Food["shark"] != game.DefaultFoodStock["shark"]-1 {
		t.Fatalf("stock not decremented: %d", f.Players[0].Food["shark"])
	}
	if res.Healed[0] != 20 {
		t.Fatalf("result should report 20 healed, got %d", res.Healed[0])
	}
}

func TestResolveTick_UnstockedFoodIsNoOp(t *testing.T) {
	f := testFight()
	f.Players[0].HitPoints = 50
	f.Players[0].Food["shark"] = 0
	ResolveTick(f, subs(&game.ActionSubmission{Food: "shark"}, nil))
	if f.Players[0].HitPoints != 50 {
		t.Fatalf("unstocked food must not heal, hp = %d", f.Players[0].HitPoints)
	}
}

func TestResolveTick_HealClampsAtMax(t *testing.T) {
	f := testFight()
	f.Players[0].HitPoints = 95
	ResolveTick(f, subs(&game.ActionSubmission{Food: "shark"}, nil))
	if f.Players[0].HitPoints != game.MaxHitPoints {
		t.Fatalf("hp must clamp at 99, got %d", f.Players[0].HitPoints)
	}
}

func TestResolveTick_BrewDrainsAttackLevel(t *testing.T) {
	f := testFight()
	f.Players[0].HitPoints = 40
	ResolveTick(f, subs(&game.ActionSubmission{Food: "saradomin_brew"}, nil))
	if f.Players[0].AttackLevel != 96 {
		t.Fatalf("brew should drain attack level to 96, got %d", f.Players[0].AttackLevel)
	}
}

func TestResolveTick_StepUnderDelaysOpponentAttack(t *testing.T) {
	f := testFight()
	res := ResolveTick(f, subs(
		&game.ActionSubmission{Movement: "step_under"},
		&game.ActionSubmission{Attack: "test_jab"},
	))
	if f.Players[0].HitPoints != 99 {
		t.Fatalf("delayed opponent must not land an attack, hp = %d", f.Players[0].HitPoints)
	}
	if res.Actions[1] != "idle" {
		t.Fatalf("delayed party's attack should not execute, got %q", res.Actions[1])
	}
}

func TestResolveTick_FrozenPartyCannotMove(t *testing.T) {
	f := testFight()
	f.Players[0].FrozenTicks = 3
	res := ResolveTick(f, subs(&game.ActionSubmission{Movement: "step_under"}, nil))
	if f.Players[1].AttackDelay != 0 {
		t.Fatalf("frozen party must not impose step-under delay, got %d", f.Players[1].AttackDelay)
	}
	if !strings.Contains(res.Narrative, "cannot move") {
		t.Fatalf("narrative should flag the blocked move: %q", res.Narrative)
	}
}

func TestResolveTick_FreezeSetsDuration(t *testing.T) {
	f := testFight()
	ResolveTick(f, subs(&game.ActionSubmission{Attack: "test_freeze"}, nil))
	// Set to 8, then the end-of-tick countdown takes one.
	if f.Players[1].FrozenTicks != 7 {
		t.Fatalf("expected 7 frozen ticks remaining, got %d", f.Players[1].FrozenTicks)
	}
}

func TestResolveTick_PrayerExhaustionRevertsToNone(t *testing.T) {
	f := testFight()
	f.Players[1].PrayerPoints = 3
	ResolveTick(f, subs(
		&game.ActionSubmission{Attack: "test_jab"},
		&game.ActionSubmission{Prayer: "protect_melee"},
	))
	if f.Players[1].PrayerPoints != 0 {
		t.Fatalf("prayer points should floor at 0, got %d", f.Players[1].PrayerPoints)
	}
	// With the prayer gone the jab lands unreduced.
	if f.Players[1].HitPoints != 99-25 {
		t.Fatalf("exhausted prayer must not reduce damage, hp = %d", f.Players[1].HitPoints)
	}
}

func TestResolveTick_PoisonTicksDamage(t *testing.T) {
	f := testFight()
	f.Players[1].Poisoned = true
	ResolveTick(f, subs(nil, nil))
	if f.Players[1].HitPoints != 99-game.PoisonDamagePerTick {
		t.Fatalf("expected %d poison damage, hp = %d", game.PoisonDamagePerTick, f.Players[1].HitPoints)
	}
}

func TestResolveTick_KOEndsRoundAndCreditsSurvivor(t *testing.T) {
	f := testFight()
	f.Players[1].HitPoints = 10
	res := ResolveTick(f, subs(&game.ActionSubmission{Attack: "test_jab"}, nil))

	if !res.RoundOver {
		t.Fatalf("expected round to end on KO")
	}
	if res.RoundWinner != "p1" {
		t.Fatalf("expected p1 to be credited, got %q", res.RoundWinner)
	}
	if f.RoundsWon[0] != 1 {
		t.Fatalf("rounds won = %v", f.RoundsWon)
	}
	if f.Status != game.StatusRoundOver {
		t.Fatalf("status = %s, want round_over", f.Status)
	}
	if res.FightOver {
		t.Fatalf("first round win must not end the match")
	}
}

func TestResolveTick_SecondRoundWinEndsMatch(t *testing.T) {
	f := testFight()
	f.RoundsWon[0] = 1
	f.Players[1].HitPoints = 5
	res := ResolveTick(f, subs(&game.ActionSubmission{Attack: "test_jab"}, nil))

	if !res.FightOver {
		t.Fatalf("expected fight to end at two round wins")
	}
	if f.Status != game.StatusFightOver {
		t.Fatalf("status = %s, want fight_over", f.Status)
	}
	if f.Winner != "p1" || res.Winner != "p1" {
		t.Fatalf("winner = %q / %q, want p1", f.Winner, res.Winner)
	}
	if !strings.Contains(res.Narrative, "wins the match") {
		t.Fatalf("narrative should announce the match winner: %q", res.Narrative)
	}
}

func TestResolveTick_TickCapAwardsHigherHP(t *testing.T) {
	f := testFight()
	f.Tick = 99
	f.Players[0].HitPoints = 40
	f.Players[1].HitPoints = 55
	res := ResolveTick(f, subs(nil, nil))

	if !res.RoundOver {
		t.Fatalf("expected round to end at the tick cap")
	}
	if res.RoundWinner != "p2" {
		t.Fatalf("expected the 55-hp party to win, got %q", res.RoundWinner)
	}
	if f.RoundsWon[1] != 1 {
		t.Fatalf("rounds won = %v", f.RoundsWon)
	}
	if !strings.Contains(res.Narrative, "timed out") {
		t.Fatalf("narrative should mention the timeout: %q", res.Narrative)
	}
}

func TestResolveTick_TickCapEqualHPIsDrawn(t *testing.T) {
	f := testFight()
	f.Tick = 99
	res := ResolveTick(f, subs(nil, nil))

	if !res.RoundOver {
		t.Fatalf("expected round to end at the tick cap")
	}
	if res.RoundWinner != "" {
		t.Fatalf("equal hp must award neither party, got %q", res.RoundWinner)
	}
	if f.RoundsWon[0] != 0 || f.RoundsWon[1] != 0 {
		t.Fatalf("rounds won = %v, want none", f.RoundsWon)
	}
}

func TestResolveTick_InvariantsHold(t *testing.T) {
	f := testFight()
	f.Players[0].HitPoints = 2
	f.Players[1].HitPoints = 2
	ResolveTick(f, subs(
		&game.ActionSubmission{Attack: "test_jab", Prayer: "smite"},
		&game.ActionSubmission{Attack: "test_jab", Prayer: "piety"},
	))
	for i, p := range f.Players {
		if p.HitPoints < 0 || p.HitPoints > game.MaxHitPoints {
			t.Fatalf("player %d hp out of range: %d", i, p.HitPoints)
		}
		if p.PrayerPoints < 0 || p.PrayerPoints > game.MaxPrayer {
			t.Fatalf("player %d prayer out of range: %d", i, p.PrayerPoints)
		}
		if p.SpecialEnergy < 0 || p.SpecialEnergy > game.MaxSpecialEnergy {
			t.Fatalf("player %d special out of range: %d", i, p.SpecialEnergy)
		}
	}
}

func TestResolveTick_SimultaneousKOIsDrawnRound(t *testing.T) {
	f := testFight()
	f.Players[0].HitPoints = 5
	f.Players[1].HitPoints = 5
	res := ResolveTick(f, subs(
		&game.ActionSubmission{Attack: "test_jab"},
		&game.ActionSubmission{Attack: "test_jab"},
	))
	if !res.RoundOver {
		t.Fatalf("expected round to end")
	}
	if res.RoundWinner != "" {
		t.Fatalf("double KO should credit neither party, got %q", res.RoundWinner)
	}
}
