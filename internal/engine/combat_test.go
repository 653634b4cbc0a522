package engine

import (
	"testing"

	"github.com/rsduel/arena-server/internal/game"
)

func TestTriangleModifier(t *testing.T) {
	cases := []struct {
		att, def game.CombatClass
		want     float64
	}{
		{game.ClassMelee, game.ClassRanged, 1.10},
		{game.ClassRanged, game.ClassMagic, 1.10},
		{game.ClassMagic, game.ClassMelee, 1.10},
		{game.ClassRanged, game.ClassMelee, 0.90},
		{game.ClassMagic, game.ClassRanged, 0.90},
		{game.ClassMelee, game.ClassMagic, 0.90},
		{game.ClassMelee, game.ClassMelee, 1.0},
		{game.ClassMagic, game.ClassMagic, 1.0},
	}
	for _, c := range cases {
		if got := TriangleModifier(c.att, c.def); got != c.want {
			t.Fatalf("TriangleModifier(%s, %s) = %v, want %v", c.att, c.def, got, c.want)
		}
	}
}

func TestHitChance_GuaranteedWhenBothRollsZero(t *testing.T) {
	if got := HitChance(0, 0, 1.0, 0); got != 1.0 {
		t.Fatalf("expected guaranteed hit when both rolls are zero, got %v", got)
	}
}

func TestHitChance_ZeroDefenceAlwaysHits(t *testing.T) {
	if got := HitChance(99, 100, 1.0, 0); got != 1.0 {
		t.Fatalf("expected certain hit against zero defence, got %v", got)
	}
}

func TestHitChance_Formula(t *testing.T) {
	// attack_roll = floor(99 * (100+64) * 1.0) = 16236
	// defense_roll = floor(99 * 64) = 6336
	want := 16236.0 / (16236.0 + 6336.0)
	if got := HitChance(99, 100, 1.0, 99); got != want {
		t.Fatalf("HitChance = %v, want %v", got, want)
	}
}

func TestApplyProtection_MatchingPrayerReduces40Percent(t *testing.T) {
	def := &game.PlayerState{ActivePrayer: game.PrayerProtectMelee}
	if got := applyProtection(25, def, game.ClassMelee); got != 15 {
		t.Fatalf("expected floor(25*0.6)=15, got %d", got)
	}
	if got := applyProtection(25, def, game.ClassMagic); got != 25 {
		t.Fatalf("expected non-matching class unreduced, got %d", got)
	}
	def.ActivePrayer = game.PrayerNone
	if got := applyProtection(25, def, game.ClassMelee); got != 25 {
		t.Fatalf("expected no prayer unreduced, got %d", got)
	}
}

func TestDamagePrayerMultiplier_ClassMatchOnly(t *testing.T) {
	if got := damagePrayerMultiplier(game.PrayerPiety, game.ClassMelee); got != 1.23 {
		t.Fatalf("piety vs melee = %v, want 1.23", got)
	}
	if got := damagePrayerMultiplier(game.PrayerPiety, game.ClassMagic); got != 1.0 {
		t.Fatalf("piety vs magic = %v, want 1.0", got)
	}
	if got := damagePrayerMultiplier(game.PrayerAugury, game.ClassMagic); got != 1.04 {
		t.Fatalf("augury vs magic = %v, want 1.04", got)
	}
}

func TestAccuracyPrayerMultiplier_ClassMatchOnly(t *testing.T) {
	if got := accuracyPrayerMultiplier(game.PrayerRigour, game.ClassRanged); got != 1.20 {
		t.Fatalf("rigour vs ranged = %v, want 1.20", got)
	}
	if got := accuracyPrayerMultiplier(game.PrayerAugury, game.ClassMagic); got != 1.25 {
		t.Fatalf("augury vs magic = %v, want 1.25", got)
	}
	if got := accuracyPrayerMultiplier(game.PrayerNone, game.ClassMelee); got != 1.0 {
		t.Fatalf("no prayer = %v, want 1.0", got)
	}
}
