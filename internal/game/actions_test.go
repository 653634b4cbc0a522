package game

import "testing"

func TestCombatClass_BeatsCycle(t *testing.T) {
	tests := []struct {
		a, b CombatClass
		want bool
	}{
		{ClassMelee, ClassRanged, true},
		{ClassRanged, ClassMagic, true},
		{ClassMagic, ClassMelee, true},
		{ClassRanged, ClassMelee, false},
		{ClassMagic, ClassRanged, false},
		{ClassMelee, ClassMagic, false},
		{ClassMelee, ClassMelee, false},
	}
	for _, tt := range tests {
		if got := tt.a.Beats(tt.b); got != tt.want {
			t.Errorf("%s.Beats(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNormalizePrayer(t *testing.T) {
	tests := []struct {
		in   string
		want PrayerAction
	}{
		{"", PrayerNone},
		{"none", PrayerNone},
		{"protect_melee", PrayerProtectMelee},
		{"melee", PrayerProtectMelee},
		{"Protect From Melee", PrayerProtectMelee},
		{"range", PrayerProtectRanged},
		{"ranged", PrayerProtectRanged},
		{"mage", PrayerProtectMagic},
		{"magic", PrayerProtectMagic},
		{"  smite  ", PrayerSmite},
		{"PIETY", PrayerPiety},
		{"rigour", PrayerRigour},
		{"augury", PrayerAugury},
		{"chivalry", PrayerNone},
	}
	for _, tt := range tests {
		if got := NormalizePrayer(tt.in); got != tt.want {
			t.Errorf("NormalizePrayer(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestPrayerDrainCosts(t *testing.T) {
	if got := PrayerProtectMelee.DrainCost(); got != 4 {
		t.Errorf("protect drain = %d, want 4", got)
	}
	if got := PrayerSmite.DrainCost(); got != 6 {
		t.Errorf("smite drain = %d, want 6", got)
	}
	if got := PrayerPiety.DrainCost(); got != 5 {
		t.Errorf("piety drain = %d, want 5", got)
	}
	if got := PrayerNone.DrainCost(); got != 0 {
		t.Errorf("none drain = %d, want 0", got)
	}
}

func TestProtectsAgainst(t *testing.T) {
	if !PrayerProtectRanged.ProtectsAgainst(ClassRanged) {
		t.Error("protect_ranged must block ranged")
	}
	if PrayerProtectRanged.ProtectsAgainst(ClassMagic) {
		t.Error("protect_ranged must not block magic")
	}
	if PrayerSmite.ProtectsAgainst(ClassMelee) {
		t.Error("smite is not a protection prayer")
	}
}

func TestNewPlayerState_FreshAndIsolated(t *testing.T) {
	stock := map[string]int{"shark": 5}
	p := NewPlayerState("alice", ClassMelee, 99, 70, stock)

	if p.HitPoints != MaxHitPoints || p.PrayerPoints != MaxPrayer || p.SpecialEnergy != MaxSpecialEnergy {
		t.Fatalf("pools not full: %+v", p)
	}
	if p.ActivePrayer != PrayerNone || p.Poisoned || p.VengeanceArmed || p.FrozenTicks != 0 {
		t.Fatalf("status flags not clear: %+v", p)
	}

	// The stock map must be copied, not shared.
	p.Food["shark"] = 0
	if stock["shark"] != 5 {
		t.Fatal("player food stock aliases the seed map")
	}

	q := NewPlayerState("bob", ClassMagic, 99, 99, nil)
	if len(q.Food) == 0 {
		t.Fatal("nil stock must fall back to the default loadout")
	}
}

func TestFight_ParticipantIndex(t *testing.T) {
	f := &Fight{}
	f.Players[0] = &PlayerState{AgentID: "alice"}
	f.Players[1] = &PlayerState{AgentID: "bob"}

	if idx := f.ParticipantIndex("alice"); idx != 0 {
		t.Errorf("alice index = %d, want 0", idx)
	}
	if idx := f.ParticipantIndex("bob"); idx != 1 {
		t.Errorf("bob index = %d, want 1", idx)
	}
	if idx := f.ParticipantIndex("mallory"); idx != -1 {
		t.Errorf("outsider index = %d, want -1", idx)
	}
}
