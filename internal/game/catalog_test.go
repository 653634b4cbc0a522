package game

import "testing"

func TestCatalogLookupIsCaseInsensitive(t *testing.T) {
	if AttackByName("Ice_Barrage") == nil {
		t.Error("attack lookup should ignore case")
	}
	if SpecialByName("DRAGON_CLAWS") == nil {
		t.Error("special lookup should ignore case")
	}
	if FoodByName(" shark ") == nil {
		t.Error("food lookup should trim whitespace")
	}
	if AttackByName("rubber_chicken") != nil {
		t.Error("unknown attack must not resolve")
	}
}

func TestRegisterAttack_AddAndReplace(t *testing.T) {
	RegisterAttack(AttackAction{Name: "training_sword", Class: ClassMelee, MinDamage: 1, MaxDamage: 2, SpeedTicks: 4})
	a := AttackByName("training_sword")
	if a == nil || a.MaxDamage != 2 {
		t.Fatalf("registered attack not found: %+v", a)
	}

	RegisterAttack(AttackAction{Name: "training_sword", Class: ClassMelee, MinDamage: 1, MaxDamage: 3, SpeedTicks: 4})
	if a = AttackByName("training_sword"); a.MaxDamage != 3 {
		t.Fatalf("re-registering should replace, got max %d", a.MaxDamage)
	}

	found := false
	for _, atk := range Attacks() {
		if atk.Name == "training_sword" {
			if found {
				t.Fatal("replaced attack listed twice")
			}
			found = true
		}
	}
	if !found {
		t.Fatal("registered attack missing from listing")
	}
}

func TestCatalogDefaults(t *testing.T) {
	veng := AttackByName("vengeance")
	if veng == nil || veng.Status != StatusVengeance {
		t.Fatalf("vengeance should be a status attack: %+v", veng)
	}
	claws := SpecialByName("dragon_claws")
	if claws == nil || claws.Effect != EffectCascade || claws.Hits != 4 {
		t.Fatalf("dragon_claws should cascade over 4 hits: %+v", claws)
	}
	brew := FoodByName("saradomin_brew")
	if brew == nil || !brew.StatDrain {
		t.Fatalf("saradomin_brew should drain stats: %+v", brew)
	}
	if DefaultFoodStock["shark"] == 0 {
		t.Fatal("default loadout should carry sharks")
	}
}
