package game

import "strings"

// The built-in action tables. These are game constants in the same way the
// combat formulas are; servers override stock counts (not stats) via config.

var attackTable = []AttackAction{
	{Name: "slash", Class: ClassMelee, MinDamage: 0, MaxDamage: 25, SpeedTicks: 4, AccuracyBonus: 80, Status: StatusNone},
	{Name: "whip", Class: ClassMelee, MinDamage: 0, MaxDamage: 23, SpeedTicks: 4, AccuracyBonus: 82, Status: StatusNone},
	{Name: "rune_crossbow", Class: ClassRanged, MinDamage: 0, MaxDamage: 22, SpeedTicks: 5, AccuracyBonus: 90, Status: StatusBoltProc, ProcChance: 0.10, ProcBonus: 8},
	{Name: "magic_shortbow", Class: ClassRanged, MinDamage: 0, MaxDamage: 20, SpeedTicks: 4, AccuracyBonus: 75, Status: StatusNone},
	{Name: "ice_barrage", Class: ClassMagic, MinDamage: 0, MaxDamage: 27, SpeedTicks: 5, AccuracyBonus: 95, Status: StatusFreeze, FreezeTicks: 8},
	{Name: "blood_barrage", Class: ClassMagic, MinDamage: 0, MaxDamage: 26, SpeedTicks: 5, AccuracyBonus: 95, Status: StatusHeal, HealFraction: 0.25},
	{Name: "entangle", Class: ClassMagic, MinDamage: 0, MaxDamage: 4, SpeedTicks: 5, AccuracyBonus: 70, Status: StatusBind, FreezeTicks: 5},
	{Name: "teleblock", Class: ClassMagic, MinDamage: 0, MaxDamage: 0, SpeedTicks: 5, AccuracyBonus: 60, Status: StatusTeleblock},
	{Name: "vengeance", Class: ClassMagic, MinDamage: 0, MaxDamage: 0, SpeedTicks: 5, AccuracyBonus: 0, Status: StatusVengeance},
}

var specialTable = []SpecialAction{
	{Name: "dragon_dagger", Class: ClassMelee, EnergyCost: 25, MinDamage: 0, MaxDamage: 16, Hits: 2, Effect: EffectNone},
	{Name: "dragon_claws", Class: ClassMelee, EnergyCost: 50, MinDamage: 1, MaxDamage: 15, Hits: 4, Effect: EffectCascade},
	{Name: "armadyl_godsword", Class: ClassMelee, EnergyCost: 50, MinDamage: 0, MaxDamage: 35, Hits: 1, Effect: EffectGuaranteedMin, MinimumHit: 8},
	{Name: "saradomin_godsword", Class: ClassMelee, EnergyCost: 50, MinDamage: 0, MaxDamage: 30, Hits: 1, Effect: EffectHealRestore, HealFraction: 0.5, PrayerRestore: 0.25},
	{Name: "ancient_mace", Class: ClassMelee, EnergyCost: 100, MinDamage: 0, MaxDamage: 26, Hits: 1, Effect: EffectPrayerPunish},
	{Name: "dragon_warhammer", Class: ClassMelee, EnergyCost: 50, MinDamage: 0, MaxDamage: 28, Hits: 1, Effect: EffectIgnoreDefense},
	{Name: "dark_bow", Class: ClassRanged, EnergyCost: 55, MinDamage: 0, MaxDamage: 24, Hits: 2, Effect: EffectGuaranteedMin, MinimumHit: 5},
	{Name: "dragon_bolts", Class: ClassRanged, EnergyCost: 40, MinDamage: 0, MaxDamage: 25, Hits: 1, Effect: EffectPoisonChance, PoisonChance: 0.35},
}

var foodTable = []FoodAction{
	{Name: "shark", Heal: 20},
	{Name: "manta_ray", Heal: 22},
	{Name: "anglerfish", Heal: 22},
	{Name: "karambwan", Heal: 18, EatDelay: 2},
	{Name: "saradomin_brew", Heal: 16, StatDrain: true},
}

// DefaultFoodStock is the per-round stock a fresh PlayerState starts with.
// Overridable via server config.
var DefaultFoodStock = map[string]int{
	"shark":          10,
	"manta_ray":      5,
	"anglerfish":     5,
	"karambwan":      6,
	"saradomin_brew": 4,
}

var (
	attacksByName  map[string]*AttackAction
	specialsByName map[string]*SpecialAction
	foodByName     map[string]*FoodAction
)

func init() {
	attacksByName = make(map[string]*AttackAction, len(attackTable))
	for i := range attackTable {
		attacksByName[attackTable[i].Name] = &attackTable[i]
	}
	specialsByName = make(map[string]*SpecialAction, len(specialTable))
	for i := range specialTable {
		specialsByName[specialTable[i].Name] = &specialTable[i]
	}
	foodByName = make(map[string]*FoodAction, len(foodTable))
	for i := range foodTable {
		foodByName[foodTable[i].Name] = &foodTable[i]
	}
}

// RegisterAttack adds or replaces an attack definition. Server config uses
// this to extend the built-in tables.
func RegisterAttack(a AttackAction) {
	a.Name = normalizeActionName(a.Name)
	if existing, ok := attacksByName[a.Name]; ok {
		*existing = a
		return
	}
	// append can reallocate the table, so re-point every map entry.
	attackTable = append(attackTable, a)
	for i := range attackTable {
		attacksByName[attackTable[i].Name] = &attackTable[i]
	}
}

// RegisterSpecial adds or replaces a special attack definition.
func RegisterSpecial(s SpecialAction) {
	s.Name = normalizeActionName(s.Name)
	if existing, ok := specialsByName[s.Name]; ok {
		*existing = s
		return
	}
	specialTable = append(specialTable, s)
	for i := range specialTable {
		specialsByName[specialTable[i].Name] = &specialTable[i]
	}
}

// RegisterFood adds or replaces a food definition.
func RegisterFood(f FoodAction) {
	f.Name = normalizeActionName(f.Name)
	if existing, ok := foodByName[f.Name]; ok {
		*existing = f
		return
	}
	foodTable = append(foodTable, f)
	for i := range foodTable {
		foodByName[foodTable[i].Name] = &foodTable[i]
	}
}

// AttackByName returns the attack definition for name, or nil. Lookup is
// case-insensitive; "" and "none" mean no attack.
func AttackByName(name string) *AttackAction {
	return attacksByName[normalizeActionName(name)]
}

// SpecialByName returns the special definition for name, or nil.
func SpecialByName(name string) *SpecialAction {
	return specialsByName[normalizeActionName(name)]
}

// FoodByName returns the food definition for name, or nil.
func FoodByName(name string) *FoodAction {
	return foodByName[normalizeActionName(name)]
}

// Attacks returns the full attack table (for listing endpoints).
func Attacks() []AttackAction { return attackTable }

// Specials returns the full special table.
func Specials() []SpecialAction { return specialTable }

// Foods returns the full food table.
func Foods() []FoodAction { return foodTable }

func normalizeActionName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
