package game

import "strings"

// CombatClass identifies one corner of the combat triangle.
type CombatClass string

const (
	ClassMelee  CombatClass = "melee"
	ClassRanged CombatClass = "ranged"
	ClassMagic  CombatClass = "magic"
)

// Beats reports whether class a dominates class b in the cyclic relation
// (melee beats ranged, ranged beats magic, magic beats melee).
func (a CombatClass) Beats(b CombatClass) bool {
	switch a {
	case ClassMelee:
		return b == ClassRanged
	case ClassRanged:
		return b == ClassMagic
	case ClassMagic:
		return b == ClassMelee
	}
	return false
}

// AttackStatus tags the side effect an attack carries on a successful hit.
type AttackStatus string

const (
	StatusNone      AttackStatus = "none"
	StatusFreeze    AttackStatus = "freeze"
	StatusBind      AttackStatus = "bind"
	StatusHeal      AttackStatus = "heal"
	StatusTeleblock AttackStatus = "teleblock"
	StatusVengeance AttackStatus = "vengeance"
	StatusBoltProc  AttackStatus = "bolt_proc"
)

// AttackAction describes a normal (non-special) attack.
type AttackAction struct {
	Name          string       `json:"name"`
	Class         CombatClass  `json:"class"`
	MinDamage     int          `json:"min_damage"`
	MaxDamage     int          `json:"max_damage"`
	SpeedTicks    int          `json:"speed_ticks"`
	AccuracyBonus int          `json:"accuracy_bonus"`
	Status        AttackStatus `json:"status"`

	// Status parameters; meaningful only for the matching Status tag.
	FreezeTicks  int     `json:"freeze_ticks,omitempty"`
	HealFraction float64 `json:"heal_fraction,omitempty"`
	ProcChance   float64 `json:"proc_chance,omitempty"`
	ProcBonus    int     `json:"proc_bonus,omitempty"`
}

// SpecialEffect tags the post-processing a special attack applies.
type SpecialEffect string

const (
	EffectNone          SpecialEffect = "none"
	EffectCascade       SpecialEffect = "cascade"
	EffectGuaranteedMin SpecialEffect = "guaranteed_min"
	EffectPoisonChance  SpecialEffect = "poison_chance"
	EffectHealRestore   SpecialEffect = "heal_restore"
	EffectIgnoreDefense SpecialEffect = "ignore_defense"
	EffectPrayerPunish  SpecialEffect = "prayer_punish"
)

// SpecialAction describes an energy-gated special attack.
type SpecialAction struct {
	Name       string        `json:"name"`
	Class      CombatClass   `json:"class"`
	EnergyCost int           `json:"energy_cost"`
	MinDamage  int           `json:"min_damage"`
	MaxDamage  int           `json:"max_damage"`
	Hits       int           `json:"hits"`
	Effect     SpecialEffect `json:"effect"`

	// Effect parameters.
	MinimumHit    int     `json:"minimum_hit,omitempty"`
	PoisonChance  float64 `json:"poison_chance,omitempty"`
	HealFraction  float64 `json:"heal_fraction,omitempty"`
	PrayerRestore float64 `json:"prayer_restore,omitempty"`
}

// PrayerAction is a prayer stance held for the duration of a tick.
type PrayerAction string

const (
	PrayerNone          PrayerAction = "none"
	PrayerProtectMelee  PrayerAction = "protect_melee"
	PrayerProtectRanged PrayerAction = "protect_ranged"
	PrayerProtectMagic  PrayerAction = "protect_magic"
	PrayerSmite         PrayerAction = "smite"
	PrayerPiety         PrayerAction = "piety"
	PrayerRigour        PrayerAction = "rigour"
	PrayerAugury        PrayerAction = "augury"
)

// legacyPrayerAliases maps the prayer names older clients still send to
// their canonical protect_* form.
var legacyPrayerAliases = map[string]PrayerAction{
	"melee":               PrayerProtectMelee,
	"protect from melee":  PrayerProtectMelee,
	"protect_from_melee":  PrayerProtectMelee,
	"range":               PrayerProtectRanged,
	"ranged":              PrayerProtectRanged,
	"protect from range":  PrayerProtectRanged,
	"protect_from_range":  PrayerProtectRanged,
	"mage":                PrayerProtectMagic,
	"magic":               PrayerProtectMagic,
	"protect from magic":  PrayerProtectMagic,
	"protect_from_magic":  PrayerProtectMagic,
}

// NormalizePrayer resolves legacy aliases and unknown values at the intake
// boundary. Unknown names degrade to none rather than being rejected.
func NormalizePrayer(s string) PrayerAction {
	n := strings.ToLower(strings.TrimSpace(s))
	if n == "" {
		return PrayerNone
	}
	if p, ok := legacyPrayerAliases[n]; ok {
		return p
	}
	switch PrayerAction(n) {
	case PrayerProtectMelee, PrayerProtectRanged, PrayerProtectMagic,
		PrayerSmite, PrayerPiety, PrayerRigour, PrayerAugury:
		return PrayerAction(n)
	}
	return PrayerNone
}

// IsProtect reports whether p is one of the protect_* stances.
func (p PrayerAction) IsProtect() bool {
	return p == PrayerProtectMelee || p == PrayerProtectRanged || p == PrayerProtectMagic
}

// ProtectsAgainst reports whether p blocks the given attack class.
func (p PrayerAction) ProtectsAgainst(c CombatClass) bool {
	switch p {
	case PrayerProtectMelee:
		return c == ClassMelee
	case PrayerProtectRanged:
		return c == ClassRanged
	case PrayerProtectMagic:
		return c == ClassMagic
	}
	return false
}

// OffensiveClass returns the combat class an offensive prayer boosts, or ""
// when p is not an offensive prayer.
func (p PrayerAction) OffensiveClass() CombatClass {
	switch p {
	case PrayerPiety:
		return ClassMelee
	case PrayerRigour:
		return ClassRanged
	case PrayerAugury:
		return ClassMagic
	}
	return ""
}

// DrainCost is the fixed prayer-point cost of holding p for one tick.
func (p PrayerAction) DrainCost() int {
	switch {
	case p.IsProtect():
		return 4
	case p == PrayerSmite:
		return 6
	case p.OffensiveClass() != "":
		return 5
	}
	return 0
}

// FoodAction describes an edible item with finite per-player stock.
type FoodAction struct {
	Name      string `json:"name"`
	Heal      int    `json:"heal"`
	EatDelay  int    `json:"eat_delay,omitempty"`
	StatDrain bool   `json:"stat_drain,omitempty"`
}

// Movement choices are tactical flags, not coordinates.
const (
	MoveNone      = ""
	MoveStepUnder = "step_under"
)

// ActionSubmission is one party's choice set for the current tick. Missing
// fields mean "none"/idle. It exists only until consumed by resolution.
type ActionSubmission struct {
	AgentID  string `json:"agent_id"`
	FightID  string `json:"fight_id"`
	Attack   string `json:"attack,omitempty"`
	Special  string `json:"special,omitempty"`
	Prayer   string `json:"prayer,omitempty"`
	Food     string `json:"food,omitempty"`
	Movement string `json:"movement,omitempty"`
}

// IdleSubmission is what a timed-out party is deemed to have submitted.
func IdleSubmission(fightID, agentID string) *ActionSubmission {
	return &ActionSubmission{AgentID: agentID, FightID: fightID}
}
