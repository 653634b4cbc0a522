package game

import (
	"time"

	"gorm.io/gorm"
)

// FightStatus is the lifecycle state of a Fight.
type FightStatus string

const (
	StatusInProgress FightStatus = "in_progress"
	StatusRoundOver  FightStatus = "round_over"
	StatusFightOver  FightStatus = "fight_over"
)

const (
	// MaxHitPoints and MaxPrayer are the per-round resource caps.
	MaxHitPoints = 99
	MaxPrayer    = 99
	// MaxSpecialEnergy is the special-energy pool cap.
	MaxSpecialEnergy = 100
	// SpecialRegenPerTick is restored to both parties at end of tick.
	SpecialRegenPerTick = 10
	// PoisonDamagePerTick is the fixed damage-over-time while poisoned.
	PoisonDamagePerTick = 3
	// RoundsToWinMatch: best-of-3.
	RoundsToWinMatch = 2
)

// PlayerState is one party's full combat state. It is exclusively owned by
// its Fight and mutated only inside tick resolution (and round reset).
type PlayerState struct {
	AgentID      string      `json:"agent_id"`
	Class        CombatClass `json:"class"`
	AttackLevel  int         `json:"attack_level"`
	DefenceLevel int         `json:"defence_level"`

	HitPoints     int `json:"hit_points"`
	PrayerPoints  int `json:"prayer_points"`
	SpecialEnergy int `json:"special_energy"`

	Food map[string]int `json:"food"`

	ActivePrayer   PrayerAction `json:"active_prayer"`
	FrozenTicks    int          `json:"frozen_ticks"`
	Teleblocked    bool         `json:"teleblocked"`
	Poisoned       bool         `json:"poisoned"`
	VengeanceArmed bool         `json:"vengeance_armed"`
	AttackDelay    int          `json:"attack_delay"`

	LastAttack  string `json:"last_attack"`
	LastSpecial string `json:"last_special"`
}

// NewPlayerState builds a fresh state for an agent: full hp/prayer/special,
// default food stock, every status flag clear.
func NewPlayerState(agentID string, class CombatClass, attackLevel, defenceLevel int, stock map[string]int) *PlayerState {
	if stock == nil {
		stock = DefaultFoodStock
	}
	food := make(map[string]int, len(stock))
	for name, n := range stock {
		food[name] = n
	}
	return &PlayerState{
		AgentID:       agentID,
		Class:         class,
		AttackLevel:   attackLevel,
		DefenceLevel:  defenceLevel,
		HitPoints:     MaxHitPoints,
		PrayerPoints:  MaxPrayer,
		SpecialEnergy: MaxSpecialEnergy,
		Food:          food,
		ActivePrayer:  PrayerNone,
	}
}

// TickResult is the immutable record of one resolved tick.
type TickResult struct {
	Round       int       `json:"round"`
	Tick        int       `json:"tick"`
	Actions     [2]string `json:"actions"`
	DamageDealt [2]int    `json:"damage_dealt"`
	Healed      [2]int    `json:"healed"`
	Narrative   string    `json:"narrative"`

	RoundOver   bool   `json:"round_over"`
	FightOver   bool   `json:"fight_over"`
	RoundWinner string `json:"round_winner,omitempty"`
	Winner      string `json:"winner,omitempty"`
}

// Fight holds everything about one live duel. It is owned by the registry;
// all mutation happens inside registry-serialized handler invocations.
type Fight struct {
	ID      string `json:"id"`
	Arena   string `json:"arena"`
	Wager   int64  `json:"wager"`
	Round   int    `json:"round"`
	Tick    int    `json:"tick"`
	TickCap int    `json:"tick_cap"`

	TickWindow time.Duration `json:"-"`
	NextTickAt time.Time     `json:"next_tick_at"`

	Status  FightStatus    `json:"status"`
	Players [2]*PlayerState `json:"players"`

	RoundsWon [2]int `json:"rounds_won"`
	Winner    string `json:"winner,omitempty"`

	LastResult *TickResult   `json:"last_result,omitempty"`
	History    []*TickResult `json:"-"`

	Pending [2]*ActionSubmission `json:"-"`

	RatingsApplied bool      `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// ParticipantIndex returns 0 or 1 for a participating agent, -1 otherwise.
func (f *Fight) ParticipantIndex(agentID string) int {
	for i := range f.Players {
		if f.Players[i] != nil && f.Players[i].AgentID == agentID {
			return i
		}
	}
	return -1
}

// BothSubmitted reports whether both pending-action slots are filled.
func (f *Fight) BothSubmitted() bool {
	return f.Pending[0] != nil && f.Pending[1] != nil
}

// AgentProfile is the persisted identity/rating row for an agent. It seeds
// PlayerStates at fight creation and receives Elo updates at fight end.
type AgentProfile struct {
	gorm.Model
	AgentID      string `json:"agent_id" gorm:"uniqueIndex"`
	Name         string `json:"name"`
	Class        string `json:"class"`
	AttackLevel  int    `json:"attack_level"`
	DefenceLevel int    `json:"defence_level"`
	Rating       int    `json:"rating"`
	FightsPlayed int    `json:"fights_played"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

func (AgentProfile) TableName() string { return "agent_profiles" }

// FightRecord is the persisted summary of a finished fight.
type FightRecord struct {
	gorm.Model
	FightID    string `json:"fight_id" gorm:"uniqueIndex"`
	Arena      string `json:"arena"`
	Wager      int64  `json:"wager"`
	AgentA     string `json:"agent_a"`
	AgentB     string `json:"agent_b"`
	RoundsWonA int    `json:"rounds_won_a"`
	RoundsWonB int    `json:"rounds_won_b"`
	Winner     string `json:"winner"`
}

func (FightRecord) TableName() string { return "fight_records" }

// TickRecord is the persisted payload of one resolved tick (append-only).
type TickRecord struct {
	gorm.Model
	FightID string `gorm:"index"`
	Round   int
	Tick    int
	Payload string `gorm:"type:text"`
}

func (TickRecord) TableName() string { return "tick_log" }
