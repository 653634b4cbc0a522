package storage

import (
	"strings"

	"github.com/rsduel/arena-server/internal/game"

	"gorm.io/gorm"
)

const (
	defaultRating       = 1200
	defaultAttackLevel  = 99
	defaultDefenceLevel = 99
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func normalizeClass(class string) string {
	switch game.CombatClass(strings.ToLower(strings.TrimSpace(class))) {
	case game.ClassRanged:
		return string(game.ClassRanged)
	case game.ClassMagic:
		return string(game.ClassMagic)
	default:
		return string(game.ClassMelee)
	}
}

func (r *sqliteRepository) GetOrCreateAgent(agentID, class string) (*game.AgentProfile, error) {
	var prof game.AgentProfile
	err := r.db.Where("agent_id = ?", agentID).First(&prof).Error
	if err == nil {
		return &prof, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	prof = game.AgentProfile{
		AgentID:      agentID,
		Name:         agentID,
		Class:        normalizeClass(class),
		AttackLevel:  defaultAttackLevel,
		DefenceLevel: defaultDefenceLevel,
		Rating:       defaultRating,
	}
	if err := r.db.Create(&prof).Error; err != nil {
		return nil, err
	}
	return &prof, nil
}

func (r *sqliteRepository) GetAgentByID(agentID string) (*game.AgentProfile, error) {
	var prof game.AgentProfile
	if err := r.db.Where("agent_id = ?", agentID).First(&prof).Error; err != nil {
		return nil, err
	}
	return &prof, nil
}

func (r *sqliteRepository) SaveTick(fightID string, round, tick int, payload string) error {
	rec := game.TickRecord{FightID: fightID, Round: round, Tick: tick, Payload: payload}
	return r.db.Create(&rec).Error
}

func (r *sqliteRepository) SaveFightRecord(rec *game.FightRecord) error {
	return r.db.Create(rec).Error
}

// UpdateRatingsOnFightEnd applies the standard Elo update (K=32) to both
// participants and bumps their win/loss/played counters. A drawn match
// (no winner) only counts the fight as played.
func (r *sqliteRepository) UpdateRatingsOnFightEnd(f *game.Fight) error {
	if f.Players[0] == nil || f.Players[1] == nil {
		return nil
	}
	a, err := r.GetAgentByID(f.Players[0].AgentID)
	if err != nil {
		return err
	}
	b, err := r.GetAgentByID(f.Players[1].AgentID)
	if err != nil {
		return err
	}

	a.FightsPlayed++
	b.FightsPlayed++
	if f.Winner != "" {
		scoreA := 0.0
		if f.Winner == a.AgentID {
			scoreA = 1.0
			a.Wins++
			b.Losses++
		} else {
			a.Losses++
			b.Wins++
		}
		deltaA := EloDelta(a.Rating, b.Rating, scoreA)
		deltaB := EloDelta(b.Rating, a.Rating, 1.0-scoreA)
		a.Rating += deltaA
		b.Rating += deltaB
	}

	if err := r.db.Save(a).Error; err != nil {
		return err
	}
	return r.db.Save(b).Error
}

func (r *sqliteRepository) GetTopAgents(limit int) ([]game.AgentProfile, error) {
	if limit <= 0 {
		limit = 20
	}
	var agents []game.AgentProfile
	if err := r.db.Order("rating desc").Limit(limit).Find(&agents).Error; err != nil {
		return nil, err
	}
	return agents, nil
}
