package storage

import (
	"github.com/rsduel/arena-server/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the SQLite database at the given path and migrates
// the agent directory, fight record and tick log tables.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.AgentProfile{}, &game.FightRecord{}, &game.TickRecord{}); err != nil {
		return nil, err
	}
	return db, nil
}
