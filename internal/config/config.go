package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/rsduel/arena-server/internal/constants"
	"github.com/rsduel/arena-server/internal/game"
)

// rawConfig is the JSON shape of arena_config.json. Every key is optional;
// the combat tables themselves are built in, so the file only tunes server
// and pacing settings plus per-round food stock.
type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	DBPath          string         `json:"db_path"`
	TickWindowMS    int            `json:"tick_window_ms"`
	ActionTimeoutMS int            `json:"action_timeout_ms"`
	RoundTickCap    int            `json:"round_tick_cap"`
	FoodStock       map[string]int `json:"food_stock"`

	// Optional extension tables merged into the built-in catalog.
	ExtraAttacks  []game.AttackAction  `json:"extra_attacks"`
	ExtraSpecials []game.SpecialAction `json:"extra_specials"`
	ExtraFood     []game.FoodAction    `json:"extra_food"`
}

// envOverrides are applied on top of the file, matching the precedence the
// deployment scripts expect: env beats file beats defaults.
type envOverrides struct {
	ConfigPath string `env:"ARENA_CONFIG"`
	Address    string `env:"ARENA_ADDR"`
	DBPath     string `env:"ARENA_DB"`
}

// Config is the fully-resolved server configuration.
type Config struct {
	ServerAddress string
	DBPath        string
	TickWindow    time.Duration
	ActionTimeout time.Duration
	RoundTickCap  int
	FoodStock     map[string]int
}

func defaults() *Config {
	return &Config{
		ServerAddress: constants.DefaultAddress,
		DBPath:        constants.DefaultDBPath,
		TickWindow:    600 * time.Millisecond,
		ActionTimeout: 1600 * time.Millisecond,
		RoundTickCap:  100,
		FoodStock:     game.DefaultFoodStock,
	}
}

// Load resolves the configuration: built-in defaults, then the JSON file
// (when present), then environment overrides. A missing file at the default
// path is fine; an explicitly-configured path that cannot be read is not.
func Load() (*Config, error) {
	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	path := ov.ConfigPath
	explicit := path != ""
	if !explicit {
		path = constants.DefaultConfigPath
	}

	cfg := defaults()
	b, err := os.ReadFile(path)
	if err != nil {
		if explicit || !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		var rc rawConfig
		if err := json.Unmarshal(b, &rc); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		applyFile(cfg, &rc)
	}

	if ov.Address != "" {
		cfg.ServerAddress = ov.Address
	}
	if ov.DBPath != "" {
		cfg.DBPath = ov.DBPath
	}
	return cfg, nil
}

func applyFile(cfg *Config, rc *rawConfig) {
	if rc.Server != nil && rc.Server.Address != "" {
		cfg.ServerAddress = rc.Server.Address
	}
	if rc.DBPath != "" {
		cfg.DBPath = rc.DBPath
	}
	if rc.TickWindowMS > 0 {
		cfg.TickWindow = time.Duration(rc.TickWindowMS) * time.Millisecond
	}
	if rc.ActionTimeoutMS > 0 {
		cfg.ActionTimeout = time.Duration(rc.ActionTimeoutMS) * time.Millisecond
	}
	if rc.RoundTickCap > 0 {
		cfg.RoundTickCap = rc.RoundTickCap
	}
	if len(rc.FoodStock) > 0 {
		cfg.FoodStock = rc.FoodStock
	}
	for _, a := range rc.ExtraAttacks {
		game.RegisterAttack(a)
	}
	for _, s := range rc.ExtraSpecials {
		game.RegisterSpecial(s)
	}
	for _, f := range rc.ExtraFood {
		game.RegisterFood(f)
	}
}
