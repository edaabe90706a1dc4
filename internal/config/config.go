package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config describes all runtime settings for the game.
//
// Loaded once in main, validated, then passed further via DI.
type Config struct {
	Env string // dev|prod

	Log struct {
		Format string // text|json
		Level  string // debug|info|warn|error
	}

	Random struct {
		Seed int64 // 0 => seeded from the clock
	}

	Game struct {
		MaxDraws int // cap on random draws per secret, 0 => unlimited
	}
}

func LoadFromEnv() (Config, error) {
	var c Config

	c.Env = envString("APP_ENV", "dev")
	c.Log.Format = envString("LOG_FORMAT", "text")
	c.Log.Level = strings.ToLower(envString("LOG_LEVEL", "warn"))

	c.Random.Seed = envInt64("RANDOM_SEED", 0)
	c.Game.MaxDraws = envInt("GAME_MAX_DRAWS", 0)

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Env == "" {
		return errors.New("APP_ENV is empty")
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("unsupported LOG_FORMAT=%q (want text|json)", c.Log.Format)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported LOG_LEVEL=%q (want debug|info|warn|error)", c.Log.Level)
	}
	if c.Game.MaxDraws < 0 {
		return fmt.Errorf("GAME_MAX_DRAWS must be >= 0, got %d", c.Game.MaxDraws)
	}
	if c.Env != "dev" && c.Random.Seed != 0 {
		return fmt.Errorf("refuse to run with fixed RANDOM_SEED in %s", c.Env)
	}
	return nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return n
		}
	}
	return def
}
