package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries every tunable of the ladder web service. The
// analytics knobs are plumbed explicitly into the services instead of
// being read from ambient process state.
type Config struct {
	ServerPort  string
	InstanceDir string
	LogLevel    string

	RedisHost     string
	RedisPort     string
	RedisPassword string

	// Analytics parameters.
	LeaderboardLimit int
	LatestGamesLimit int
	PlayerGamesLimit int
	MinDatapoints    int
	CurveWidth       int
}

// Load reads the configuration from the environment, falling back to
// a local .env file when present.
func Load() (*Config, error) {
	// Not an error: production provides real environment variables.
	godotenv.Load()

	cfg := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		InstanceDir: getEnv("INSTANCE_DIR", "instance"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}

	var err error
	if cfg.LeaderboardLimit, err = getEnvInt("LEADERBOARD_LIMIT", 100); err != nil {
		return nil, err
	}
	if cfg.LatestGamesLimit, err = getEnvInt("LATEST_GAMES_LIMIT", 50); err != nil {
		return nil, err
	}
	if cfg.PlayerGamesLimit, err = getEnvInt("PLAYER_LATEST_GAMES_LIMIT", 15); err != nil {
		return nil, err
	}
	if cfg.MinDatapoints, err = getEnvInt("RATING_MIN_DATAPOINTS", 10); err != nil {
		return nil, err
	}
	if cfg.CurveWidth, err = getEnvInt("RATING_CURVE_WIDTH", 50); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return parsed, nil
}
