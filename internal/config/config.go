package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
	Smogon  SmogonConfig
	Sheets  SheetsConfig
	Replay  ReplayConfig
	DB      DBConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SmogonConfig holds the set catalog endpoint configuration
type SmogonConfig struct {
	BaseURL  string
	Username string
	Password string
}

// SheetsConfig holds Google Sheets configuration
type SheetsConfig struct {
	// CredentialsFile is the path to a service account JSON key
	CredentialsFile string
}

// ReplayConfig holds the replay host configuration
type ReplayConfig struct {
	Host string
}

// DBConfig holds the connection string used by the maintenance task
type DBConfig struct {
	URL string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Discord: DiscordConfig{
			Token:   os.Getenv("DISCORD_TOKEN"),
			AppID:   os.Getenv("DISCORD_APP_ID"),
			GuildID: os.Getenv("DISCORD_GUILD_ID"),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Smogon: SmogonConfig{
			BaseURL:  getEnvOrDefault("SMOGON_STATS_URL", "https://smogon-usage-stats.herokuapp.com"),
			Username: os.Getenv("SMOGON_STATS_USERNAME"),
			Password: os.Getenv("SMOGON_STATS_PASSWORD"),
		},
		Sheets: SheetsConfig{
			CredentialsFile: os.Getenv("GOOGLE_CREDENTIALS"),
		},
		Replay: ReplayConfig{
			Host: getEnvOrDefault("REPLAY_HOST", "replay.pokemonshowdown.com"),
		},
		DB: DBConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
	}

	// Validate required fields
	if cfg.Discord.Token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.Discord.AppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
