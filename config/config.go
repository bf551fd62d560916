/* config.go
 * Contains the application configuration. Values come from the environment, optionally seeded from a .env file,
 * with defaults for everything except the discord token
 */

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"sumo-data/api/store"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// ServerConfig holds web server configuration
type ServerConfig struct {
	Addr        string
	CORSOrigins []string
}

// RefreshConfig holds the refresh timings
type RefreshConfig struct {
	Interval       time.Duration
	ManualCooldown time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  logrus.Level
	Format string
}

// DiscordConfig holds discord bot configuration
type DiscordConfig struct {
	Enabled bool
	Token   string
}

// Config holds all application configuration
type Config struct {
	Server     ServerConfig
	Tournament store.Tournament
	Refresh    RefreshConfig
	// Seed for generated data, zero seeds from the clock
	Seed    int64
	Log     LogConfig
	Discord DiscordConfig
}

// Function to load the configuration from the given .env files and the environment. Missing files are skipped, and
// variables already set in the environment win over the files
// Preconditions: Receives zero or more .env file paths, none loads ".env"
// Postconditions: Returns the Config, or an error if a file cannot be parsed or a value is invalid
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading %s: %w", file, err)
		}
	}
	return LoadConfig()
}

// Function to load the configuration from environment variables only
// Preconditions: None
// Postconditions: Returns the Config, or an error naming the first invalid value
func LoadConfig() (*Config, error) {
	interval, err := getDuration("REFRESH_INTERVAL", 60*time.Second)
	if err != nil {
		return nil, err
	}
	cooldown, err := getDuration("MANUAL_REFRESH_COOLDOWN", 5*time.Second)
	if err != nil {
		return nil, err
	}
	seed, err := strconv.ParseInt(getEnv("RANDOM_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RANDOM_SEED: %w", err)
	}
	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	discordEnabled, err := ConvertStrToBool(getEnv("DISCORD_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid DISCORD_ENABLED: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Addr:        getEnv("SERVER_ADDR", ":8080"),
			CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
		},
		Tournament: store.Tournament{
			Name:      getEnv("TOURNAMENT_NAME", store.DefaultTournament.Name),
			Location:  getEnv("TOURNAMENT_LOCATION", store.DefaultTournament.Location),
			StartDate: getEnv("TOURNAMENT_START", store.DefaultTournament.StartDate),
			EndDate:   getEnv("TOURNAMENT_END", store.DefaultTournament.EndDate),
		},
		Refresh: RefreshConfig{
			Interval:       interval,
			ManualCooldown: cooldown,
		},
		Seed: seed,
		Log: LogConfig{
			Level:  level,
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
		Discord: DiscordConfig{
			Enabled: discordEnabled,
			Token:   os.Getenv("DISCORD_TOKEN"),
		},
	}

	if cfg.Discord.Enabled && cfg.Discord.Token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required when DISCORD_ENABLED is true")
	}
	return cfg, nil
}

// NewLogger builds a logrus logger writing to out with the configured level and format
func (c *Config) NewLogger(out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(c.Log.Level)
	if c.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

// ConvertStrToBool converts a string of true or false into a boolean for comparisons
// Preconditions: Receives string containing either true or false (case insensitive)
// Postconditions: Returns boolean value or an error if the string is not true or false
func ConvertStrToBool(str string) (bool, error) {
	str = strings.TrimSpace(str)
	str = strings.ToLower(str)

	if str == "true" {
		return true, nil
	} else if str == "false" {
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean string")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration accepts Go durations ("90s") or a plain number of seconds
func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	var d time.Duration
	if secs, err := strconv.Atoi(value); err == nil {
		d = time.Duration(secs) * time.Second
	} else if d, err = time.ParseDuration(value); err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", key)
	}
	return d, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
