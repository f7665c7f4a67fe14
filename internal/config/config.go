// Package config loads runtime settings from the environment (optionally
// seeded from a .env file) and an optional YAML file that overrides them.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordscramble/internal/game"
)

// EnvConfigFile names the environment variable holding the YAML file path.
const EnvConfigFile = "WORDSCRAMBLE_CONFIG"

// Config holds every tunable the hosts need.
type Config struct {
	Port     string `yaml:"port"`
	LogLevel string `yaml:"log_level"`

	// StartWordsFile overrides the bundled root-word list when set.
	StartWordsFile string `yaml:"start_words_file"`
	// DictionaryDB selects the sqlite dictionary; empty uses the bundled list.
	DictionaryDB string `yaml:"dictionary_db"`

	Rules game.Rules `yaml:"rules"`

	SessionSecret string        `yaml:"session_secret"`
	SessionTTL    time.Duration `yaml:"session_ttl"`
	DailySalt     string        `yaml:"daily_salt"`
	ClientOrigin  string        `yaml:"client_origin"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Port:          "5175",
		LogLevel:      "info",
		Rules:         game.DefaultRules(),
		SessionSecret: "dev_secret_change_me",
		SessionTTL:    24 * time.Hour,
		DailySalt:     "local_dev_salt",
		ClientOrigin:  "http://localhost:5173",
	}
}

// Load reads .env (if present), the environment, then the YAML file named
// by path or, when path is empty, by WORDSCRAMBLE_CONFIG.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg, err := FromEnv()
	if err != nil {
		return Config{}, err
	}
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		return cfg, nil
	}
	if err := cfg.overlayFile(path); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv applies environment variables on top of Default.
func FromEnv() (Config, error) {
	cfg := Default()
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.StartWordsFile = getEnv("WORDS_START_FILE", cfg.StartWordsFile)
	cfg.DictionaryDB = getEnv("DICTIONARY_DB", cfg.DictionaryDB)
	cfg.Rules.Language = getEnv("DICTIONARY_LANG", cfg.Rules.Language)
	cfg.SessionSecret = getEnv("SESSION_SECRET", cfg.SessionSecret)
	cfg.DailySalt = getEnv("DAILY_SALT", cfg.DailySalt)
	cfg.ClientOrigin = getEnv("CLIENT_ORIGIN", cfg.ClientOrigin)

	var err error
	if cfg.Rules.MinLength, err = envInt("MIN_WORD_LENGTH", cfg.Rules.MinLength); err != nil {
		return Config{}, err
	}
	if cfg.Rules.RejectRoot, err = envBool("REJECT_ROOT", cfg.Rules.RejectRoot); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL, err = envDuration("SESSION_TTL", cfg.SessionTTL); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) overlayFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}

func envBool(k string, def bool) (bool, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", k, err)
	}
	return b, nil
}

func envDuration(k string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return d, nil
}
