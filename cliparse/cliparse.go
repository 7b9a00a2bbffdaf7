// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Database types
const (
	DatabaseMemory    = "memory"
	DatabaseSQLite    = "sqlite"
	DatabasePostgres  = "postgres"
	DatabaseFirestore = "firestore"
)

// Poll modes
const (
	PollModeLedger  = "ledger"
	PollModeCounter = "counter"
)

const (
	defaultPort      = 3318
	defaultSQLiteURL = "aipartner.db"
	defaultEnv       = "local"
)

type Config struct {
	Port             int
	DatabaseURL      string
	DatabaseType     string
	FirestoreProject string
	PollMode         string
	Env              string
	AllowedOrigins   []string
	ConfigFile       string
}

// fileConfig mirrors the optional YAML config file
type fileConfig struct {
	Port     int    `yaml:"port"`
	Env      string `yaml:"env"`
	Database struct {
		Type             string `yaml:"type"`
		URL              string `yaml:"url"`
		FirestoreProject string `yaml:"firestore_project"`
	} `yaml:"database"`
	Poll struct {
		Mode string `yaml:"mode"`
	} `yaml:"poll"`
	CORS struct {
		Origins []string `yaml:"origins"`
	} `yaml:"cors"`
}

// ParseFlags builds the Config from flags, then environment (including a
// .env file), then the YAML config file, then defaults.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var origins string

	fs := flag.NewFlagSet("ai-partner", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or sqlite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (memory, sqlite, postgres, firestore)")
	fs.StringVar(&cfg.FirestoreProject, "firestore-project", "", "Google Cloud project for firestore")
	fs.StringVar(&cfg.PollMode, "mode", "", "Poll mode (ledger or counter)")
	fs.StringVar(&cfg.Env, "env", "", "Environment (local logs text, anything else logs JSON)")
	fs.StringVar(&origins, "origins", "", "Comma separated CORS origins")
	fs.StringVar(&cfg.ConfigFile, "c", "", "YAML config file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		}
	}
	fillString(&cfg.DatabaseURL, os.Getenv("DATABASE_URL"))
	fillString(&cfg.DatabaseType, os.Getenv("DATABASE_TYPE"))
	fillString(&cfg.FirestoreProject, os.Getenv("FIRESTORE_PROJECT"))
	fillString(&cfg.PollMode, os.Getenv("POLL_MODE"))
	fillString(&cfg.Env, os.Getenv("APP_ENV"))
	fillString(&origins, os.Getenv("CORS_ORIGINS"))
	fillString(&cfg.ConfigFile, os.Getenv("CONFIG_FILE"))

	if origins != "" {
		cfg.AllowedOrigins = splitList(origins)
	}

	// Then the config file
	if cfg.ConfigFile != "" {
		fc, err := readConfigFile(cfg.ConfigFile)
		if err != nil {
			return Config{}, err
		}
		if cfg.Port == 0 {
			cfg.Port = fc.Port
		}
		fillString(&cfg.DatabaseURL, fc.Database.URL)
		fillString(&cfg.DatabaseType, fc.Database.Type)
		fillString(&cfg.FirestoreProject, fc.Database.FirestoreProject)
		fillString(&cfg.PollMode, fc.Poll.Mode)
		fillString(&cfg.Env, fc.Env)
		if len(cfg.AllowedOrigins) == 0 {
			cfg.AllowedOrigins = fc.CORS.Origins
		}
	}

	// Defaults
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	fillString(&cfg.DatabaseType, DatabaseSQLite)
	fillString(&cfg.PollMode, PollModeLedger)
	fillString(&cfg.Env, defaultEnv)
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("port %d out of range", cfg.Port)
	}

	switch cfg.DatabaseType {
	case DatabaseMemory:
	case DatabaseSQLite:
		fillString(&cfg.DatabaseURL, defaultSQLiteURL)
	case DatabasePostgres:
		if cfg.DatabaseURL == "" {
			return errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	case DatabaseFirestore:
		if cfg.FirestoreProject == "" {
			return errors.New("FIRESTORE_PROJECT required for firestore")
		}
	default:
		return fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}

	switch cfg.PollMode {
	case PollModeLedger, PollModeCounter:
	default:
		return fmt.Errorf("unknown poll mode %q", cfg.PollMode)
	}

	return nil
}

// loadDotEnv reads .env from the working directory if there is one.
// Existing environment variables win over the file.
func loadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

func readConfigFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return fc, nil
}

func fillString(dst *string, fallback string) {
	if *dst == "" {
		*dst = fallback
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
