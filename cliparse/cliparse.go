package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Database types
const (
	DatabaseMemory   = "memory"
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

// DefaultCatalog is the joker catalog used when none is configured
const DefaultCatalog = "balatro"

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	JokerCatalog string // builtin catalog name or path to a YAML file
	EnvFile      string
}

// ParseFlags reads flags, then the .env file, then the environment.
// Flags win over the environment, and real environment variables win over
// the .env file.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("balatro-poker", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (memory, sqlite or postgres)")

	// Game config
	fs.StringVar(&cfg.JokerCatalog, "catalog", "", "Joker catalog (balatro, classic or a YAML file)")
	fs.StringVar(&cfg.EnvFile, "env", ".env", "Environment file to load if present")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// godotenv never overrides variables that are already set
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", cfg.EnvFile, err)
		}
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = guessDatabaseType(cfg.DatabaseURL)
	}
	cfg.DatabaseType = strings.ToLower(cfg.DatabaseType)

	switch cfg.DatabaseType {
	case DatabaseMemory:
	case DatabaseSQLite, DatabasePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("database URL required for %s (use -d or DATABASE_URL env)", cfg.DatabaseType)
		}
	default:
		return Config{}, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}

	if cfg.JokerCatalog == "" {
		cfg.JokerCatalog = os.Getenv("JOKER_CATALOG")
	}
	if cfg.JokerCatalog == "" {
		cfg.JokerCatalog = DefaultCatalog
	}

	return cfg, nil
}

func guessDatabaseType(url string) string {
	switch {
	case url == "":
		return DatabaseMemory
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DatabasePostgres
	default:
		return DatabaseSQLite
	}
}
