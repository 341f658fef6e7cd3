// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: PostgreSQL URL or SQLite file; empty means in-memory
  - DatabaseType: memory, sqlite or postgres (guessed from the URL)
  - JokerCatalog: balatro (default), classic, or a path to a YAML catalog
  - EnvFile: dotenv file loaded at startup (default: .env)

# CLI Flags

	-p        Server port
	-d        Database URL
	-t        Database type
	-catalog  Joker catalog
	-env      Environment file

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	JOKER_CATALOG → -catalog

The env file is read with github.com/joho/godotenv before the fallbacks
are applied. It never overrides a variable that is already set, so the
order of precedence is: flags, environment, env file, defaults. A missing
env file is ignored; pass -env "" to skip it entirely.

# Validation

ParseFlags returns an error if:

  - PORT is not a number or outside 1-65535
  - the database type is unknown
  - sqlite or postgres is selected without a URL
*/
package cliparse
