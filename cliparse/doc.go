// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Postgres connection string or SQLite DSN (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - AdminKeySalt: Secret for admin key HMAC (required)
  - LatestLimit: Questions listed on the index page (default: 5)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-latest       Index page size
	--admin-salt  Admin key salt

# Environment Variables

The environment is read first and supplies the flag defaults:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	LATEST_LIMIT   → -latest
	ADMIN_KEY_SALT → --admin-salt

CLI flags take precedence over environment variables. main loads a .env
file into the environment before calling ParseFlags.
*/
package cliparse
