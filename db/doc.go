// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Drivers

Open picks the driver from cliparse.Config.DatabaseType:

  - postgres: github.com/lib/pq
  - sqlite: modernc.org/sqlite (pure Go, also used for tests)

SQLite DSNs get foreign keys turned on so ON DELETE CASCADE works.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - question, choice
  - person
  - publication, article, article_publication
  - opinion_poll, response

# Relationships

	question 1──* choice
	article *──* publication (via article_publication)
	opinion_poll 1──* response

All foreign keys use ON DELETE CASCADE.
*/
package db
