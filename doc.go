// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the polls server.

The server publishes questions with multiple choice answers, counts votes,
and keeps a few related records: opinion polls with free text responses,
publications with their articles, and people.

# Starting the Server

Configuration comes from CLI flags, then environment variables, then an
optional .env file:

	DATABASE_URL=polls.db ADMIN_KEY_SALT=secret go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -admin-salt secret

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file/DSN or PostgreSQL connection string
  - ADMIN_KEY_SALT (-admin-salt): Secret for admin key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - LATEST_LIMIT (-latest): Questions on the index page (default: 5)

# Architecture

  - handlers: HTTP request handlers (questions, opinion polls, publications, people)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, request logging, JSON helpers
  - store: Queries per entity
  - views: Embedded HTML templates
  - models: Entities and request/response types
  - auth: Admin key generation and validation
  - db: Connection and schema creation
  - cliparse: Configuration parsing

SIGINT and SIGTERM shut the server down gracefully.
*/
package main
