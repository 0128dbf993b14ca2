// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/danielhkuo/polls/cliparse"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	var r *strings.Replacer
	switch dbType {
	case cliparse.DatabasePostgres:
		r = strings.NewReplacer("{{pk}}", "BIGSERIAL PRIMARY KEY", "{{ref}}", "BIGINT", "{{timestamp}}", "TIMESTAMPTZ")
	case cliparse.DatabaseSQLite:
		r = strings.NewReplacer("{{pk}}", "INTEGER PRIMARY KEY AUTOINCREMENT", "{{ref}}", "INTEGER", "{{timestamp}}", "TIMESTAMP")
	default:
		return fmt.Errorf("failed to create schema: unsupported database type %q", dbType)
	}

	_, err := db.Exec(r.Replace(schema))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Tables lists every table in foreign-key order, parents first.
var Tables = []string{
	"question",
	"choice",
	"person",
	"publication",
	"article",
	"article_publication",
	"opinion_poll",
	"response",
}

const schema = `
-- Questions
CREATE TABLE IF NOT EXISTS question (
    id {{pk}},
    question_text VARCHAR(200) NOT NULL,
    pub_date {{timestamp}} NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_question_pub_date ON question(pub_date);

-- Choices
CREATE TABLE IF NOT EXISTS choice (
    id {{pk}},
    question_id {{ref}} NOT NULL REFERENCES question(id) ON DELETE CASCADE,
    choice_text VARCHAR(200) NOT NULL,
    votes INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_choice_question_id ON choice(question_id);

-- People
CREATE TABLE IF NOT EXISTS person (
    id {{pk}}
);

-- Publications
CREATE TABLE IF NOT EXISTS publication (
    id {{pk}},
    title VARCHAR(30) NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_publication_title ON publication(title);

-- Articles
CREATE TABLE IF NOT EXISTS article (
    id {{pk}},
    headline VARCHAR(100) NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_article_headline ON article(headline);

CREATE TABLE IF NOT EXISTS article_publication (
    article_id {{ref}} NOT NULL REFERENCES article(id) ON DELETE CASCADE,
    publication_id {{ref}} NOT NULL REFERENCES publication(id) ON DELETE CASCADE,
    PRIMARY KEY (article_id, publication_id)
);

CREATE INDEX IF NOT EXISTS idx_article_publication_publication ON article_publication(publication_id);

-- Opinion Polls
CREATE TABLE IF NOT EXISTS opinion_poll (
    id {{pk}},
    question VARCHAR(200) NOT NULL,
    poll_date DATE NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_opinion_poll_poll_date ON opinion_poll(poll_date);

-- Responses
CREATE TABLE IF NOT EXISTS response (
    id {{pk}},
    poll_id {{ref}} NOT NULL REFERENCES opinion_poll(id) ON DELETE CASCADE,
    person_name VARCHAR(200) NOT NULL,
    response TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_response_poll_id ON response(poll_id);
`
