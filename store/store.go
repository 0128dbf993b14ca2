// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"time"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/danielhkuo/polls/store QuestionStore,OpinionPollStore

// ErrNotFound is returned when a row addressed by id does not exist.
var ErrNotFound = errors.New("not found")

type store struct {
	db *sql.DB
}

// utc normalizes times before they reach the database so that stored
// values compare correctly on SQLite, where timestamps are text.
func utc(t time.Time) time.Time {
	return t.UTC()
}

// day truncates t to midnight UTC of its calendar date.
func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// checkAffected maps a zero-row UPDATE or DELETE to ErrNotFound.
func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
