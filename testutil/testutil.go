// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/db"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// Every call gets its own database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(cliparse.Config{
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  "file:" + uuid.NewString() + "?mode=memory",
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, cliparse.DatabaseSQLite); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "file:test?mode=memory",
		DatabaseType: cliparse.DatabaseSQLite,
		AdminKeySalt: "test-admin-salt",
		LatestLimit:  5,
	}
}

// CreateQuestion inserts a question published the given number of days
// from now (negative for the past, positive for the future).
func CreateQuestion(t *testing.T, db *sql.DB, questionText string, days int) int64 {
	t.Helper()

	pubDate := time.Now().UTC().Add(time.Duration(days) * 24 * time.Hour)

	var id int64
	err := db.QueryRow(`
		INSERT INTO question (question_text, pub_date)
		VALUES ($1, $2)
		RETURNING id
	`, questionText, pubDate).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return id
}

// AddChoice adds a choice to a question and returns the choice ID
func AddChoice(t *testing.T, db *sql.DB, questionID int64, choiceText string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO choice (question_id, choice_text)
		VALUES ($1, $2)
		RETURNING id
	`, questionID, choiceText).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test choice: %v", err)
	}

	return id
}

// CreateOpinionPoll inserts an opinion poll dated the given number of days from today
func CreateOpinionPoll(t *testing.T, db *sql.DB, question string, days int) int64 {
	t.Helper()

	y, m, d := time.Now().UTC().AddDate(0, 0, days).Date()
	pollDate := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	var id int64
	err := db.QueryRow(`
		INSERT INTO opinion_poll (question, poll_date)
		VALUES ($1, $2)
		RETURNING id
	`, question, pollDate).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test opinion poll: %v", err)
	}

	return id
}

// AddResponse records a response to an opinion poll
func AddResponse(t *testing.T, db *sql.DB, pollID int64, personName, response string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO response (poll_id, person_name, response)
		VALUES ($1, $2, $3)
		RETURNING id
	`, pollID, personName, response).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test response: %v", err)
	}

	return id
}

// CountRows returns the number of rows in a table
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
