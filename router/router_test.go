// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootRedirect(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := NewRouter(db, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Errorf("Expected status 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/polls/" {
		t.Errorf("Expected redirect to /polls/, got '%s'", loc)
	}
}

func TestRouteExistence(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	// Routes respond from their handler, so 400/401/404 are all fine here
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/polls/"},
		{"GET", "/polls/1/"},
		{"GET", "/polls/1/results/"},
		{"POST", "/polls/1/vote/"},

		{"POST", "/questions"},
		{"POST", "/questions/1/choices"},
		{"DELETE", "/questions/1"},

		{"GET", "/opinion-polls"},
		{"POST", "/opinion-polls"},
		{"GET", "/opinion-polls/1/responses"},
		{"POST", "/opinion-polls/1/responses"},
		{"DELETE", "/opinion-polls/1"},

		{"GET", "/publications"},
		{"POST", "/publications"},
		{"GET", "/publications/1/articles"},
		{"GET", "/articles"},
		{"POST", "/articles"},
		{"POST", "/articles/1/publications"},
		{"DELETE", "/articles/1"},
		{"GET", "/people"},
		{"POST", "/people"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader("{}"))
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
			if w.Header().Get("X-Request-ID") == "" && tc.path != "/health" {
				t.Errorf("Route %s %s is missing request logging", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := NewRouter(db, testutil.GetTestConfig())

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/polls/1/"},
		{"GET", "/polls/1/vote/"},
		{"PUT", "/opinion-polls"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPollsFlow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := NewRouter(db, testutil.GetTestConfig())

	// Create a question through the API
	body, _ := json.Marshal(models.CreateQuestionRequest{
		QuestionText: "What's up?",
		Choices:      []string{"Not much", "The sky"},
	})
	req := httptest.NewRequest("POST", "/questions", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.CreateQuestionResponse
	testutil.AssertJSON(t, w, &created)

	// Index lists it
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/polls/", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "What&#39;s up?") {
		t.Errorf("Expected index to list the question, got %s", w.Body.String())
	}

	// Vote through the form path
	id := strconv.FormatInt(created.QuestionID, 10)
	form := fmt.Sprintf("choice=%d", created.Choices[1].ID)
	req = httptest.NewRequest("POST", "/polls/"+id+"/vote/", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusSeeOther)

	// Results reflect the vote
	req = httptest.NewRequest("GET", "/polls/"+id+"/results/", nil)
	req.Header.Set("Accept", "application/json")
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var results models.QuestionWithChoices
	testutil.AssertJSON(t, w, &results)
	if len(results.Choices) != 2 || results.Choices[0].Votes != 0 || results.Choices[1].Votes != 1 {
		t.Errorf("Unexpected results: %+v", results.Choices)
	}
}
