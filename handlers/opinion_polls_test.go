// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/danielhkuo/polls/auth"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/store"
	"github.com/danielhkuo/polls/testutil"
)

func TestCreateOpinionPoll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewOpinionPollHandler(store.NewOpinionPollStore(db), testutil.GetTestConfig())
	cfg := testutil.GetTestConfig()

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
	}{
		{"valid with date", models.CreateOpinionPollRequest{Question: "Tabs or spaces?", PollDate: "2024-03-01"}, http.StatusCreated},
		{"valid without date", models.CreateOpinionPollRequest{Question: "Dark mode?"}, http.StatusCreated},
		{"missing question", models.CreateOpinionPollRequest{PollDate: "2024-03-01"}, http.StatusBadRequest},
		{"malformed date", models.CreateOpinionPollRequest{Question: "Q", PollDate: "03/01/2024"}, http.StatusBadRequest},
		{"invalid JSON", "nope", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/opinion-polls", tt.body, nil)
			w := httptest.NewRecorder()

			h.CreatePoll(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)
			if tt.wantStatus == http.StatusCreated {
				var resp models.CreateOpinionPollResponse
				testutil.AssertJSON(t, w, &resp)
				if err := auth.ValidateAdminKey(auth.OpinionPollScope(resp.PollID), resp.AdminKey, cfg.AdminKeySalt); err != nil {
					t.Errorf("Returned admin key does not validate: %v", err)
				}
			}
		})
	}
}

func TestListOpinionPolls(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewOpinionPollHandler(store.NewOpinionPollStore(db), testutil.GetTestConfig())

	old := testutil.CreateOpinionPoll(t, db, "Old poll", -10)
	recent := testutil.CreateOpinionPoll(t, db, "Recent poll", -1)
	testutil.AddResponse(t, db, old, "Ann", "yes")
	testutil.AddResponse(t, db, old, "Bob", "no")
	testutil.AddResponse(t, db, recent, "Cat", "maybe")
	testutil.CreateOpinionPoll(t, db, "Unanswered poll", -20)

	req := httptest.NewRequest("GET", "/opinion-polls", nil)
	w := httptest.NewRecorder()

	h.ListPolls(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var polls []models.OpinionPollCount
	testutil.AssertJSON(t, w, &polls)

	want := []struct {
		question string
		count    int
	}{
		{"Recent poll", 1},
		{"Old poll", 2},
		{"Unanswered poll", 0},
	}
	if len(polls) != len(want) {
		t.Fatalf("Expected %d polls, got %d", len(want), len(polls))
	}
	for i, exp := range want {
		if polls[i].Question != exp.question || polls[i].NumResponses != exp.count {
			t.Errorf("polls[%d] = %s/%d, want %s/%d", i, polls[i].Question, polls[i].NumResponses, exp.question, exp.count)
		}
	}
}

func TestAddResponse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewOpinionPollHandler(store.NewOpinionPollStore(db), testutil.GetTestConfig())
	pollID := testutil.CreateOpinionPoll(t, db, "Coffee or tea?", 0)

	tests := []struct {
		name       string
		id         string
		body       interface{}
		wantStatus int
	}{
		{"valid", strconv.FormatInt(pollID, 10), models.CreateResponseRequest{PersonName: "Ann", Response: "Coffee"}, http.StatusCreated},
		{"unknown poll", "999", models.CreateResponseRequest{PersonName: "Ann", Response: "Tea"}, http.StatusNotFound},
		{"missing name", strconv.FormatInt(pollID, 10), models.CreateResponseRequest{Response: "Tea"}, http.StatusBadRequest},
		{"missing response", strconv.FormatInt(pollID, 10), models.CreateResponseRequest{PersonName: "Ann"}, http.StatusBadRequest},
		{"malformed id", "x", models.CreateResponseRequest{PersonName: "Ann", Response: "Tea"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/opinion-polls/"+tt.id+"/responses", tt.body, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			h.AddResponse(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)
		})
	}

	// List what was recorded
	id := strconv.FormatInt(pollID, 10)
	req := httptest.NewRequest("GET", "/opinion-polls/"+id+"/responses", nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()

	h.ListResponses(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var responses []models.Response
	testutil.AssertJSON(t, w, &responses)
	if len(responses) != 1 || responses[0].PersonName != "Ann" || responses[0].Response != "Coffee" {
		t.Errorf("Unexpected responses: %+v", responses)
	}
}

func TestListResponses_UnknownPoll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewOpinionPollHandler(store.NewOpinionPollStore(db), testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/opinion-polls/42/responses", nil)
	req.SetPathValue("id", "42")
	w := httptest.NewRecorder()

	h.ListResponses(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestDeleteOpinionPoll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	h := NewOpinionPollHandler(store.NewOpinionPollStore(db), cfg)
	pollID := testutil.CreateOpinionPoll(t, db, "Q", 0)
	testutil.AddResponse(t, db, pollID, "Ann", "a")
	testutil.AddResponse(t, db, pollID, "Bob", "b")
	id := strconv.FormatInt(pollID, 10)

	del := func(adminKey string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("DELETE", "/opinion-polls/"+id, nil, map[string]string{"X-Admin-Key": adminKey})
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		h.DeletePoll(w, req)
		return w
	}

	// A question key must not unlock an opinion poll with the same id
	questionKey := auth.GenerateAdminKey(auth.QuestionScope(pollID), cfg.AdminKeySalt)
	testutil.AssertStatus(t, del(questionKey), http.StatusUnauthorized)

	adminKey := auth.GenerateAdminKey(auth.OpinionPollScope(pollID), cfg.AdminKeySalt)
	testutil.AssertStatus(t, del(adminKey), http.StatusNoContent)

	if n := testutil.CountRows(t, db, "response"); n != 0 {
		t.Errorf("Expected responses to be deleted with the poll, %d remain", n)
	}
}
