// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/store/mocks"
	"github.com/danielhkuo/polls/testutil"
	"github.com/danielhkuo/polls/views"
)

var errDatabase = errors.New("connection reset")

func TestIndex_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	questions := mocks.NewMockQuestionStore(ctrl)
	questions.EXPECT().Published(gomock.Any(), gomock.Any(), 5).Return(nil, errDatabase)

	h := NewQuestionHandler(questions, views.Must(views.New()), testutil.GetTestConfig())

	w := httptest.NewRecorder()
	h.Index(w, httptest.NewRequest("GET", "/polls/", nil))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}

func TestVote_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	questions := mocks.NewMockQuestionStore(ctrl)
	questions.EXPECT().GetPublished(gomock.Any(), int64(1), gomock.Any()).
		Return(models.Question{ID: 1, QuestionText: "Q"}, nil)
	questions.EXPECT().Choices(gomock.Any(), int64(1)).
		Return([]models.Choice{{ID: 7, QuestionID: 1, ChoiceText: "A"}}, nil)
	questions.EXPECT().Vote(gomock.Any(), int64(1), int64(7)).Return(errDatabase)

	h := NewQuestionHandler(questions, views.Must(views.New()), testutil.GetTestConfig())

	req := httptest.NewRequest("POST", "/polls/1/vote/", strings.NewReader("choice=7"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	h.Vote(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}

func TestListOpinionPolls_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	polls := mocks.NewMockOpinionPollStore(ctrl)
	polls.EXPECT().WithCounts(gomock.Any()).Return(nil, errDatabase)

	h := NewOpinionPollHandler(polls, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	h.ListPolls(w, httptest.NewRequest("GET", "/opinion-polls", nil))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Database error" {
		t.Errorf("Expected 'Database error', got %q", resp.Message)
	}
}

func TestCreateOpinionPoll_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	polls := mocks.NewMockOpinionPollStore(ctrl)
	polls.EXPECT().Create(gomock.Any(), "Q", gomock.Any()).Return(models.OpinionPoll{}, errDatabase)

	h := NewOpinionPollHandler(polls, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/opinion-polls", models.CreateOpinionPollRequest{Question: "Q"}, nil)
	w := httptest.NewRecorder()
	h.CreatePoll(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}
