// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/polls/auth"
	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/store"
)

type OpinionPollHandler struct {
	polls store.OpinionPollStore
	cfg   cliparse.Config
	now   func() time.Time
}

func NewOpinionPollHandler(polls store.OpinionPollStore, cfg cliparse.Config) *OpinionPollHandler {
	return &OpinionPollHandler{polls: polls, cfg: cfg, now: time.Now}
}

// CreatePoll handles POST /opinion-polls
// poll_date defaults to today
func (h *OpinionPollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOpinionPollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	question, ok := validText(req.Question, models.MaxQuestionTextLen)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("question is required (max %d characters)", models.MaxQuestionTextLen))
		return
	}

	pollDate := h.now()
	if s := strings.TrimSpace(req.PollDate); s != "" {
		d, err := time.Parse(models.DateLayout, s)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "poll_date must be YYYY-MM-DD")
			return
		}
		pollDate = d
	}

	poll, err := h.polls.Create(r.Context(), question, pollDate)
	if err != nil {
		slog.Error("failed to create opinion poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create opinion poll")
		return
	}

	slog.Info("opinion poll created", "poll_id", poll.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateOpinionPollResponse{
		PollID:   poll.ID,
		AdminKey: auth.GenerateAdminKey(auth.OpinionPollScope(poll.ID), h.cfg.AdminKeySalt),
	})
}

// ListPolls handles GET /opinion-polls
// Every poll with its response count, newest first
func (h *OpinionPollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	counts, err := h.polls.WithCounts(r.Context())
	if err != nil {
		slog.Error("failed to count responses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, counts)
}

// AddResponse handles POST /opinion-polls/{id}/responses
func (h *OpinionPollHandler) AddResponse(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.CreateResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name, ok := validText(req.PersonName, models.MaxPersonNameLen)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("person_name is required (max %d characters)", models.MaxPersonNameLen))
		return
	}
	if strings.TrimSpace(req.Response) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "response is required")
		return
	}

	resp, err := h.polls.AddResponse(r.Context(), id, name, req.Response)
	if err != nil {
		storeError(w, err, "Opinion poll not found")
		return
	}

	slog.Info("response recorded", "poll_id", id, "response_id", resp.ID)

	middleware.JSONResponse(w, http.StatusCreated, resp)
}

// ListResponses handles GET /opinion-polls/{id}/responses
func (h *OpinionPollHandler) ListResponses(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if _, err := h.polls.Get(r.Context(), id); err != nil {
		storeError(w, err, "Opinion poll not found")
		return
	}

	responses, err := h.polls.Responses(r.Context(), id)
	if err != nil {
		storeError(w, err, "Opinion poll not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, responses)
}

// DeletePoll handles DELETE /opinion-polls/{id}
// Responses are removed with the poll
func (h *OpinionPollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if !requireAdmin(w, r, auth.OpinionPollScope(id), h.cfg.AdminKeySalt) {
		return
	}

	if err := h.polls.Delete(r.Context(), id); err != nil {
		storeError(w, err, "Opinion poll not found")
		return
	}

	slog.Info("opinion poll deleted", "poll_id", id)

	w.WriteHeader(http.StatusNoContent)
}
