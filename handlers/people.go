// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/store"
)

type PeopleHandler struct {
	people store.PeopleStore
}

func NewPeopleHandler(people store.PeopleStore) *PeopleHandler {
	return &PeopleHandler{people: people}
}

// CreatePerson handles POST /people
func (h *PeopleHandler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	p, err := h.people.Create(r.Context())
	if err != nil {
		slog.Error("failed to create person", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create person")
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, p)
}

// ListPeople handles GET /people
func (h *PeopleHandler) ListPeople(w http.ResponseWriter, r *http.Request) {
	people, err := h.people.All(r.Context())
	if err != nil {
		slog.Error("failed to list people", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, people)
}
