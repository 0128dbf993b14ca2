// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/danielhkuo/polls/auth"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/store"
)

// pathID parses a positive integer path parameter.
// It writes a 400 and returns false when the value is malformed.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

// requireAdmin checks the X-Admin-Key header against the scope.
func requireAdmin(w http.ResponseWriter, r *http.Request, scope, salt string) bool {
	if err := auth.ValidateAdminKey(scope, r.Header.Get("X-Admin-Key"), salt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return false
	}
	return true
}

// storeError maps a store error to a response: 404 for missing rows,
// 500 for everything else.
func storeError(w http.ResponseWriter, err error, notFoundMessage string) {
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, notFoundMessage)
		return
	}
	slog.Error("database error", "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
}

// validText trims s and checks it is non-empty and at most max characters.
func validText(s string, max int) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && utf8.RuneCountInString(s) <= max
}
