// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestScopes(t *testing.T) {
	if got := QuestionScope(42); got != "question:42" {
		t.Errorf("QuestionScope() = %q, want %q", got, "question:42")
	}
	if got := OpinionPollScope(7); got != "opinion-poll:7" {
		t.Errorf("OpinionPollScope() = %q, want %q", got, "opinion-poll:7")
	}
	if QuestionScope(1) == OpinionPollScope(1) {
		t.Error("question and opinion poll scopes must differ for the same id")
	}
}

func TestGenerateAdminKey(t *testing.T) {
	tests := []struct {
		name  string
		scope string
		salt  string
	}{
		{"standard", "question:1", "secret-salt"},
		{"empty scope", "", "salt"},
		{"empty salt", "opinion-poll:3", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := GenerateAdminKey(tt.scope, tt.salt)
			if key == "" {
				t.Fatal("GenerateAdminKey() returned empty key")
			}
			if strings.ContainsAny(key, "+/=") {
				t.Errorf("GenerateAdminKey() = %q, want URL-safe base64 without padding", key)
			}
			// Deterministic
			if again := GenerateAdminKey(tt.scope, tt.salt); again != key {
				t.Errorf("GenerateAdminKey() not deterministic: %q != %q", key, again)
			}
		})
	}

	if GenerateAdminKey("question:1", "a") == GenerateAdminKey("question:1", "b") {
		t.Error("different salts should produce different keys")
	}
	if GenerateAdminKey("question:1", "a") == GenerateAdminKey("question:2", "a") {
		t.Error("different scopes should produce different keys")
	}
}

func TestValidateAdminKey(t *testing.T) {
	salt := "test-salt"
	scope := QuestionScope(5)
	valid := GenerateAdminKey(scope, salt)

	tests := []struct {
		name    string
		scope   string
		key     string
		wantErr bool
	}{
		{"valid key", scope, valid, false},
		{"wrong key", scope, "not-the-key", true},
		{"empty key", scope, "", true},
		{"key for other scope", QuestionScope(6), valid, true},
		{"key for poll with same id", OpinionPollScope(5), valid, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdminKey(tt.scope, tt.key, salt)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAdminKey() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && err != ErrInvalidAdminKey {
				t.Errorf("ValidateAdminKey() error = %v, want ErrInvalidAdminKey", err)
			}
		})
	}
}
