// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth issues and checks admin keys.

An admin key is returned when a question or opinion poll is created. It is
an HMAC-SHA256 of the resource scope keyed with ADMIN_KEY_SALT, encoded as
URL-safe base64 without padding:

	key := auth.GenerateAdminKey(auth.QuestionScope(id), cfg.AdminKeySalt)

Requests that delete or extend the resource send it back in X-Admin-Key:

	if err := auth.ValidateAdminKey(auth.QuestionScope(id), key, salt); err != nil {
		// 401
	}

Keys are deterministic, so nothing is stored server-side. Comparison is
constant-time.
*/
package auth
