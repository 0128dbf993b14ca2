// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the query layer: one store per entity, each behind an
interface so handlers can be tested with mocks.

	questions := store.NewQuestionStore(db)
	latest, err := questions.Published(ctx, time.Now(), 5)

# Stores

  - QuestionStore: questions and their choices, vote increments
  - OpinionPollStore: opinion polls, responses, and WithCounts
  - PublicationStore, ArticleStore: the article/publication many-to-many
  - PeopleStore: the people accessor

# WithCounts

WithCounts runs a single aggregate query joining opinion_poll to response,
grouped by poll, and returns OpinionPollCount values newest poll date
first. NumResponses exists only on values returned by this method.

# Errors

Lookups by id return an error wrapping ErrNotFound when the row is missing:

	if errors.Is(err, store.ErrNotFound) { ... }

Other errors wrap the driver error. Nothing is retried.

# Placeholders

Queries use $N placeholders, which both lib/pq and modernc.org/sqlite
accept. Times are written in UTC.
*/
package store
