// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the polls service.

# Handler Types

Each handler is a struct holding the stores it needs:

  - QuestionHandler: index, detail, results and vote pages, plus question management
  - OpinionPollHandler: opinion polls, their responses and response counts
  - PublicationHandler: publications, articles and the links between them
  - PeopleHandler: people

Handlers are created via constructor functions that accept store interfaces:

	questions := handlers.NewQuestionHandler(store.NewQuestionStore(db), renderer, cfg)

# Pages

The question pages render HTML, or JSON when the request sends
Accept: application/json:

	GET  /polls/              → Index (latest published questions)
	GET  /polls/{id}/         → Detail (404 for future questions)
	GET  /polls/{id}/results/ → Results
	POST /polls/{id}/vote/    → Vote (303 to results)

A vote without a valid choice redisplays the detail page with a 400.

# Admin Keys

Creating a question or opinion poll returns an admin_key. Adding choices and
deleting require it in the X-Admin-Key header.
*/
package handlers
