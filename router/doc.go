// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the polls service.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Question pages (HTML, or JSON with Accept: application/json):

	GET  /polls/              - Latest published questions
	GET  /polls/{id}/         - Question with its choices
	GET  /polls/{id}/results/ - Vote counts
	POST /polls/{id}/vote/    - Vote for form field "choice"

Question management (choices and delete require X-Admin-Key):

	POST   /questions              - Create question
	POST   /questions/{id}/choices - Add choice
	DELETE /questions/{id}         - Delete question and its choices

Opinion polls:

	GET    /opinion-polls                 - Polls with response counts
	POST   /opinion-polls                 - Create poll
	GET    /opinion-polls/{id}/responses  - List responses
	POST   /opinion-polls/{id}/responses  - Record response
	DELETE /opinion-polls/{id}            - Delete poll (X-Admin-Key)

Publications, articles and people:

	GET|POST /publications
	GET      /publications/{id}/articles
	GET|POST /articles
	POST     /articles/{id}/publications
	DELETE   /articles/{id}
	GET|POST /people

The root path redirects to /polls/.
*/
package router
