// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/handlers"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/store"
	"github.com/danielhkuo/polls/views"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	renderer := views.Must(views.New())

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(store.NewQuestionStore(db), renderer, cfg)
	opinionPollHandler := handlers.NewOpinionPollHandler(store.NewOpinionPollStore(db), cfg)
	publicationHandler := handlers.NewPublicationHandler(store.NewPublicationStore(db), store.NewArticleStore(db))
	peopleHandler := handlers.NewPeopleHandler(store.NewPeopleStore(db))

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Question pages (public)
	mux.HandleFunc("GET /polls/{$}", middleware.WithLogging(questionHandler.Index))
	mux.HandleFunc("GET /polls/{id}/{$}", middleware.WithLogging(questionHandler.Detail))
	mux.HandleFunc("GET /polls/{id}/results/{$}", middleware.WithLogging(questionHandler.Results))
	mux.HandleFunc("POST /polls/{id}/vote/{$}", middleware.WithLogging(questionHandler.Vote))

	// Question management
	mux.HandleFunc("POST /questions", middleware.WithLogging(questionHandler.CreateQuestion))
	mux.HandleFunc("POST /questions/{id}/choices", middleware.WithLogging(questionHandler.AddChoice))
	mux.HandleFunc("DELETE /questions/{id}", middleware.WithLogging(questionHandler.DeleteQuestion))

	// Opinion polls
	mux.HandleFunc("GET /opinion-polls", middleware.WithLogging(opinionPollHandler.ListPolls))
	mux.HandleFunc("POST /opinion-polls", middleware.WithLogging(opinionPollHandler.CreatePoll))
	mux.HandleFunc("GET /opinion-polls/{id}/responses", middleware.WithLogging(opinionPollHandler.ListResponses))
	mux.HandleFunc("POST /opinion-polls/{id}/responses", middleware.WithLogging(opinionPollHandler.AddResponse))
	mux.HandleFunc("DELETE /opinion-polls/{id}", middleware.WithLogging(opinionPollHandler.DeletePoll))

	// Publications and articles
	mux.HandleFunc("GET /publications", middleware.WithLogging(publicationHandler.ListPublications))
	mux.HandleFunc("POST /publications", middleware.WithLogging(publicationHandler.CreatePublication))
	mux.HandleFunc("GET /publications/{id}/articles", middleware.WithLogging(publicationHandler.PublicationArticles))
	mux.HandleFunc("GET /articles", middleware.WithLogging(publicationHandler.ListArticles))
	mux.HandleFunc("POST /articles", middleware.WithLogging(publicationHandler.CreateArticle))
	mux.HandleFunc("POST /articles/{id}/publications", middleware.WithLogging(publicationHandler.LinkPublication))
	mux.HandleFunc("DELETE /articles/{id}", middleware.WithLogging(publicationHandler.DeleteArticle))

	// People
	mux.HandleFunc("GET /people", middleware.WithLogging(peopleHandler.ListPeople))
	mux.HandleFunc("POST /people", middleware.WithLogging(peopleHandler.CreatePerson))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/polls/", http.StatusFound)
	})

	return mux
}
