// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/store"
)

type PublicationHandler struct {
	publications store.PublicationStore
	articles     store.ArticleStore
}

func NewPublicationHandler(publications store.PublicationStore, articles store.ArticleStore) *PublicationHandler {
	return &PublicationHandler{publications: publications, articles: articles}
}

// CreatePublication handles POST /publications
func (h *PublicationHandler) CreatePublication(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePublicationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	title, ok := validText(req.Title, models.MaxTitleLen)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("title is required (max %d characters)", models.MaxTitleLen))
		return
	}

	pub, err := h.publications.Create(r.Context(), title)
	if err != nil {
		slog.Error("failed to create publication", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create publication")
		return
	}

	slog.Info("publication created", "publication_id", pub.ID)

	middleware.JSONResponse(w, http.StatusCreated, pub)
}

// ListPublications handles GET /publications
func (h *PublicationHandler) ListPublications(w http.ResponseWriter, r *http.Request) {
	pubs, err := h.publications.List(r.Context())
	if err != nil {
		storeError(w, err, "")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, pubs)
}

// PublicationArticles handles GET /publications/{id}/articles
func (h *PublicationHandler) PublicationArticles(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	articles, err := h.publications.Articles(r.Context(), id)
	if err != nil {
		storeError(w, err, "Publication not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, articles)
}

// CreateArticle handles POST /articles
func (h *PublicationHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateArticleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	headline, ok := validText(req.Headline, models.MaxHeadlineLen)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("headline is required (max %d characters)", models.MaxHeadlineLen))
		return
	}

	article, err := h.articles.Create(r.Context(), headline, req.PublicationIDs)
	if err != nil {
		storeError(w, err, "Publication not found")
		return
	}

	slog.Info("article created", "article_id", article.ID, "publications", len(article.Publications))

	middleware.JSONResponse(w, http.StatusCreated, article)
}

// ListArticles handles GET /articles
func (h *PublicationHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articles.List(r.Context())
	if err != nil {
		storeError(w, err, "")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, articles)
}

// LinkPublication handles POST /articles/{id}/publications
func (h *PublicationHandler) LinkPublication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.LinkPublicationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.articles.AddPublication(r.Context(), id, req.PublicationID); err != nil {
		storeError(w, err, "Article or publication not found")
		return
	}

	article, err := h.articles.Get(r.Context(), id)
	if err != nil {
		storeError(w, err, "Article not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, article)
}

// DeleteArticle handles DELETE /articles/{id}
func (h *PublicationHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.articles.Delete(r.Context(), id); err != nil {
		storeError(w, err, "Article not found")
		return
	}

	slog.Info("article deleted", "article_id", id)

	w.WriteHeader(http.StatusNoContent)
}
