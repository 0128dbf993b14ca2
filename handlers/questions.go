// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/polls/auth"
	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/store"
	"github.com/danielhkuo/polls/views"
)

// NoChoiceMessage is shown when a vote names no valid choice.
const NoChoiceMessage = "You didn't select a choice."

type QuestionHandler struct {
	questions store.QuestionStore
	views     *views.Renderer
	cfg       cliparse.Config
	now       func() time.Time
}

func NewQuestionHandler(questions store.QuestionStore, renderer *views.Renderer, cfg cliparse.Config) *QuestionHandler {
	return &QuestionHandler{questions: questions, views: renderer, cfg: cfg, now: time.Now}
}

// Index handles GET /polls/
// Lists the latest published questions, newest first
func (h *QuestionHandler) Index(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questions.Published(r.Context(), h.now(), h.cfg.LatestLimit)
	if err != nil {
		slog.Error("failed to query latest questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	ctx := models.IndexContext{LatestQuestionList: questions}
	if middleware.WantsJSON(r) {
		middleware.JSONResponse(w, http.StatusOK, ctx)
		return
	}
	h.views.Render(w, http.StatusOK, views.PageIndex, ctx)
}

// Detail handles GET /polls/{id}/
// Future questions are not found
func (h *QuestionHandler) Detail(w http.ResponseWriter, r *http.Request) {
	h.showQuestion(w, r, views.PageDetail)
}

// Results handles GET /polls/{id}/results/
func (h *QuestionHandler) Results(w http.ResponseWriter, r *http.Request) {
	h.showQuestion(w, r, views.PageResults)
}

func (h *QuestionHandler) showQuestion(w http.ResponseWriter, r *http.Request, name string) {
	page, ok := h.loadPage(w, r)
	if !ok {
		return
	}

	if middleware.WantsJSON(r) {
		middleware.JSONResponse(w, http.StatusOK, models.QuestionWithChoices{
			Question: page.Question,
			Choices:  page.Choices,
		})
		return
	}
	h.views.Render(w, http.StatusOK, name, page)
}

// loadPage fetches a published question with its choices.
func (h *QuestionHandler) loadPage(w http.ResponseWriter, r *http.Request) (views.QuestionPage, bool) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return views.QuestionPage{}, false
	}

	q, err := h.questions.GetPublished(r.Context(), id, h.now())
	if err != nil {
		storeError(w, err, "Question not found")
		return views.QuestionPage{}, false
	}

	choices, err := h.questions.Choices(r.Context(), id)
	if err != nil {
		storeError(w, err, "Question not found")
		return views.QuestionPage{}, false
	}

	return views.QuestionPage{Question: q, Choices: choices}, true
}

// Vote handles POST /polls/{id}/vote/
// Form field "choice" holds the choice id
func (h *QuestionHandler) Vote(w http.ResponseWriter, r *http.Request) {
	page, ok := h.loadPage(w, r)
	if !ok {
		return
	}

	choiceID, err := strconv.ParseInt(r.PostFormValue("choice"), 10, 64)
	if err == nil {
		err = h.questions.Vote(r.Context(), page.Question.ID, choiceID)
	}
	if err != nil {
		var numErr *strconv.NumError
		if !errors.Is(err, store.ErrNotFound) && !errors.As(err, &numErr) {
			slog.Error("failed to record vote", "question_id", page.Question.ID, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
			return
		}

		// Redisplay the voting form
		page.ErrorMessage = NoChoiceMessage
		if middleware.WantsJSON(r) {
			middleware.ErrorResponse(w, http.StatusBadRequest, NoChoiceMessage)
			return
		}
		h.views.Render(w, http.StatusBadRequest, views.PageDetail, page)
		return
	}

	slog.Info("vote recorded", "question_id", page.Question.ID, "choice_id", choiceID)

	// Redirect after POST so a reload does not vote twice
	http.Redirect(w, r, fmt.Sprintf("/polls/%d/results/", page.Question.ID), http.StatusSeeOther)
}

// CreateQuestion handles POST /questions
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	text, ok := validText(req.QuestionText, models.MaxQuestionTextLen)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("question_text is required (max %d characters)", models.MaxQuestionTextLen))
		return
	}

	choices := make([]string, 0, len(req.Choices))
	for _, c := range req.Choices {
		choiceText, ok := validText(c, models.MaxChoiceTextLen)
		if !ok {
			middleware.ErrorResponse(w, http.StatusBadRequest,
				fmt.Sprintf("choices must be non-empty (max %d characters)", models.MaxChoiceTextLen))
			return
		}
		choices = append(choices, choiceText)
	}

	pubDate := h.now()
	if req.PubDate != nil {
		pubDate = *req.PubDate
	}

	created, err := h.questions.Create(r.Context(), text, pubDate, choices)
	if err != nil {
		slog.Error("failed to create question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	slog.Info("question created", "question_id", created.Question.ID, "choices", len(created.Choices))

	middleware.JSONResponse(w, http.StatusCreated, models.CreateQuestionResponse{
		QuestionID: created.Question.ID,
		AdminKey:   auth.GenerateAdminKey(auth.QuestionScope(created.Question.ID), h.cfg.AdminKeySalt),
		Choices:    created.Choices,
	})
}

// AddChoice handles POST /questions/{id}/choices
func (h *QuestionHandler) AddChoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if !requireAdmin(w, r, auth.QuestionScope(id), h.cfg.AdminKeySalt) {
		return
	}

	var req models.AddChoiceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	text, ok := validText(req.ChoiceText, models.MaxChoiceTextLen)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("choice_text is required (max %d characters)", models.MaxChoiceTextLen))
		return
	}

	choice, err := h.questions.AddChoice(r.Context(), id, text)
	if err != nil {
		storeError(w, err, "Question not found")
		return
	}

	slog.Info("choice added", "question_id", id, "choice_id", choice.ID)

	middleware.JSONResponse(w, http.StatusCreated, choice)
}

// DeleteQuestion handles DELETE /questions/{id}
// Choices are removed with the question
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if !requireAdmin(w, r, auth.QuestionScope(id), h.cfg.AdminKeySalt) {
		return
	}

	if err := h.questions.Delete(r.Context(), id); err != nil {
		storeError(w, err, "Question not found")
		return
	}

	slog.Info("question deleted", "question_id", id)

	w.WriteHeader(http.StatusNoContent)
}
