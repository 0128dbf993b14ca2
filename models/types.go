// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Field length limits
const (
	MaxQuestionTextLen = 200
	MaxChoiceTextLen   = 200
	MaxTitleLen        = 30
	MaxHeadlineLen     = 100
	MaxPersonNameLen   = 200
)

// DateLayout is the wire format for opinion poll dates.
const DateLayout = "2006-01-02"

// Request types

type CreateQuestionRequest struct {
	QuestionText string     `json:"question_text"`
	PubDate      *time.Time `json:"pub_date,omitempty"` // defaults to now
	Choices      []string   `json:"choices,omitempty"`
}

type AddChoiceRequest struct {
	ChoiceText string `json:"choice_text"`
}

type CreateOpinionPollRequest struct {
	Question string `json:"question"`
	PollDate string `json:"poll_date"` // YYYY-MM-DD
}

type CreateResponseRequest struct {
	PersonName string `json:"person_name"`
	Response   string `json:"response"`
}

type CreatePublicationRequest struct {
	Title string `json:"title"`
}

type CreateArticleRequest struct {
	Headline       string  `json:"headline"`
	PublicationIDs []int64 `json:"publication_ids,omitempty"`
}

type LinkPublicationRequest struct {
	PublicationID int64 `json:"publication_id"`
}

// Response types

type CreateQuestionResponse struct {
	QuestionID int64    `json:"question_id"`
	AdminKey   string   `json:"admin_key"`
	Choices    []Choice `json:"choices"`
}

type CreateOpinionPollResponse struct {
	PollID   int64  `json:"poll_id"`
	AdminKey string `json:"admin_key"`
}

// IndexContext is what the index page renders.
type IndexContext struct {
	LatestQuestionList []Question `json:"latest_question_list"`
}

// Domain types

// Person has no fields of its own.
type Person struct {
	ID int64 `json:"id"`
}

type Publication struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func (p Publication) String() string {
	return p.Title
}

type Article struct {
	ID           int64         `json:"id"`
	Headline     string        `json:"headline"`
	Publications []Publication `json:"publications"`
}

func (a Article) String() string {
	return a.Headline
}

type OpinionPoll struct {
	ID       int64     `json:"id"`
	Question string    `json:"question"`
	PollDate time.Time `json:"poll_date"`
}

// OpinionPollCount is an opinion poll annotated with its response count.
// Only the aggregate query produces it.
type OpinionPollCount struct {
	OpinionPoll
	NumResponses int `json:"num_responses"`
}

type Response struct {
	ID         int64  `json:"id"`
	PollID     int64  `json:"poll_id"`
	PersonName string `json:"person_name"`
	Response   string `json:"response"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
