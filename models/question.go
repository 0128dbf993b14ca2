// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// RecentWindow is how far back a question still counts as recently published.
const RecentWindow = 24 * time.Hour

type Question struct {
	ID           int64     `json:"id"`
	QuestionText string    `json:"question_text"`
	PubDate      time.Time `json:"pub_date"`
}

func (q Question) String() string {
	return q.QuestionText
}

// WasPublishedRecently reports whether the question went out within the last day.
func (q Question) WasPublishedRecently() bool {
	return q.WasPublishedRecentlyAt(time.Now())
}

// WasPublishedRecentlyAt is true iff now-24h <= pub_date <= now.
func (q Question) WasPublishedRecentlyAt(now time.Time) bool {
	return !q.PubDate.Before(now.Add(-RecentWindow)) && !q.PubDate.After(now)
}

type Choice struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	ChoiceText string `json:"choice_text"`
	Votes      int    `json:"votes"`
}

func (c Choice) String() string {
	return c.ChoiceText
}

type QuestionWithChoices struct {
	Question Question `json:"question"`
	Choices  []Choice `json:"choices"`
}
