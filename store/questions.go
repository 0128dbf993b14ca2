// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/polls/models"
)

type questionStore struct {
	store
}

type QuestionStore interface {
	Create(ctx context.Context, text string, pubDate time.Time, choices []string) (models.QuestionWithChoices, error)
	Get(ctx context.Context, id int64) (models.Question, error)
	GetPublished(ctx context.Context, id int64, now time.Time) (models.Question, error)
	Published(ctx context.Context, now time.Time, limit int) ([]models.Question, error)
	Delete(ctx context.Context, id int64) error
	AddChoice(ctx context.Context, questionID int64, text string) (models.Choice, error)
	Choices(ctx context.Context, questionID int64) ([]models.Choice, error)
	Vote(ctx context.Context, questionID, choiceID int64) error
}

func NewQuestionStore(db *sql.DB) QuestionStore {
	return &questionStore{
		store: store{
			db: db,
		},
	}
}

// Create inserts a question and its initial choices in one transaction.
func (s *questionStore) Create(ctx context.Context, text string, pubDate time.Time, choices []string) (models.QuestionWithChoices, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.QuestionWithChoices{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := models.Question{QuestionText: text, PubDate: utc(pubDate)}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO question (question_text, pub_date)
		VALUES ($1, $2)
		RETURNING id
	`, q.QuestionText, q.PubDate).Scan(&q.ID)
	if err != nil {
		return models.QuestionWithChoices{}, fmt.Errorf("failed to insert question: %w", err)
	}

	created := make([]models.Choice, 0, len(choices))
	for _, choiceText := range choices {
		c := models.Choice{QuestionID: q.ID, ChoiceText: choiceText}
		err = tx.QueryRowContext(ctx, `
			INSERT INTO choice (question_id, choice_text)
			VALUES ($1, $2)
			RETURNING id, votes
		`, q.ID, choiceText).Scan(&c.ID, &c.Votes)
		if err != nil {
			return models.QuestionWithChoices{}, fmt.Errorf("failed to insert choice: %w", err)
		}
		created = append(created, c)
	}

	if err := tx.Commit(); err != nil {
		return models.QuestionWithChoices{}, fmt.Errorf("failed to commit question: %w", err)
	}

	return models.QuestionWithChoices{Question: q, Choices: created}, nil
}

func (s *questionStore) Get(ctx context.Context, id int64) (models.Question, error) {
	var q models.Question
	err := s.db.QueryRowContext(ctx, `
		SELECT id, question_text, pub_date
		FROM question
		WHERE id = $1
	`, id).Scan(&q.ID, &q.QuestionText, &q.PubDate)
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to get question %d: %w", id, notFound(err))
	}
	return q, nil
}

// GetPublished is Get restricted to questions whose pub_date is not after now.
func (s *questionStore) GetPublished(ctx context.Context, id int64, now time.Time) (models.Question, error) {
	var q models.Question
	err := s.db.QueryRowContext(ctx, `
		SELECT id, question_text, pub_date
		FROM question
		WHERE id = $1 AND pub_date <= $2
	`, id, utc(now)).Scan(&q.ID, &q.QuestionText, &q.PubDate)
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to get question %d: %w", id, notFound(err))
	}
	return q, nil
}

// Published returns up to limit questions with pub_date <= now, newest first.
func (s *questionStore) Published(ctx context.Context, now time.Time, limit int) ([]models.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_text, pub_date
		FROM question
		WHERE pub_date <= $1
		ORDER BY pub_date DESC, id DESC
		LIMIT $2
	`, utc(now), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.QuestionText, &q.PubDate); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate questions: %w", err)
	}

	return questions, nil
}

// Delete removes a question; its choices go with it.
func (s *questionStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM question WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	return nil
}

func (s *questionStore) AddChoice(ctx context.Context, questionID int64, text string) (models.Choice, error) {
	if _, err := s.Get(ctx, questionID); err != nil {
		return models.Choice{}, err
	}

	c := models.Choice{QuestionID: questionID, ChoiceText: text}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO choice (question_id, choice_text)
		VALUES ($1, $2)
		RETURNING id, votes
	`, questionID, text).Scan(&c.ID, &c.Votes)
	if err != nil {
		return models.Choice{}, fmt.Errorf("failed to insert choice: %w", err)
	}
	return c, nil
}

func (s *questionStore) Choices(ctx context.Context, questionID int64) ([]models.Choice, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_id, choice_text, votes
		FROM choice
		WHERE question_id = $1
		ORDER BY id
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query choices: %w", err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.ChoiceText, &c.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate choices: %w", err)
	}

	return choices, nil
}

// Vote adds one vote to a choice of the given question. The increment
// happens in the database, so concurrent votes are not lost.
func (s *questionStore) Vote(ctx context.Context, questionID, choiceID int64) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE choice
		SET votes = votes + 1
		WHERE id = $1 AND question_id = $2
	`, choiceID, questionID)
	if err != nil {
		return fmt.Errorf("failed to record vote: %w", err)
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("failed to record vote for choice %d: %w", choiceID, err)
	}
	return nil
}
