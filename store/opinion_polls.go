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

type opinionPollStore struct {
	store
}

type OpinionPollStore interface {
	Create(ctx context.Context, question string, pollDate time.Time) (models.OpinionPoll, error)
	Get(ctx context.Context, id int64) (models.OpinionPoll, error)
	Delete(ctx context.Context, id int64) error
	AddResponse(ctx context.Context, pollID int64, personName, response string) (models.Response, error)
	Responses(ctx context.Context, pollID int64) ([]models.Response, error)
	WithCounts(ctx context.Context) ([]models.OpinionPollCount, error)
}

func NewOpinionPollStore(db *sql.DB) OpinionPollStore {
	return &opinionPollStore{
		store: store{
			db: db,
		},
	}
}

// Create stores an opinion poll; only the calendar date of pollDate is kept.
func (s *opinionPollStore) Create(ctx context.Context, question string, pollDate time.Time) (models.OpinionPoll, error) {
	p := models.OpinionPoll{Question: question, PollDate: day(pollDate)}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO opinion_poll (question, poll_date)
		VALUES ($1, $2)
		RETURNING id
	`, p.Question, p.PollDate).Scan(&p.ID)
	if err != nil {
		return models.OpinionPoll{}, fmt.Errorf("failed to insert opinion poll: %w", err)
	}
	return p, nil
}

func (s *opinionPollStore) Get(ctx context.Context, id int64) (models.OpinionPoll, error) {
	var p models.OpinionPoll
	err := s.db.QueryRowContext(ctx, `
		SELECT id, question, poll_date
		FROM opinion_poll
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Question, &p.PollDate)
	if err != nil {
		return models.OpinionPoll{}, fmt.Errorf("failed to get opinion poll %d: %w", id, notFound(err))
	}
	return p, nil
}

// Delete removes an opinion poll and, by cascade, its responses.
func (s *opinionPollStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM opinion_poll WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete opinion poll %d: %w", id, err)
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("failed to delete opinion poll %d: %w", id, err)
	}
	return nil
}

func (s *opinionPollStore) AddResponse(ctx context.Context, pollID int64, personName, response string) (models.Response, error) {
	if _, err := s.Get(ctx, pollID); err != nil {
		return models.Response{}, err
	}

	r := models.Response{PollID: pollID, PersonName: personName, Response: response}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO response (poll_id, person_name, response)
		VALUES ($1, $2, $3)
		RETURNING id
	`, pollID, personName, response).Scan(&r.ID)
	if err != nil {
		return models.Response{}, fmt.Errorf("failed to insert response: %w", err)
	}
	return r, nil
}

func (s *opinionPollStore) Responses(ctx context.Context, pollID int64) ([]models.Response, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, poll_id, person_name, response
		FROM response
		WHERE poll_id = $1
		ORDER BY id
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query responses: %w", err)
	}
	defer rows.Close()

	responses := []models.Response{}
	for rows.Next() {
		var r models.Response
		if err := rows.Scan(&r.ID, &r.PollID, &r.PersonName, &r.Response); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		responses = append(responses, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate responses: %w", err)
	}

	return responses, nil
}

// WithCounts returns every opinion poll with the number of responses
// recorded against it, newest poll date first. Polls without responses
// report zero.
func (s *opinionPollStore) WithCounts(ctx context.Context) ([]models.OpinionPollCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.question, p.poll_date, COUNT(r.id)
		FROM opinion_poll p
		LEFT JOIN response r ON r.poll_id = p.id
		GROUP BY p.id, p.question, p.poll_date
		ORDER BY p.poll_date DESC, p.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query poll counts: %w", err)
	}
	defer rows.Close()

	result := []models.OpinionPollCount{}
	for rows.Next() {
		var pc models.OpinionPollCount
		if err := rows.Scan(&pc.ID, &pc.Question, &pc.PollDate, &pc.NumResponses); err != nil {
			return nil, fmt.Errorf("failed to scan poll count: %w", err)
		}
		result = append(result, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate poll counts: %w", err)
	}

	return result, nil
}
