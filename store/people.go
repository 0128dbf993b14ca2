// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/polls/models"
)

type peopleStore struct {
	store
}

type PeopleStore interface {
	Create(ctx context.Context) (models.Person, error)
	All(ctx context.Context) ([]models.Person, error)
}

func NewPeopleStore(db *sql.DB) PeopleStore {
	return &peopleStore{
		store: store{
			db: db,
		},
	}
}

func (s *peopleStore) Create(ctx context.Context) (models.Person, error) {
	var p models.Person
	err := s.db.QueryRowContext(ctx, `INSERT INTO person DEFAULT VALUES RETURNING id`).Scan(&p.ID)
	if err != nil {
		return models.Person{}, fmt.Errorf("failed to insert person: %w", err)
	}
	return p, nil
}

func (s *peopleStore) All(ctx context.Context) ([]models.Person, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM person ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query people: %w", err)
	}
	defer rows.Close()

	people := []models.Person{}
	for rows.Next() {
		var p models.Person
		if err := rows.Scan(&p.ID); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate people: %w", err)
	}

	return people, nil
}
