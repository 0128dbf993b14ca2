// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/polls/models"
)

type publicationStore struct {
	store
}

type PublicationStore interface {
	Create(ctx context.Context, title string) (models.Publication, error)
	Get(ctx context.Context, id int64) (models.Publication, error)
	List(ctx context.Context) ([]models.Publication, error)
	Articles(ctx context.Context, publicationID int64) ([]models.Article, error)
}

func NewPublicationStore(db *sql.DB) PublicationStore {
	return &publicationStore{
		store: store{
			db: db,
		},
	}
}

func (s *publicationStore) Create(ctx context.Context, title string) (models.Publication, error) {
	p := models.Publication{Title: title}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO publication (title)
		VALUES ($1)
		RETURNING id
	`, title).Scan(&p.ID)
	if err != nil {
		return models.Publication{}, fmt.Errorf("failed to insert publication: %w", err)
	}
	return p, nil
}

func (s *publicationStore) Get(ctx context.Context, id int64) (models.Publication, error) {
	var p models.Publication
	err := s.db.QueryRowContext(ctx, `SELECT id, title FROM publication WHERE id = $1`, id).Scan(&p.ID, &p.Title)
	if err != nil {
		return models.Publication{}, fmt.Errorf("failed to get publication %d: %w", id, notFound(err))
	}
	return p, nil
}

// List returns all publications ordered by title.
func (s *publicationStore) List(ctx context.Context) ([]models.Publication, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title FROM publication ORDER BY title, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query publications: %w", err)
	}
	defer rows.Close()

	publications := []models.Publication{}
	for rows.Next() {
		var p models.Publication
		if err := rows.Scan(&p.ID, &p.Title); err != nil {
			return nil, fmt.Errorf("failed to scan publication: %w", err)
		}
		publications = append(publications, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate publications: %w", err)
	}

	return publications, nil
}

// Articles returns the articles of one publication ordered by headline.
// The Publications field of each article is left empty.
func (s *publicationStore) Articles(ctx context.Context, publicationID int64) ([]models.Article, error) {
	if _, err := s.Get(ctx, publicationID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.headline
		FROM article a
		JOIN article_publication ap ON ap.article_id = a.id
		WHERE ap.publication_id = $1
		ORDER BY a.headline, a.id
	`, publicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	articles := []models.Article{}
	for rows.Next() {
		a := models.Article{Publications: []models.Publication{}}
		if err := rows.Scan(&a.ID, &a.Headline); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate articles: %w", err)
	}

	return articles, nil
}

type articleStore struct {
	store
}

type ArticleStore interface {
	Create(ctx context.Context, headline string, publicationIDs []int64) (models.Article, error)
	Get(ctx context.Context, id int64) (models.Article, error)
	List(ctx context.Context) ([]models.Article, error)
	AddPublication(ctx context.Context, articleID, publicationID int64) error
	Delete(ctx context.Context, id int64) error
}

func NewArticleStore(db *sql.DB) ArticleStore {
	return &articleStore{
		store: store{
			db: db,
		},
	}
}

// Create inserts an article and links it to existing publications.
// Unknown publication ids abort the whole insert with ErrNotFound.
func (s *articleStore) Create(ctx context.Context, headline string, publicationIDs []int64) (models.Article, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Article{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	a := models.Article{Headline: headline}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO article (headline)
		VALUES ($1)
		RETURNING id
	`, headline).Scan(&a.ID)
	if err != nil {
		return models.Article{}, fmt.Errorf("failed to insert article: %w", err)
	}

	for _, pubID := range publicationIDs {
		if err := link(ctx, tx, a.ID, pubID); err != nil {
			return models.Article{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Article{}, fmt.Errorf("failed to commit article: %w", err)
	}

	return s.Get(ctx, a.ID)
}

func (s *articleStore) Get(ctx context.Context, id int64) (models.Article, error) {
	a := models.Article{}
	err := s.db.QueryRowContext(ctx, `SELECT id, headline FROM article WHERE id = $1`, id).Scan(&a.ID, &a.Headline)
	if err != nil {
		return models.Article{}, fmt.Errorf("failed to get article %d: %w", id, notFound(err))
	}

	byArticle, err := s.publicationsByArticle(ctx, `WHERE ap.article_id = $1`, id)
	if err != nil {
		return models.Article{}, err
	}
	a.Publications = byArticle[a.ID]
	if a.Publications == nil {
		a.Publications = []models.Publication{}
	}

	return a, nil
}

// List returns all articles ordered by headline, each with its
// publications ordered by title.
func (s *articleStore) List(ctx context.Context) ([]models.Article, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, headline FROM article ORDER BY headline, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}

	articles := []models.Article{}
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(&a.ID, &a.Headline); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, a)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to iterate articles: %w", err)
	}

	byArticle, err := s.publicationsByArticle(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range articles {
		articles[i].Publications = byArticle[articles[i].ID]
		if articles[i].Publications == nil {
			articles[i].Publications = []models.Publication{}
		}
	}

	return articles, nil
}

// AddPublication links an article to a publication. Linking twice is a no-op.
func (s *articleStore) AddPublication(ctx context.Context, articleID, publicationID int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM article WHERE id = $1`, articleID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to get article %d: %w", articleID, notFound(err))
	}

	if err := link(ctx, tx, articleID, publicationID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit link: %w", err)
	}
	return nil
}

// Delete removes an article and its publication links.
func (s *articleStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM article WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete article %d: %w", id, err)
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("failed to delete article %d: %w", id, err)
	}
	return nil
}

func link(ctx context.Context, tx *sql.Tx, articleID, publicationID int64) error {
	var exists int
	err := tx.QueryRowContext(ctx, `SELECT 1 FROM publication WHERE id = $1`, publicationID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to get publication %d: %w", publicationID, notFound(err))
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO article_publication (article_id, publication_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, articleID, publicationID)
	if err != nil {
		return fmt.Errorf("failed to link article %d to publication %d: %w", articleID, publicationID, err)
	}
	return nil
}

func (s *articleStore) publicationsByArticle(ctx context.Context, where string, args ...any) (map[int64][]models.Publication, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT ap.article_id, p.id, p.title
		FROM article_publication ap
		JOIN publication p ON p.id = ap.publication_id
		`+where+`
		ORDER BY p.title, p.id
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query article publications: %w", err)
	}
	defer rows.Close()

	byArticle := make(map[int64][]models.Publication)
	for rows.Next() {
		var articleID int64
		var p models.Publication
		if err := rows.Scan(&articleID, &p.ID, &p.Title); err != nil {
			return nil, fmt.Errorf("failed to scan article publication: %w", err)
		}
		byArticle[articleID] = append(byArticle[articleID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate article publications: %w", err)
	}

	return byArticle, nil
}
