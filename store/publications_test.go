// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/polls/store"
	"github.com/danielhkuo/polls/testutil"
)

func TestPublicationStore_ListOrderedByTitle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	s := store.NewPublicationStore(db)
	ctx := context.Background()
	for _, title := range []string{"The Python Journal", "Science News", "Science Weekly"} {
		_, err := s.Create(ctx, title)
		require.NoError(t, err)
	}

	pubs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, pubs, 3)
	assert.Equal(t, "Science News", pubs[0].Title)
	assert.Equal(t, "Science Weekly", pubs[1].Title)
	assert.Equal(t, "The Python Journal", pubs[2].Title)
}

func TestArticleStore_ManyToMany(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	pubs := store.NewPublicationStore(db)
	articles := store.NewArticleStore(db)
	ctx := context.Background()

	p1, err := pubs.Create(ctx, "The Python Journal")
	require.NoError(t, err)
	p2, err := pubs.Create(ctx, "Science News")
	require.NoError(t, err)

	a1, err := articles.Create(ctx, "NASA uses Python", []int64{p1.ID, p2.ID})
	require.NoError(t, err)
	require.Len(t, a1.Publications, 2)
	// Publications come back ordered by title
	assert.Equal(t, "Science News", a1.Publications[0].Title)
	assert.Equal(t, "The Python Journal", a1.Publications[1].Title)

	a2, err := articles.Create(ctx, "Django lets you build web apps easily", nil)
	require.NoError(t, err)
	assert.Empty(t, a2.Publications)

	require.NoError(t, articles.AddPublication(ctx, a2.ID, p1.ID))
	// Linking twice is a no-op
	require.NoError(t, articles.AddPublication(ctx, a2.ID, p1.ID))

	list, err := articles.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Django lets you build web apps easily", list[0].Headline)
	require.Len(t, list[0].Publications, 1)
	assert.Equal(t, p1.ID, list[0].Publications[0].ID)
	assert.Equal(t, "NASA uses Python", list[1].Headline)
	assert.Len(t, list[1].Publications, 2)

	inJournal, err := pubs.Articles(ctx, p1.ID)
	require.NoError(t, err)
	require.Len(t, inJournal, 2)
	assert.Equal(t, "Django lets you build web apps easily", inJournal[0].Headline)

	inNews, err := pubs.Articles(ctx, p2.ID)
	require.NoError(t, err)
	require.Len(t, inNews, 1)
	assert.Equal(t, a1.ID, inNews[0].ID)
}

func TestArticleStore_UnknownPublication(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	articles := store.NewArticleStore(db)
	ctx := context.Background()

	_, err := articles.Create(ctx, "Orphan", []int64{12345})
	assert.ErrorIs(t, err, store.ErrNotFound)
	// The article insert was rolled back
	assert.Equal(t, 0, testutil.CountRows(t, db, "article"))

	a, err := articles.Create(ctx, "Real", nil)
	require.NoError(t, err)
	assert.ErrorIs(t, articles.AddPublication(ctx, a.ID, 12345), store.ErrNotFound)
	assert.ErrorIs(t, articles.AddPublication(ctx, 999, 1), store.ErrNotFound)
}

func TestArticleStore_DeleteRemovesLinks(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	pubs := store.NewPublicationStore(db)
	articles := store.NewArticleStore(db)
	ctx := context.Background()

	p, err := pubs.Create(ctx, "Science News")
	require.NoError(t, err)
	a, err := articles.Create(ctx, "Headline", []int64{p.ID})
	require.NoError(t, err)

	require.NoError(t, articles.Delete(ctx, a.ID))
	assert.Equal(t, 0, testutil.CountRows(t, db, "article_publication"))
	assert.Equal(t, 1, testutil.CountRows(t, db, "publication"))

	_, err = articles.Get(ctx, a.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPeopleStore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	s := store.NewPeopleStore(db)
	ctx := context.Background()

	p1, err := s.Create(ctx)
	require.NoError(t, err)
	p2, err := s.Create(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, p1.ID, p2.ID)

	people, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, p1.ID, people[0].ID)
	assert.Equal(t, p2.ID, people[1].ID)
}
