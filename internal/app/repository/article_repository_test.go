package repository

import (
	"testing"

	"github.com/mstore/storefront-backend/internal/app/model"
	"github.com/mstore/storefront-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupArticleTest(t *testing.T) (*gorm.DB, ArticleRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	repo := NewArticleRepository(testDB)
	return testDB, repo
}

func TestArticleRepository_CharacterCount(t *testing.T) {
	_, repo := setupArticleTest(t)

	article := &model.Article{Title: "Greeting", Body: "Hello"}
	require.NoError(t, repo.Create(article))

	found, err := repo.FindByID(article.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, found.CharacterCount)

	found.Body = "Hello world"
	require.NoError(t, repo.Update(found))

	found, err = repo.FindByID(article.ID)
	require.NoError(t, err)
	assert.Equal(t, 11, found.CharacterCount)
}

func TestArticleRepository_CharacterCountIsNotWritable(t *testing.T) {
	_, repo := setupArticleTest(t)

	article := &model.Article{Title: "Greeting", Body: "Hello", CharacterCount: 999}
	require.NoError(t, repo.Create(article))

	found, err := repo.FindByID(article.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, found.CharacterCount)
}

func TestArticleRepository_CharacterCountCountsRunes(t *testing.T) {
	_, repo := setupArticleTest(t)

	// 5 characters, more than 5 bytes
	article := &model.Article{Title: "Unicode", Body: "héllo"}
	require.NoError(t, repo.Create(article))

	found, err := repo.FindByID(article.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, found.CharacterCount)
}

func TestArticleRepository_PublishedDefault(t *testing.T) {
	_, repo := setupArticleTest(t)

	t.Run("Defaults to published", func(t *testing.T) {
		article := &model.Article{Title: "Default", Body: "text"}
		require.NoError(t, repo.Create(article))

		found, err := repo.FindByID(article.ID)
		require.NoError(t, err)
		assert.True(t, found.Published)
	})

	t.Run("Explicit false survives create", func(t *testing.T) {
		article := &model.Article{Title: "Draft", Body: "text", Published: false}
		require.NoError(t, repo.Create(article))

		found, err := repo.FindByID(article.ID)
		require.NoError(t, err)
		assert.False(t, found.Published)
	})
}

func TestArticleRepository_FindAll_NewestFirst(t *testing.T) {
	testDB, repo := setupArticleTest(t)

	for _, title := range []string{"First", "Second"} {
		article := &model.Article{Title: title, Body: "text"}
		require.NoError(t, repo.Create(article))
	}
	// Created resolution can collide in fast tests; force distinct ordering
	require.NoError(t, testDB.Model(&model.Article{}).
		Where("title = ?", "Second").
		Update("created", gorm.Expr("datetime('now', '+1 hour')")).Error)

	articles, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "Second", articles[0].Title)
}
