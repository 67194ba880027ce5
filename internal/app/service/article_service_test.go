package service

import (
	"testing"

	"github.com/mstore/storefront-backend/internal/app/repository"
	"github.com/mstore/storefront-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupArticleServiceTest(t *testing.T) ArticleService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	return NewArticleService(repository.NewArticleRepository(testDB))
}

func TestArticleService_CreateComputesCharacterCount(t *testing.T) {
	articleService := setupArticleServiceTest(t)

	article, err := articleService.CreateArticle(ArticleInput{
		Title: "Greeting",
		Body:  "Hello",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, article.CharacterCount)
	assert.True(t, article.Published)
}

func TestArticleService_UpdateBodyRecomputesCount(t *testing.T) {
	articleService := setupArticleServiceTest(t)

	article, err := articleService.CreateArticle(ArticleInput{Title: "Greeting", Body: "Hello"})
	require.NoError(t, err)

	body := "Hello world"
	updated, err := articleService.UpdateArticle(article.ID, ArticleUpdate{Body: &body})
	require.NoError(t, err)
	assert.Equal(t, 11, updated.CharacterCount)
	assert.Equal(t, "Greeting", updated.Title)
}

func TestArticleService_UpdateWithoutBodyKeepsCount(t *testing.T) {
	articleService := setupArticleServiceTest(t)

	article, err := articleService.CreateArticle(ArticleInput{Title: "Greeting", Body: "Hello"})
	require.NoError(t, err)

	title := "Renamed"
	updated, err := articleService.UpdateArticle(article.ID, ArticleUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, 5, updated.CharacterCount)
}

func TestArticleService_ExplicitUnpublished(t *testing.T) {
	articleService := setupArticleServiceTest(t)

	published := false
	article, err := articleService.CreateArticle(ArticleInput{
		Title:     "Draft",
		Body:      "text",
		Published: &published,
	})
	require.NoError(t, err)

	found, err := articleService.GetArticleByID(article.ID)
	require.NoError(t, err)
	assert.False(t, found.Published)
}

func TestArticleService_Delete(t *testing.T) {
	articleService := setupArticleServiceTest(t)

	article, err := articleService.CreateArticle(ArticleInput{Title: "Gone", Body: "text"})
	require.NoError(t, err)

	require.NoError(t, articleService.DeleteArticle(article.ID))

	_, err = articleService.GetArticleByID(article.ID)
	assert.ErrorIs(t, err, ErrArticleNotFound)

	err = articleService.DeleteArticle(article.ID)
	assert.ErrorIs(t, err, ErrArticleNotFound)
}
