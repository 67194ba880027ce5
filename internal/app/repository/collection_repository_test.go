package repository

import (
	"testing"

	"github.com/mstore/storefront-backend/internal/app/model"
	"github.com/mstore/storefront-backend/internal/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCollectionTest(t *testing.T) (*gorm.DB, CollectionRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	repo := NewCollectionRepository(testDB)
	return testDB, repo
}

func TestCollectionRepository_Create(t *testing.T) {
	_, repo := setupCollectionTest(t)

	collection := &model.Collection{Title: "Beverages"}
	err := repo.Create(collection)
	assert.NoError(t, err)
	assert.NotZero(t, collection.ID)
}

func TestCollectionRepository_ProductsCount(t *testing.T) {
	testDB, repo := setupCollectionTest(t)

	collection := &model.Collection{Title: "Beverages"}
	require.NoError(t, repo.Create(collection))

	t.Run("Empty collection counts zero", func(t *testing.T) {
		found, err := repo.FindByID(collection.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 0, found.ProductsCount)
	})

	t.Run("Count follows product membership", func(t *testing.T) {
		for _, slug := range []string{"juice", "soda"} {
			product := model.Product{
				Title:        slug,
				Slug:         slug,
				UnitPrice:    decimal.RequireFromString("1.00"),
				CollectionID: collection.ID,
			}
			require.NoError(t, testDB.Create(&product).Error)
		}

		found, err := repo.FindByID(collection.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 2, found.ProductsCount)
	})
}

func TestCollectionRepository_FindAll_IncludesCounts(t *testing.T) {
	testDB, repo := setupCollectionTest(t)

	beverages := &model.Collection{Title: "Beverages"}
	snacks := &model.Collection{Title: "Snacks"}
	require.NoError(t, repo.Create(beverages))
	require.NoError(t, repo.Create(snacks))

	product := model.Product{
		Title:        "Juice",
		Slug:         "juice",
		UnitPrice:    decimal.RequireFromString("1.00"),
		CollectionID: beverages.ID,
	}
	require.NoError(t, testDB.Create(&product).Error)

	collections, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, collections, 2)

	counts := make(map[string]int64)
	for _, c := range collections {
		counts[c.Title] = c.ProductsCount
	}
	assert.EqualValues(t, 1, counts["Beverages"])
	assert.EqualValues(t, 0, counts["Snacks"])
}

func TestCollectionRepository_CountProducts(t *testing.T) {
	testDB, repo := setupCollectionTest(t)

	collection := &model.Collection{Title: "Beverages"}
	require.NoError(t, repo.Create(collection))

	count, err := repo.CountProducts(collection.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	product := model.Product{
		Title:        "Juice",
		Slug:         "juice",
		UnitPrice:    decimal.RequireFromString("1.00"),
		CollectionID: collection.ID,
	}
	require.NoError(t, testDB.Create(&product).Error)

	count, err = repo.CountProducts(collection.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
