package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/finance-flow/internal/logger"
	"github.com/MKhiriev/finance-flow/models"
)

func newTestCategoryRepo(t *testing.T) (CategoryRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewCategoryRepository(db, logger.Nop()), mock
}

func TestFindCategories(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM categories")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow(1, "Food", now).
			AddRow(2, "Housing", now))

	categories, err := repo.FindCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Category{
		{ID: 1, Name: "Food", CreatedAt: now},
		{ID: 2, Name: "Housing", CreatedAt: now},
	}, categories)
}

func TestFindCategories_Empty(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectQuery("FROM categories").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}))

	categories, err := repo.FindCategories(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestFindCategories_QueryError(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectQuery("FROM categories").WillReturnError(errors.New("boom"))

	_, err := repo.FindCategories(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindSubcategories_JoinsCategoryName(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY c.name ASC, sc.name ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category_id", "name", "category_name"}).
			AddRow(1, 1, "Groceries", "Food").
			AddRow(9, 5, "Orphan", nil))

	subs, err := repo.FindSubcategories(context.Background())
	require.NoError(t, err)
	require.Len(t, subs, 2)

	require.NotNil(t, subs[0].CategoryName)
	assert.Equal(t, "Food", *subs[0].CategoryName)
	assert.Nil(t, subs[1].CategoryName)
}

func TestFindSubcategoriesByCategory(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE category_id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category_id", "name"}).
			AddRow(1, 1, "Groceries").
			AddRow(2, 1, "Restaurants"))

	subs, err := repo.FindSubcategoriesByCategory(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []models.Subcategory{
		{ID: 1, CategoryID: 1, Name: "Groceries"},
		{ID: 2, CategoryID: 1, Name: "Restaurants"},
	}, subs)
}

func TestFindSubcategoriesByCategory_ScanError(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectQuery("FROM subcategories").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category_id", "name"}).
			AddRow("not-a-number", 1, "Groceries"))

	_, err := repo.FindSubcategoriesByCategory(context.Background(), 1)
	assert.ErrorIs(t, err, ErrScanningRow)
}
