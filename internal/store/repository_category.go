package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/finance-flow/internal/logger"
	"github.com/MKhiriev/finance-flow/models"
)

type categoryRepository struct {
	*DB
	logger *logger.Logger
}

func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	return &categoryRepository{
		DB:     db,
		logger: logger,
	}
}

// FindCategories lists every category ordered by name.
func (c *categoryRepository) FindCategories(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, findCategories)
	if err != nil {
		log.Err(err).Str("func", "categoryRepository.FindCategories").Msg("failed to query categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0, 16)
	for rows.Next() {
		var category models.Category
		if err = rows.Scan(&category.ID, &category.Name, &category.CreatedAt); err != nil {
			log.Err(err).Str("func", "categoryRepository.FindCategories").Msg("failed to scan category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}

// FindSubcategories lists every subcategory with its category name, ordered
// by category name and then by name.
func (c *categoryRepository) FindSubcategories(ctx context.Context) ([]models.Subcategory, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, findAllSubcategories)
	if err != nil {
		log.Err(err).Str("func", "categoryRepository.FindSubcategories").Msg("failed to query subcategories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	subcategories := make([]models.Subcategory, 0, 32)
	for rows.Next() {
		var sub models.Subcategory
		if err = rows.Scan(&sub.ID, &sub.CategoryID, &sub.Name, &sub.CategoryName); err != nil {
			log.Err(err).Str("func", "categoryRepository.FindSubcategories").Msg("failed to scan subcategory row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		subcategories = append(subcategories, sub)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return subcategories, nil
}

// FindSubcategoriesByCategory lists the subcategories of one category
// ordered by name. An unknown category yields an empty list.
func (c *categoryRepository) FindSubcategoriesByCategory(ctx context.Context, categoryID int64) ([]models.Subcategory, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, findSubcategoriesByCategory, categoryID)
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.FindSubcategoriesByCategory").
			Int64("category_id", categoryID).
			Msg("failed to query subcategories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	subcategories := make([]models.Subcategory, 0, 8)
	for rows.Next() {
		var sub models.Subcategory
		if err = rows.Scan(&sub.ID, &sub.CategoryID, &sub.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		subcategories = append(subcategories, sub)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return subcategories, nil
}
