package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/finance-flow/internal/logger"
	"github.com/MKhiriev/finance-flow/internal/store"
	"github.com/MKhiriev/finance-flow/models"
)

type categoryService struct {
	categoryRepository store.CategoryRepository
	logger             *logger.Logger
}

func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		logger:             logger,
	}
}

func (s *categoryService) Categories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepository.FindCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) Subcategories(ctx context.Context) ([]models.Subcategory, error) {
	subcategories, err := s.categoryRepository.FindSubcategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing subcategories: %w", err)
	}
	return subcategories, nil
}

// SubcategoriesByCategory lists the subcategories of one category. An
// unknown category yields an empty list, not an error.
func (s *categoryService) SubcategoriesByCategory(ctx context.Context, categoryID int64) ([]models.Subcategory, error) {
	subcategories, err := s.categoryRepository.FindSubcategoriesByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("error listing subcategories of category %d: %w", categoryID, err)
	}
	return subcategories, nil
}
