// filepath: internal/services/category_service.go
package services

import (
	"fmt"
	"strings"

	"shopfront/internal/models"
	"shopfront/internal/store"
)

type categoryService struct {
	store *store.Store
}

// NewCategoryService creates the category service.
func NewCategoryService(st *store.Store) CategoryService {
	return &categoryService{store: st}
}

var _ CategoryService = (*categoryService)(nil)

// CategorySlug normalizes a category ID: lowercase with all whitespace
// removed.
func CategorySlug(id string) string {
	return strings.Join(strings.Fields(strings.ToLower(id)), "")
}

func (s *categoryService) List() ([]models.Category, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return models.DefaultCategories(), nil
	}
	return doc.Categories, nil
}

func (s *categoryService) Create(payload models.CategoryPayload) (*models.Category, error) {
	category, err := buildCategory(payload)
	if err != nil {
		return nil, err
	}

	doc, err := s.store.Mutate(func(doc *models.Document) error {
		for _, c := range doc.Categories {
			if c.ID == category.ID {
				return fmt.Errorf("%w: category ID %q already exists", ErrConflict, category.ID)
			}
		}
		doc.Categories = append(doc.Categories, category)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return findCategory(doc, category.ID), nil
}

// Update edits a category in place. Renaming the ID is allowed and does not
// touch products that still reference the old one; they simply stop matching
// a filter until reassigned.
func (s *categoryService) Update(id string, payload models.CategoryPayload) (*models.Category, error) {
	if id == models.AllCategoryID {
		return nil, fmt.Errorf("%w: the built-in %q category cannot be modified", ErrForbidden, models.AllCategoryID)
	}
	category, err := buildCategory(payload)
	if err != nil {
		return nil, err
	}
	if category.ID == models.AllCategoryID {
		return nil, fmt.Errorf("%w: the built-in %q category cannot be replaced", ErrForbidden, models.AllCategoryID)
	}

	doc, err := s.store.Mutate(func(doc *models.Document) error {
		idx := -1
		for i, c := range doc.Categories {
			if c.ID == id {
				idx = i
			} else if c.ID == category.ID {
				return fmt.Errorf("%w: category ID %q already exists", ErrConflict, category.ID)
			}
		}
		if idx < 0 {
			return ErrNotFound
		}
		doc.Categories[idx] = category
		return nil
	})
	if err != nil {
		return nil, err
	}
	return findCategory(doc, category.ID), nil
}

func (s *categoryService) Delete(id string) error {
	if id == models.AllCategoryID {
		return fmt.Errorf("%w: the built-in %q category cannot be deleted", ErrForbidden, models.AllCategoryID)
	}
	_, err := s.store.Mutate(func(doc *models.Document) error {
		for i := range doc.Categories {
			if doc.Categories[i].ID == id {
				doc.Categories = append(doc.Categories[:i], doc.Categories[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
	return err
}

func buildCategory(p models.CategoryPayload) (models.Category, error) {
	slug := CategorySlug(p.ID)
	if slug == "" || p.Name == "" || p.NameKm == "" {
		return models.Category{}, validationError("please fill in the category ID and both names")
	}
	return models.Category{ID: slug, Name: p.Name, NameKm: p.NameKm}, nil
}

func findCategory(doc *models.Document, id string) *models.Category {
	for i := range doc.Categories {
		if doc.Categories[i].ID == id {
			return &doc.Categories[i]
		}
	}
	return nil
}
