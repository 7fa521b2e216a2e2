package category

import (
	"Wardrobe-Backend/domain"
	"Wardrobe-Backend/entities"
	"Wardrobe-Backend/internal/utils"
	"Wardrobe-Backend/pkg/store"
	"context"
)

type (
	CategoryService interface {
		GetCategories(ctx context.Context) ([]entities.Category, error)
		GetCategoryByID(ctx context.Context, id string) (entities.Category, error)
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (entities.Category, error)
		UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) (entities.Category, error)
		DeleteCategory(ctx context.Context, id string) error
	}

	categoryService struct {
		categoryRepository CategoryRepository
	}
)

func NewCategoryService(categoryRepository CategoryRepository) CategoryService {
	return &categoryService{categoryRepository: categoryRepository}
}

func (s *categoryService) GetCategories(ctx context.Context) ([]entities.Category, error) {
	docs, err := s.categoryRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]entities.Category, 0, len(docs))
	for _, doc := range docs {
		categories = append(categories, toCategory(doc))
	}
	return categories, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id string) (entities.Category, error) {
	doc, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if store.IsNotFound(err) {
			return entities.Category{}, domain.ErrCategoryNotFound
		}
		return entities.Category{}, err
	}
	return toCategory(doc), nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (entities.Category, error) {
	id, err := s.categoryRepository.CreateCategory(ctx, req.Name)
	if err != nil {
		return entities.Category{}, err
	}
	return entities.Category{ID: id, Name: req.Name}, nil
}

// UpdateCategory reads before writing to report a missing target; the
// read-then-merge pair is not guarded against concurrent writers.
func (s *categoryService) UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) (entities.Category, error) {
	if _, err := s.categoryRepository.GetCategoryByID(ctx, id); err != nil {
		if store.IsNotFound(err) {
			return entities.Category{}, domain.ErrCategoryNotFound
		}
		return entities.Category{}, err
	}

	if err := s.categoryRepository.MergeCategory(ctx, id, req.Name); err != nil {
		return entities.Category{}, err
	}
	return entities.Category{ID: id, Name: req.Name}, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	return s.categoryRepository.DeleteCategory(ctx, id)
}

func toCategory(doc store.Document) entities.Category {
	name, _ := utils.CoerceString(doc.Data["name"])
	return entities.Category{ID: doc.ID, Name: name}
}
