package domain

import "errors"

var (
	MessageFailedGetCategories  = "failed to retrieve categories"
	MessageFailedCreateCategory = "failed to create category"
	MessageFailedUpdateCategory = "failed to update category"
	MessageFailedDeleteCategory = "failed to delete category"
	MessageCategoryNotFound     = "category not found"
	MessageCategoryNameRequired = "name is required"

	ErrCategoryNotFound = errors.New("category not found")
)

type (
	CreateCategoryRequest struct {
		Name string `json:"name" validate:"required"`
	}

	UpdateCategoryRequest struct {
		Name string `json:"name" validate:"required"`
	}
)
