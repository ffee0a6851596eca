package dto

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/utils/validation"
)

// CreateCategoryRequest defines the data needed to add a category.
type CreateCategoryRequest struct {
	Name  string `json:"name" example:"Pets"`
	Color string `json:"color,omitempty" example:"#9d4edd"`
	Type  string `json:"type,omitempty" example:"expense"`
}

// ToInput converts the request to the raw validation input.
func (r CreateCategoryRequest) ToInput() validation.CategoryInput {
	return validation.CategoryInput{Name: r.Name, Color: r.Color, Type: r.Type}
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Type  string `json:"type,omitempty"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO.
func ToCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Color: c.Color, Type: string(c.Type)}
}

// ToListCategoryResponse converts a slice of categories.
func ToListCategoryResponse(cs []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(cs))
	for i, c := range cs {
		res[i] = ToCategoryResponse(c)
	}
	return res
}
