package dto

import (
	"github.com/mkorobeynikov/fintrack/internal/domain"
	"github.com/mkorobeynikov/fintrack/internal/service/categoryservice"
)

type CategoryRequestDTO struct {
	Name string `json:"name" validate:"required" example:"Pets"`
}

type SubcategoryRequestDTO struct {
	Name string `json:"name" validate:"required" example:"Vet"`
}

type SubcategoryResponseDTO struct {
	ID         int    `json:"id"`
	CategoryID int    `json:"categoryId"`
	NameKey    string `json:"nameKey"`
	Name       string `json:"name"`
}

type CategoryResponseDTO struct {
	ID            int                      `json:"id"`
	NameKey       string                   `json:"nameKey"`
	Name          string                   `json:"name"`
	IsSystem      bool                     `json:"isSystem"`
	Subcategories []SubcategoryResponseDTO `json:"subcategories"`
}

func NewSubcategoryResponseDTO(s *domain.Subcategory) SubcategoryResponseDTO {
	return SubcategoryResponseDTO{
		ID:         s.ID,
		CategoryID: s.CategoryID,
		NameKey:    s.NameKey,
		Name:       s.Name,
	}
}

func NewCategoryResponseDTO(c categoryservice.CategoryWithSubs) CategoryResponseDTO {
	subs := make([]SubcategoryResponseDTO, 0, len(c.Subcategories))
	for i := range c.Subcategories {
		subs = append(subs, NewSubcategoryResponseDTO(&c.Subcategories[i]))
	}
	return CategoryResponseDTO{
		ID:            c.ID,
		NameKey:       c.NameKey,
		Name:          c.Name,
		IsSystem:      c.IsSystem,
		Subcategories: subs,
	}
}
