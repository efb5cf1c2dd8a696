// internals/features/library/categories/dto/category_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "perpustakaanku_backend/internals/features/library/categories/model"
)

/* =========================
   REQUEST
   ========================= */

type CategoryCreateRequest struct {
	CategoryName string  `json:"category_name" validate:"required,min=2,max=120"`
	CategorySlug *string `json:"category_slug,omitempty" validate:"omitempty,max=160"`
	CategoryDesc *string `json:"category_desc,omitempty"`
}

type CategoryUpdateRequest struct {
	CategoryName *string `json:"category_name,omitempty" validate:"omitempty,min=2,max=120"`
	CategorySlug *string `json:"category_slug,omitempty" validate:"omitempty,max=160"`
	CategoryDesc *string `json:"category_desc,omitempty"`
}

/* =========================
   NORMALIZER
   ========================= */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func (r *CategoryCreateRequest) Normalize() {
	r.CategoryName = strings.TrimSpace(r.CategoryName)
	r.CategorySlug = trimPtr(r.CategorySlug)
	r.CategoryDesc = trimPtr(r.CategoryDesc)
}

func (r *CategoryUpdateRequest) Normalize() {
	r.CategoryName = trimPtr(r.CategoryName)
	r.CategorySlug = trimPtr(r.CategorySlug)
	r.CategoryDesc = trimPtr(r.CategoryDesc)
}

func (r *CategoryCreateRequest) ToModel() *model.CategoryModel {
	m := &model.CategoryModel{
		CategoryName: r.CategoryName,
		CategoryDesc: r.CategoryDesc,
	}
	if r.CategorySlug != nil {
		m.CategorySlug = *r.CategorySlug
	}
	return m
}

// ApplyToModel menerapkan partial update ke model yang sudah dimuat.
func (r *CategoryUpdateRequest) ApplyToModel(m *model.CategoryModel) {
	if r.CategoryName != nil {
		m.CategoryName = *r.CategoryName
	}
	if r.CategorySlug != nil {
		m.CategorySlug = *r.CategorySlug
	}
	if r.CategoryDesc != nil {
		m.CategoryDesc = r.CategoryDesc
	}
}

/* =========================
   RESPONSE
   ========================= */

type CategoryResponse struct {
	CategoryID        uuid.UUID  `json:"category_id"`
	CategoryName      string     `json:"category_name"`
	CategorySlug      string     `json:"category_slug"`
	CategoryDesc      *string    `json:"category_desc,omitempty"`
	CategoryCreatedAt time.Time  `json:"category_created_at"`
	CategoryUpdatedAt *time.Time `json:"category_updated_at,omitempty"`
}

func ToCategoryResponse(m *model.CategoryModel) CategoryResponse {
	return CategoryResponse{
		CategoryID:        m.CategoryID,
		CategoryName:      m.CategoryName,
		CategorySlug:      m.CategorySlug,
		CategoryDesc:      m.CategoryDesc,
		CategoryCreatedAt: m.CategoryCreatedAt,
		CategoryUpdatedAt: m.CategoryUpdatedAt,
	}
}

func ToCategoryResponses(ms []model.CategoryModel) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToCategoryResponse(&ms[i]))
	}
	return out
}
