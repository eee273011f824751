package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 一覧はどの画面でもこの形でページ情報を返す。
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// NewPagination は件数からページ情報を組み立てる。
func NewPagination(page int, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

// ツアーの永続化（保存・取得）だけを約束。
type TourRepository interface {
	ListPaginated(ctx context.Context, page int, limit int) ([]model.Tour, int64, error)
	ListFeatured(ctx context.Context, limit int) ([]model.Tour, error)
	FindByID(ctx context.Context, id int64) (model.Tour, error)

	Create(ctx context.Context, t model.Tour) (model.Tour, error)
	Update(ctx context.Context, t model.Tour) error
	Delete(ctx context.Context, id int64) error

	Count(ctx context.Context) (int64, error)
}
