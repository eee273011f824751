package repository

import (
	"context"

	"app/internal/domain/model"
)

// 管理画面の注文一覧の絞り込み。
// Statusは pending/confirmed/cancelled。空か"all"なら全件。
type OrderListFilter struct {
	Page   int
	Limit  int
	Status string
}

type OrderRepository interface {
	Create(ctx context.Context, o model.Order) (model.Order, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	ListPaginated(ctx context.Context, f OrderListFilter) ([]model.Order, int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error

	CountByStatus(ctx context.Context, status model.OrderStatus) (int64, error)
	Count(ctx context.Context) (int64, error)
	// confirmedの合計金額（売上表示用）
	SumTotalByStatus(ctx context.Context, status model.OrderStatus) (string, error)
}
