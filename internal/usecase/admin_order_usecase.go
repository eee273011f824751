package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type AdminOrderUsecase struct {
	orderRepo repo.OrderRepository
	tourRepo  repo.TourRepository
}

func NewAdminOrderUsecase(orderRepo repo.OrderRepository, tourRepo repo.TourRepository) *AdminOrderUsecase {
	return &AdminOrderUsecase{orderRepo: orderRepo, tourRepo: tourRepo}
}

type OrderListOutput struct {
	Orders     []model.Order   `json:"orders"`
	Pagination repo.Pagination `json:"pagination"`
}

// List は注文一覧（ページング＋ステータス絞り込み）。
func (u *AdminOrderUsecase) List(ctx context.Context, page int, limit int, status string) (OrderListOutput, error) {
	if page < 1 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if limit < 1 || limit > 100 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	status = strings.TrimSpace(status)
	switch status {
	case "", "all", "pending", "confirmed", "cancelled":
	default:
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	orders, total, err := u.orderRepo.ListPaginated(ctx, repo.OrderListFilter{
		Page:   page,
		Limit:  limit,
		Status: status,
	})
	if err != nil {
		return OrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return OrderListOutput{
		Orders:     orders,
		Pagination: repo.NewPagination(page, limit, total),
	}, nil
}

func (u *AdminOrderUsecase) Detail(ctx context.Context, orderID int64) (model.Order, error) {
	if orderID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orderRepo.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return o, nil
}

// UpdateStatus は pending/confirmed/cancelled のどれかに更新する。
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	newStatus := strings.TrimSpace(status)
	switch newStatus {
	case "pending", "confirmed", "cancelled":
	default:
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	err := u.orderRepo.UpdateStatus(ctx, orderID, model.OrderStatus(newStatus))
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

type AdminStats struct {
	TotalTours    int64  `json:"totalTours"`
	TotalOrders   int64  `json:"totalOrders"`
	PendingOrders int64  `json:"pendingOrders"`
	Revenue       string `json:"revenue"`
}

// Stats はダッシュボード用のサマリ。売上はconfirmedの合計。
func (u *AdminOrderUsecase) Stats(ctx context.Context) (AdminStats, error) {
	tours, err := u.tourRepo.Count(ctx)
	if err != nil {
		return AdminStats{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	orders, err := u.orderRepo.Count(ctx)
	if err != nil {
		return AdminStats{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	pending, err := u.orderRepo.CountByStatus(ctx, model.OrderStatusPending)
	if err != nil {
		return AdminStats{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	revenue, err := u.orderRepo.SumTotalByStatus(ctx, model.OrderStatusConfirmed)
	if err != nil {
		return AdminStats{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return AdminStats{
		TotalTours:    tours,
		TotalOrders:   orders,
		PendingOrders: pending,
		Revenue:       revenue,
	}, nil
}
