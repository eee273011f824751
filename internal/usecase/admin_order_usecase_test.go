package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminOrderUsecase_List_StatusFilter(t *testing.T) {
	ctx := context.Background()

	oRepo := new(CheckoutOrderRepoMock)
	uc := usecase.NewAdminOrderUsecase(oRepo, new(TourTourRepoMock))

	oRepo.On("ListPaginated", mock.Anything, repo.OrderListFilter{
		Page:   1,
		Limit:  15,
		Status: "pending",
	}).Return([]model.Order{{ID: 1}}, int64(1), nil)

	out, err := uc.List(ctx, 1, 15, "pending")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out.Orders))
	assert.Equal(t, 1, out.Pagination.TotalPages)
	assert.False(t, out.Pagination.HasNext)

	oRepo.AssertExpectations(t)
}

func TestAdminOrderUsecase_List_InvalidStatus(t *testing.T) {
	uc := usecase.NewAdminOrderUsecase(new(CheckoutOrderRepoMock), new(TourTourRepoMock))

	_, err := uc.List(context.Background(), 1, 15, "shipped")
	assertErrContains(t, err, "invalid status")
}

func TestAdminOrderUsecase_Detail_NotFound(t *testing.T) {
	ctx := context.Background()

	oRepo := new(CheckoutOrderRepoMock)
	uc := usecase.NewAdminOrderUsecase(oRepo, new(TourTourRepoMock))

	oRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.Detail(ctx, 5)
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}

func TestAdminOrderUsecase_UpdateStatus_Success(t *testing.T) {
	ctx := context.Background()

	oRepo := new(CheckoutOrderRepoMock)
	uc := usecase.NewAdminOrderUsecase(oRepo, new(TourTourRepoMock))

	oRepo.On("UpdateStatus", mock.Anything, int64(1), model.OrderStatusConfirmed).Return(nil)

	assert.NoError(t, uc.UpdateStatus(ctx, 1, "confirmed"))
	oRepo.AssertExpectations(t)
}

func TestAdminOrderUsecase_UpdateStatus_InvalidStatus(t *testing.T) {
	oRepo := new(CheckoutOrderRepoMock)
	uc := usecase.NewAdminOrderUsecase(oRepo, new(TourTourRepoMock))

	err := uc.UpdateStatus(context.Background(), 1, "done")
	assertErrContains(t, err, "invalid status")

	oRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminOrderUsecase_Stats(t *testing.T) {
	ctx := context.Background()

	oRepo := new(CheckoutOrderRepoMock)
	tRepo := new(TourTourRepoMock)
	uc := usecase.NewAdminOrderUsecase(oRepo, tRepo)

	tRepo.On("Count", mock.Anything).Return(int64(12), nil)
	oRepo.On("Count", mock.Anything).Return(int64(40), nil)
	oRepo.On("CountByStatus", mock.Anything, model.OrderStatusPending).Return(int64(7), nil)
	oRepo.On("SumTotalByStatus", mock.Anything, model.OrderStatusConfirmed).Return("1234.50", nil)

	stats, err := uc.Stats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalTours)
	assert.Equal(t, int64(40), stats.TotalOrders)
	assert.Equal(t, int64(7), stats.PendingOrders)
	assert.Equal(t, "1234.50", stats.Revenue)
}
