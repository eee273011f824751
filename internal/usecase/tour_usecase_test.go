package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// 共通ヘルパー
// =====================

func assertErrContains(t *testing.T, err error, want string) {
	t.Helper()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), want)
}

// =====================
// Mocks（衝突回避の命名）
// =====================

type TourTourRepoMock struct{ mock.Mock }

func (m *TourTourRepoMock) ListPaginated(ctx context.Context, page int, limit int) ([]model.Tour, int64, error) {
	args := m.Called(ctx, page, limit)
	items, _ := args.Get(0).([]model.Tour)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *TourTourRepoMock) ListFeatured(ctx context.Context, limit int) ([]model.Tour, error) {
	args := m.Called(ctx, limit)
	items, _ := args.Get(0).([]model.Tour)
	return items, args.Error(1)
}

func (m *TourTourRepoMock) FindByID(ctx context.Context, id int64) (model.Tour, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(model.Tour)
	return t, args.Error(1)
}

func (m *TourTourRepoMock) Create(ctx context.Context, t model.Tour) (model.Tour, error) {
	args := m.Called(ctx, t)
	created, _ := args.Get(0).(model.Tour)
	return created, args.Error(1)
}

func (m *TourTourRepoMock) Update(ctx context.Context, t model.Tour) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TourTourRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *TourTourRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func validTourInput() validator.TourInput {
	return validator.TourInput{
		Title:       "Edinburgh Heritage Walk",
		Description: "Explore Edinburgh's UNESCO World Heritage sites on foot, learning about sustainable urban development.",
		Price:       "75.00",
		Duration:    "1 day",
		Location:    "Edinburgh",
		Itinerary:   []string{"Morning: Royal Mile tour"},
		Images:      []string{"https://example.com/a.jpg"},
		SDGGoals:    []int{11},
		MaxCapacity: 20,
	}
}

// =====================
// Public: List / Featured / Detail
// =====================

func TestTourUsecase_ListTours_InvalidPage(t *testing.T) {
	uc := usecase.NewTourUsecase(new(TourTourRepoMock))

	_, err := uc.ListTours(context.Background(), 0, 9)
	assertErrContains(t, err, "invalid page")
}

func TestTourUsecase_ListTours_InvalidLimit(t *testing.T) {
	uc := usecase.NewTourUsecase(new(TourTourRepoMock))

	_, err := uc.ListTours(context.Background(), 1, 101)
	assertErrContains(t, err, "invalid limit")
}

func TestTourUsecase_ListTours_PaginationEnvelope(t *testing.T) {
	ctx := context.Background()

	tRepo := new(TourTourRepoMock)
	uc := usecase.NewTourUsecase(tRepo)

	items := []model.Tour{{ID: 1, Title: "A"}}
	tRepo.On("ListPaginated", mock.Anything, 2, 9).Return(items, int64(20), nil)

	out, err := uc.ListTours(ctx, 2, 9)
	assert.NoError(t, err)
	assert.Equal(t, 2, out.Pagination.CurrentPage)
	assert.Equal(t, 3, out.Pagination.TotalPages)
	assert.Equal(t, int64(20), out.Pagination.TotalItems)
	assert.True(t, out.Pagination.HasNext)
	assert.True(t, out.Pagination.HasPrev)

	tRepo.AssertExpectations(t)
}

func TestTourUsecase_FeaturedTours_Success(t *testing.T) {
	ctx := context.Background()

	tRepo := new(TourTourRepoMock)
	uc := usecase.NewTourUsecase(tRepo)

	tRepo.On("ListFeatured", mock.Anything, 6).Return([]model.Tour{{ID: 1}}, nil)

	out, err := uc.FeaturedTours(ctx, 6)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out))
}

func TestTourUsecase_GetTourDetail_NotFound(t *testing.T) {
	ctx := context.Background()

	tRepo := new(TourTourRepoMock)
	uc := usecase.NewTourUsecase(tRepo)

	tRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Tour{}, repo.ErrNotFound)

	_, err := uc.GetTourDetail(ctx, 99)
	assertErrContains(t, err, "not found")
}

// =====================
// Admin: Create / Update / Delete
// =====================

func TestTourUsecase_AdminCreateTour_ValidationBlocks(t *testing.T) {
	ctx := context.Background()

	tRepo := new(TourTourRepoMock)
	uc := usecase.NewTourUsecase(tRepo)

	in := validTourInput()
	in.Price = "free"

	_, err := uc.AdminCreateTour(ctx, in)
	ve, ok := usecase.AsValidationError(err)
	assert.True(t, ok)
	assert.NotEmpty(t, ve.Fields)

	//バリデーションNGならDBに触らない
	tRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTourUsecase_AdminCreateTour_NormalizesPrice(t *testing.T) {
	ctx := context.Background()

	tRepo := new(TourTourRepoMock)
	uc := usecase.NewTourUsecase(tRepo)

	in := validTourInput()
	in.Price = "75.5"

	tRepo.On("Create", mock.Anything, mock.MatchedBy(func(tour model.Tour) bool {
		return tour.Price == "75.50"
	})).Return(model.Tour{ID: 1, Price: "75.50"}, nil)

	created, err := uc.AdminCreateTour(ctx, in)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	tRepo.AssertExpectations(t)
}

func TestTourUsecase_AdminUpdateTour_NotFound(t *testing.T) {
	ctx := context.Background()

	tRepo := new(TourTourRepoMock)
	uc := usecase.NewTourUsecase(tRepo)

	tRepo.On("Update", mock.Anything, mock.Anything).Return(repo.ErrNotFound)

	err := uc.AdminUpdateTour(ctx, 99, validTourInput())
	assertErrContains(t, err, "not found")
}

func TestTourUsecase_AdminDeleteTour_Success(t *testing.T) {
	ctx := context.Background()

	tRepo := new(TourTourRepoMock)
	uc := usecase.NewTourUsecase(tRepo)

	tRepo.On("Delete", mock.Anything, int64(1)).Return(nil)

	assert.NoError(t, uc.AdminDeleteTour(ctx, 1))
	tRepo.AssertExpectations(t)
}
