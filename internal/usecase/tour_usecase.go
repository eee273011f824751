package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	"app/internal/money"
	repo "app/internal/repository"
	"app/internal/validator"
)

// バリデーションNGはフィールド一覧ごと返す（handlerが400にする）。
type ValidationError struct {
	Fields validator.FieldErrors
}

func (e *ValidationError) Error() string {
	return e.Fields.Error()
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

type TourUsecase struct {
	tourRepo repo.TourRepository
}

// DI
func NewTourUsecase(tourRepo repo.TourRepository) *TourUsecase {
	return &TourUsecase{tourRepo: tourRepo}
}

type TourListOutput struct {
	Tours      []model.Tour    `json:"tours"`
	Pagination repo.Pagination `json:"pagination"`
}

// ListTours は公開側の一覧（新着順＋ページング）。
func (u *TourUsecase) ListTours(ctx context.Context, page int, limit int) (TourListOutput, error) {
	if page < 1 {
		return TourListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if limit < 1 || limit > 100 {
		return TourListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	tours, total, err := u.tourRepo.ListPaginated(ctx, page, limit)
	if err != nil {
		return TourListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return TourListOutput{
		Tours:      tours,
		Pagination: repo.NewPagination(page, limit, total),
	}, nil
}

// FeaturedTours はトップページ用の新着（最大limit件）。
func (u *TourUsecase) FeaturedTours(ctx context.Context, limit int) ([]model.Tour, error) {
	if limit < 1 || limit > 20 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	tours, err := u.tourRepo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return tours, nil
}

func (u *TourUsecase) GetTourDetail(ctx context.Context, tourID int64) (model.Tour, error) {
	if tourID <= 0 {
		return model.Tour{}, NewHTTPError(http.StatusBadRequest, "invalid tour id")
	}

	t, err := u.tourRepo.FindByID(ctx, tourID)
	if err == repo.ErrNotFound {
		return model.Tour{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Tour{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return t, nil
}

// AdminListTours は管理側の一覧。公開側と同じ並びで返す。
func (u *TourUsecase) AdminListTours(ctx context.Context, page int, limit int) (TourListOutput, error) {
	return u.ListTours(ctx, page, limit)
}

func (u *TourUsecase) AdminCreateTour(ctx context.Context, in validator.TourInput) (model.Tour, error) {
	if errs := validator.ValidateTour(in); len(errs) > 0 {
		return model.Tour{}, &ValidationError{Fields: errs}
	}

	created, err := u.tourRepo.Create(ctx, tourFromInput(in))
	if err != nil {
		return model.Tour{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *TourUsecase) AdminUpdateTour(ctx context.Context, tourID int64, in validator.TourInput) error {
	if tourID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid tour id")
	}
	if errs := validator.ValidateTour(in); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}

	t := tourFromInput(in)
	t.ID = tourID

	err := u.tourRepo.Update(ctx, t)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *TourUsecase) AdminDeleteTour(ctx context.Context, tourID int64) error {
	if tourID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid tour id")
	}

	err := u.tourRepo.Delete(ctx, tourID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func tourFromInput(in validator.TourInput) model.Tour {
	//価格は2桁に正規化して保存する
	d, _ := money.Parse(in.Price)

	return model.Tour{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Price:       money.Format(d),
		Duration:    strings.TrimSpace(in.Duration),
		Location:    strings.TrimSpace(in.Location),
		Itinerary:   in.Itinerary,
		Images:      in.Images,
		SDGGoals:    in.SDGGoals,
		MaxCapacity: in.MaxCapacity,
	}
}
