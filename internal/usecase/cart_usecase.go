package usecase

import (
	"context"
	"net/http"

	"app/internal/cart"
	repo "app/internal/repository"
)

// CartUsecase は /cart の業務ロジック。
// 状態遷移はcartパッケージ、ここはツアーのスナップショット取得と組み立てだけ。
type CartUsecase struct {
	storage  cart.Storage
	tourRepo repo.TourRepository
}

func NewCartUsecase(storage cart.Storage, tourRepo repo.TourRepository) *CartUsecase {
	return &CartUsecase{storage: storage, tourRepo: tourRepo}
}

type CartResponse struct {
	Items      []cart.LineItem `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice string          `json:"totalPrice"`
}

func (u *CartUsecase) GetCart(ctx context.Context, profileID string) (CartResponse, error) {
	st, err := u.openStore(ctx, profileID)
	if err != nil {
		return CartResponse{}, err
	}
	return toCartResponse(st), nil
}

// AddItem はカタログからスナップショットを取って1点追加する。
// 同一ツアーは数量加算で、スナップショットは最初の追加時点のまま。
func (u *CartUsecase) AddItem(ctx context.Context, profileID string, tourID int64) (CartResponse, error) {
	if tourID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid tour id")
	}

	t, err := u.tourRepo.FindByID(ctx, tourID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	image := ""
	if len(t.Images) > 0 {
		image = t.Images[0]
	}

	st, err := u.openStore(ctx, profileID)
	if err != nil {
		return CartResponse{}, err
	}

	if err := st.AddItem(ctx, cart.Candidate{
		TourID:    t.ID,
		TourTitle: t.Title,
		Price:     t.Price,
		Duration:  t.Duration,
		Image:     image,
	}); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	return toCartResponse(st), nil
}

// UpdateQuantity は数量変更。1未満は削除扱い。
// 存在しないtourIdはno-op（エラーにしない）。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, profileID string, tourID int64, quantity int) (CartResponse, error) {
	if tourID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid tour id")
	}

	st, err := u.openStore(ctx, profileID)
	if err != nil {
		return CartResponse{}, err
	}

	if err := st.UpdateQuantity(ctx, tourID, quantity); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return toCartResponse(st), nil
}

func (u *CartUsecase) RemoveItem(ctx context.Context, profileID string, tourID int64) (CartResponse, error) {
	if tourID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid tour id")
	}

	st, err := u.openStore(ctx, profileID)
	if err != nil {
		return CartResponse{}, err
	}

	if err := st.RemoveItem(ctx, tourID); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return toCartResponse(st), nil
}

func (u *CartUsecase) ClearCart(ctx context.Context, profileID string) (CartResponse, error) {
	st, err := u.openStore(ctx, profileID)
	if err != nil {
		return CartResponse{}, err
	}

	if err := st.ClearCart(ctx); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return toCartResponse(st), nil
}

func (u *CartUsecase) openStore(ctx context.Context, profileID string) (*cart.Store, error) {
	if profileID == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "missing cart profile")
	}
	st, err := cart.NewStore(ctx, u.storage, profileID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return st, nil
}

func toCartResponse(st *cart.Store) CartResponse {
	return CartResponse{
		Items:      st.Items(),
		TotalItems: st.TotalItems(),
		TotalPrice: st.TotalPrice(),
	}
}
