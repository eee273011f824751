package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/cart"
	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/validator"

	"github.com/labstack/gommon/log"
)

// CheckoutUsecase はカートの中身と顧客フィールドをOrderRequestに組み立てて、
// 注文として永続化する。失敗時はカートに触らない（再送できるように）。
type CheckoutUsecase struct {
	storage   cart.Storage
	orderRepo repo.OrderRepository
}

func NewCheckoutUsecase(storage cart.Storage, orderRepo repo.OrderRepository) *CheckoutUsecase {
	return &CheckoutUsecase{storage: storage, orderRepo: orderRepo}
}

type PlaceOrderInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	BookingDate     string
	Notes           string
}

func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, profileID string, in PlaceOrderInput) (model.Order, error) {
	if profileID == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "missing cart profile")
	}

	st, err := cart.NewStore(ctx, u.storage, profileID)
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	//空カートはOrder Serviceを呼ばずに弾く
	if len(st.Items()) == 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	if errs := validator.ValidateBooking(validator.BookingInput{
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
		BookingDate:     in.BookingDate,
		Notes:           in.Notes,
	}, time.Now()); len(errs) > 0 {
		return model.Order{}, &ValidationError{Fields: errs}
	}

	//確定時点のスナップショットを作る（以降カートが変わっても注文は不変）
	state := st.State()
	lines := make([]model.OrderLine, 0, len(state.Items))
	for _, it := range state.Items {
		lines = append(lines, model.OrderLine{
			TourID:    it.TourID,
			TourTitle: it.TourTitle,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	created, err := u.orderRepo.Create(ctx, model.Order{
		CustomerName:    strings.TrimSpace(in.CustomerName),
		CustomerEmail:   strings.TrimSpace(in.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(in.CustomerPhone),
		CustomerAddress: strings.TrimSpace(in.CustomerAddress),
		TourItems:       lines,
		TotalPrice:      state.TotalPrice().StringFixed(2),
		BookingDate:     strings.TrimSpace(in.BookingDate),
		Status:          model.OrderStatusPending,
		Notes:           strings.TrimSpace(in.Notes),
	})
	if err != nil {
		//カートはそのまま残す
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//注文は確定済みなので、クリアに失敗しても確定画面へ進める
	if err := st.ClearCart(ctx); err != nil {
		log.Warnf("cart clear failed after order %d: %v", created.ID, err)
	}

	return created, nil
}

// GetConfirmation は確定画面用の注文取得。
func (u *CheckoutUsecase) GetConfirmation(ctx context.Context, orderID int64) (model.Order, error) {
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
