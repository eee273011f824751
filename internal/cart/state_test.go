package cart_test

import (
	"testing"

	"app/internal/cart"

	"github.com/stretchr/testify/assert"
)

func candidate(id int64, title string, price string) cart.Candidate {
	return cart.Candidate{
		TourID:    id,
		TourTitle: title,
		Price:     price,
		Duration:  "3 days",
	}
}

func TestAdd_NewItem_QuantityOne(t *testing.T) {
	s := cart.State{}

	s = cart.Add(s, candidate(1, "Highland Adventure", "185.00"))

	assert.Equal(t, 1, len(s.Items))
	assert.Equal(t, int64(1), s.Items[0].TourID)
	assert.Equal(t, 1, s.Items[0].Quantity)
}

func TestAdd_SameTour_MergesQuantity(t *testing.T) {
	s := cart.State{}

	//同じツアーを何回追加しても明細は1行のまま
	for i := 0; i < 5; i++ {
		s = cart.Add(s, candidate(1, "Highland Adventure", "185.00"))
	}

	assert.Equal(t, 1, len(s.Items))
	assert.Equal(t, 5, s.Items[0].Quantity)
}

func TestAdd_RepeatAdd_KeepsFirstSnapshot(t *testing.T) {
	s := cart.State{}

	s = cart.Add(s, candidate(1, "Highland Adventure", "185.00"))
	//2回目は価格が変わっていても最初のスナップショットを使う
	s = cart.Add(s, candidate(1, "Highland Adventure (new)", "999.00"))

	assert.Equal(t, 1, len(s.Items))
	assert.Equal(t, "185.00", s.Items[0].Price)
	assert.Equal(t, "Highland Adventure", s.Items[0].TourTitle)
	assert.Equal(t, 2, s.Items[0].Quantity)
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	s := cart.State{}

	s = cart.Add(s, candidate(3, "C", "10.00"))
	s = cart.Add(s, candidate(1, "A", "20.00"))
	s = cart.Add(s, candidate(2, "B", "30.00"))
	s = cart.Add(s, candidate(1, "A", "20.00"))

	assert.Equal(t, []int64{3, 1, 2}, []int64{s.Items[0].TourID, s.Items[1].TourID, s.Items[2].TourID})
}

func TestRemove_MissingID_NoOp(t *testing.T) {
	s := cart.State{}
	s = cart.Add(s, candidate(1, "A", "20.00"))

	before := s
	s = cart.Remove(s, 99)

	assert.Equal(t, before.Items, s.Items)
}

func TestRemove_DropsItem(t *testing.T) {
	s := cart.State{}
	s = cart.Add(s, candidate(1, "A", "20.00"))
	s = cart.Add(s, candidate(2, "B", "30.00"))

	s = cart.Remove(s, 1)

	assert.Equal(t, 1, len(s.Items))
	assert.Equal(t, int64(2), s.Items[0].TourID)
}

func TestUpdateQuantity_ZeroOrNegative_Removes(t *testing.T) {
	for _, qty := range []int{0, -1} {
		s := cart.State{}
		s = cart.Add(s, candidate(1, "A", "20.00"))

		s = cart.UpdateQuantity(s, 1, qty)

		assert.Equal(t, 0, len(s.Items), "quantity=%d should remove the item", qty)
	}
}

func TestUpdateQuantity_SetsQuantity(t *testing.T) {
	s := cart.State{}
	s = cart.Add(s, candidate(1, "A", "20.00"))

	s = cart.UpdateQuantity(s, 1, 7)

	assert.Equal(t, 7, s.Items[0].Quantity)
}

func TestUpdateQuantity_MissingID_NoOp(t *testing.T) {
	s := cart.State{}
	s = cart.Add(s, candidate(1, "A", "20.00"))

	s = cart.UpdateQuantity(s, 99, 7)

	assert.Equal(t, 1, len(s.Items))
	assert.Equal(t, 1, s.Items[0].Quantity)
}

func TestClear_EmptiesEverything(t *testing.T) {
	s := cart.State{}
	s = cart.Add(s, candidate(1, "A", "20.00"))
	s = cart.Add(s, candidate(2, "B", "30.00"))

	s = cart.Clear(s)

	assert.Equal(t, 0, len(s.Items))
	assert.Equal(t, 0, s.TotalItems())
	assert.Equal(t, "0.00", s.TotalPrice().StringFixed(2))
}

func TestTotals_Scenario(t *testing.T) {
	//A(50.00)×1 + B(30.00)×2 → 3点 110.00
	s := cart.State{}
	s = cart.Add(s, candidate(1, "A", "50.00"))
	s = cart.Add(s, candidate(2, "B", "30.00"))
	s = cart.Add(s, candidate(2, "B", "30.00"))

	assert.Equal(t, 3, s.TotalItems())
	assert.Equal(t, "110.00", s.TotalPrice().StringFixed(2))
}

func TestTotalPrice_RoundTrip(t *testing.T) {
	s := cart.State{}
	s = cart.Add(s, candidate(1, "A", "50.00"))
	before := s.TotalPrice()

	//追加して戻したら合計も元に戻る
	s = cart.Add(s, candidate(2, "B", "30.00"))
	s = cart.Remove(s, 2)

	assert.True(t, before.Equal(s.TotalPrice()))
}

func TestTotalPrice_MalformedPrice_CountsAsZero(t *testing.T) {
	s := cart.State{}
	s = cart.Add(s, candidate(1, "A", "50.00"))
	s = cart.Add(s, candidate(2, "B", "not-a-price"))

	assert.Equal(t, "50.00", s.TotalPrice().StringFixed(2))
	assert.Equal(t, 2, s.TotalItems())
}
