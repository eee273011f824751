package cart

import (
	"app/internal/money"

	"github.com/shopspring/decimal"
)

// カート明細。スナップショット項目（タイトル・価格など）は追加時点のまま。
type LineItem struct {
	TourID    int64  `json:"tourId"`
	TourTitle string `json:"tourTitle"`
	Price     string `json:"price"`
	Duration  string `json:"duration"`
	Image     string `json:"image,omitempty"`
	Quantity  int    `json:"quantity"`
}

// Candidate は数量抜きの追加候補（数量はカート側が決める）。
type Candidate struct {
	TourID    int64  `json:"tourId"`
	TourTitle string `json:"tourTitle"`
	Price     string `json:"price"`
	Duration  string `json:"duration"`
	Image     string `json:"image,omitempty"`
}

// State はカートの中身。表示順＝追加順を保つ。
type State struct {
	Items []LineItem `json:"items"`
}

// 状態遷移は全部純関数にする。永続化はStore側の仕事。

// Add は同一tourIdなら数量+1（スナップショットは触らない）、無ければ末尾に数量1で追加。
func Add(s State, c Candidate) State {
	items := make([]LineItem, len(s.Items))
	copy(items, s.Items)

	for i := range items {
		if items[i].TourID == c.TourID {
			items[i].Quantity++
			return State{Items: items}
		}
	}

	items = append(items, LineItem{
		TourID:    c.TourID,
		TourTitle: c.TourTitle,
		Price:     c.Price,
		Duration:  c.Duration,
		Image:     c.Image,
		Quantity:  1,
	})
	return State{Items: items}
}

// Remove は該当明細を落とす。無ければそのまま（エラーにしない）。
func Remove(s State, tourID int64) State {
	items := make([]LineItem, 0, len(s.Items))
	for _, it := range s.Items {
		if it.TourID == tourID {
			continue
		}
		items = append(items, it)
	}
	return State{Items: items}
}

// UpdateQuantity は数量を置き換える。1未満は削除と同じ扱い。
// tourIdが無ければ何もしない。
func UpdateQuantity(s State, tourID int64, quantity int) State {
	if quantity < 1 {
		return Remove(s, tourID)
	}

	items := make([]LineItem, len(s.Items))
	copy(items, s.Items)
	for i := range items {
		if items[i].TourID == tourID {
			items[i].Quantity = quantity
		}
	}
	return State{Items: items}
}

// Clear は空にする。
func Clear(State) State {
	return State{Items: []LineItem{}}
}

// TotalItems は数量の合計。
func (s State) TotalItems() int {
	total := 0
	for _, it := range s.Items {
		total += it.Quantity
	}
	return total
}

// TotalPrice は Σ 単価×数量。壊れた価格文字列は0円扱い（読み取りで落とさない）。
func (s State) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(money.Line(it.Price, it.Quantity))
	}
	return total
}
