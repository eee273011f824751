package cart

import "context"

// Storage はプロファイルごとの永続スロットの約束。
// 実装はGORM（cart_snapshots）。テストではモックを差す。
type Storage interface {
	Load(ctx context.Context, profileID string) (State, bool, error)
	Save(ctx context.Context, profileID string, s State) error
}

// Store は「この訪問者が予約しようとしているもの」の唯一の置き場。
// 1ブラウジングコンテキスト（プロファイル）につき1つ作って使う。
// 変更のたびにスロットへ書き戻す（write-through、バッチなし）。
type Store struct {
	profileID string
	storage   Storage
	state     State
}

// NewStore はスロットを一度だけ読んでStoreを作る。
// スロットが無ければ空のカートから始める。
func NewStore(ctx context.Context, storage Storage, profileID string) (*Store, error) {
	s, found, err := storage.Load(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !found {
		s = State{Items: []LineItem{}}
	}
	return &Store{profileID: profileID, storage: storage, state: s}, nil
}

// AddItem は追加。同一ツアーは数量加算（価格は最初の追加時点のまま）。
func (st *Store) AddItem(ctx context.Context, c Candidate) error {
	return st.apply(ctx, Add(st.state, c))
}

// RemoveItem は削除。存在しないIDはno-op（それでも書き戻す）。
func (st *Store) RemoveItem(ctx context.Context, tourID int64) error {
	return st.apply(ctx, Remove(st.state, tourID))
}

// UpdateQuantity は数量変更。1未満は削除。
func (st *Store) UpdateQuantity(ctx context.Context, tourID int64, quantity int) error {
	return st.apply(ctx, UpdateQuantity(st.state, tourID, quantity))
}

// ClearCart は全クリア。
func (st *Store) ClearCart(ctx context.Context) error {
	return st.apply(ctx, Clear(st.state))
}

// Items は表示用の明細（追加順）。
func (st *Store) Items() []LineItem {
	return st.state.Items
}

// State は現在の状態を返す（注文スナップショット用）。
func (st *Store) State() State {
	return st.state
}

// TotalItems / TotalPriceは導出値。エラーは返さない。
func (st *Store) TotalItems() int {
	return st.state.TotalItems()
}

func (st *Store) TotalPrice() string {
	return st.state.TotalPrice().StringFixed(2)
}

// 先に永続化してから差し替える。書けなければ状態は変えない。
func (st *Store) apply(ctx context.Context, next State) error {
	if err := st.storage.Save(ctx, st.profileID, next); err != nil {
		return err
	}
	st.state = next
	return nil
}
