package repository

import (
	"context"
	"encoding/json"
	"errors"

	"app/internal/cart"
	"app/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cart.Storage のGORM実装。
// プロファイルIDごとに1行、中身はカート状態のJSONまるごと。
// 後勝ち（複数タブは最後に書いた方が残る）。
type CartSnapshotGormStorage struct {
	db *gorm.DB
}

// DI
func NewCartSnapshotGormStorage(db *gorm.DB) *CartSnapshotGormStorage {
	return &CartSnapshotGormStorage{db: db}
}

func (r *CartSnapshotGormStorage) Load(ctx context.Context, profileID string) (cart.State, bool, error) {
	var snap model.CartSnapshot

	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		First(&snap).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return cart.State{}, false, nil
	}
	if err != nil {
		return cart.State{}, false, err
	}

	var s cart.State
	if err := json.Unmarshal(snap.Payload, &s); err != nil {
		//壊れたスロットは空扱いで作り直す
		return cart.State{}, false, nil
	}
	return s, true, nil
}

func (r *CartSnapshotGormStorage) Save(ctx context.Context, profileID string, s cart.State) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}

	snap := model.CartSnapshot{
		ProfileID: profileID,
		Payload:   payload,
	}

	//スロットは常に上書き
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&snap).Error
}
