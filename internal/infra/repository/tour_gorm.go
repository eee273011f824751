package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type TourGormRepository struct {
	db *gorm.DB
}

// DI
func NewTourGormRepository(db *gorm.DB) *TourGormRepository {
	return &TourGormRepository{db: db}
}

// 新着順＋ページングで返す。
func (r *TourGormRepository) ListPaginated(ctx context.Context, page int, limit int) ([]model.Tour, int64, error) {
	var tours []model.Tour
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Tour{})

	if err := tx.Count(&total).Error; err != nil {
		return []model.Tour{}, 0, err
	}

	offset := (page - 1) * limit
	if err := tx.Order("created_at desc").Order("id desc").
		Offset(offset).Limit(limit).
		Find(&tours).Error; err != nil {
		return []model.Tour{}, 0, err
	}

	return tours, total, nil
}

// トップページ用の新着。
func (r *TourGormRepository) ListFeatured(ctx context.Context, limit int) ([]model.Tour, error) {
	var tours []model.Tour

	if err := r.db.WithContext(ctx).
		Order("created_at desc").Order("id desc").
		Limit(limit).
		Find(&tours).Error; err != nil {
		return []model.Tour{}, err
	}

	return tours, nil
}

// IDでツアーを取得
func (r *TourGormRepository) FindByID(ctx context.Context, id int64) (model.Tour, error) {
	var t model.Tour
	err := r.db.WithContext(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Tour{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Tour{}, err
	}
	return t, nil
}

// ツアーの作成
func (r *TourGormRepository) Create(ctx context.Context, t model.Tour) (model.Tour, error) {
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return model.Tour{}, err
	}
	return t, nil
}

// ツアーの更新
func (r *TourGormRepository) Update(ctx context.Context, t model.Tour) error {
	//jsonbカラムはserializer経由にしたいのでstruct+Selectで更新する
	res := r.db.WithContext(ctx).Model(&model.Tour{}).Where("id = ?", t.ID).
		Select("title", "description", "price", "duration", "location",
			"itinerary", "images", "sdg_goals", "max_capacity").
		Updates(t)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// ツアーの削除
func (r *TourGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Tour{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *TourGormRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Tour{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
