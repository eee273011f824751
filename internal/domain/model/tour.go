package model

import "time"

// 価格はnumericの文字列のまま持つ（計算はmoneyパッケージ）
type Tour struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       string    `gorm:"type:numeric(10,2);not null" json:"price"`
	Duration    string    `gorm:"type:text;not null" json:"duration"`
	Location    string    `gorm:"type:text;not null" json:"location"`
	Itinerary   []string  `gorm:"type:jsonb;serializer:json;not null" json:"itinerary"`
	Images      []string  `gorm:"type:jsonb;serializer:json;not null" json:"images"`
	SDGGoals    []int     `gorm:"type:jsonb;serializer:json;not null;column:sdg_goals" json:"sdgGoals"`
	MaxCapacity int       `gorm:"not null;default:20" json:"maxCapacity"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}
