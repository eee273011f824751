package model

import "time"

// ブラウザプロファイルごとに1スロット。
// 中身（明細リスト）はcartパッケージがJSONで詰める。
type CartSnapshot struct {
	ProfileID string    `gorm:"primaryKey;type:uuid" json:"profile_id"`
	Payload   []byte    `gorm:"type:jsonb;not null" json:"payload"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
