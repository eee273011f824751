package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// 注文確定時点のスナップショット（カート明細のコピー）
type OrderLine struct {
	TourID    int64  `json:"tourId"`
	TourTitle string `json:"tourTitle"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
}

type Order struct {
	ID              int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName    string      `gorm:"type:text;not null" json:"customerName"`
	CustomerEmail   string      `gorm:"type:text;not null" json:"customerEmail"`
	CustomerPhone   string      `gorm:"type:text;not null" json:"customerPhone"`
	CustomerAddress string      `gorm:"type:text" json:"customerAddress"`
	TourItems       []OrderLine `gorm:"type:jsonb;serializer:json;not null;column:tour_items" json:"tourItems"`
	TotalPrice      string      `gorm:"type:numeric(10,2);not null" json:"totalPrice"`
	//検証済み"YYYY-MM-DD"をそのまま持つ。date型だと読み出しでRFC3339に化ける
	BookingDate     string      `gorm:"type:text;not null" json:"bookingDate"`
	Status          OrderStatus `gorm:"type:text;not null;default:'pending';index" json:"status"`
	Notes           string      `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time   `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time   `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}
