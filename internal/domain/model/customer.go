package model

import "time"

// TotalPurchasesは売上記録の積み上げでのみ増える（作成時は常に0）。
type Customer struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Email          string    `gorm:"type:varchar(255)" json:"email"`
	Phone          string    `gorm:"type:varchar(50)" json:"phone"`
	BabyName       string    `gorm:"type:varchar(255)" json:"baby_name"`
	BabyAge        string    `gorm:"type:varchar(50)" json:"baby_age"`
	TotalPurchases float64   `gorm:"not null;default:0" json:"total_purchases"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
