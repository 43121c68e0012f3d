package model

import "time"

// 売上レコード。作成後は変更・削除しない。
// 顧客名・商品名・サイズは販売時点のスナップショット（外部キーではない）。
type Sale struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Date         string    `gorm:"type:varchar(10);not null" json:"date"`
	CustomerName string    `gorm:"type:varchar(255)" json:"customer_name"`
	ProductName  string    `gorm:"type:varchar(255)" json:"product_name"`
	Quantity     int64     `gorm:"not null" json:"quantity"`
	Total        float64   `gorm:"not null" json:"total"`
	Size         string    `gorm:"type:varchar(50)" json:"size"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
