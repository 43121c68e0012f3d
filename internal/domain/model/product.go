package model

import "time"

// 商品の状態（新品 / 中古美品）
type Condition string

const (
	ConditionNew        Condition = "New"
	ConditionGentlyUsed Condition = "Gently Used"
)

// カテゴリと月齢ラベルの候補（入力フォームのスピナー相当）
var (
	Categories = []string{"Bodysuits", "Sleepwear", "Outerwear", "Dresses", "Accessories"}
	AgeRanges  = []string{"Newborn", "0-3M", "3-6M", "6-9M", "9-12M", "12-18M", "18-24M", "3A", "Toddler"}
)

type Product struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Category  string    `gorm:"type:varchar(100)" json:"category"`
	Price     float64   `gorm:"not null" json:"price"`
	Stock     int64     `gorm:"not null" json:"stock"`
	Supplier  string    `gorm:"type:varchar(255)" json:"supplier"`
	Size      string    `gorm:"type:varchar(50)" json:"size"`
	AgeRange  string    `gorm:"type:varchar(50)" json:"age_range"`
	Color     string    `gorm:"type:varchar(50)" json:"color"`
	Material  string    `gorm:"type:varchar(100)" json:"material"`
	Condition Condition `gorm:"type:varchar(20);not null;default:'New'" json:"condition"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
