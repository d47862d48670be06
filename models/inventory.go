package models

import "time"

type Inventory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	ItemName    string    `gorm:"type:varchar(100);not null" json:"item_name"`
	Quantity    int       `gorm:"not null;default:1" json:"quantity"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"type:varchar(50)" json:"category"`
	Condition   string    `gorm:"type:varchar(50)" json:"condition"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
