package models

import "time"

// MovingDetail is one relocation job. The owner (UserID) never changes
// after creation, and Price is computed from the coordinates and home
// size when the request is first posted.
type MovingDetail struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"not null;index" json:"user_id"`
	User              User      `gorm:"foreignKey:UserID" json:"-"`
	FromLocation      string    `gorm:"type:varchar(100);not null" json:"from_location"`
	ToLocation        string    `gorm:"type:varchar(100);not null" json:"to_location"`
	FromLat           float64   `gorm:"not null" json:"from_lat"`
	FromLon           float64   `gorm:"not null" json:"from_lon"`
	ToLat             float64   `gorm:"not null" json:"to_lat"`
	ToLon             float64   `gorm:"not null" json:"to_lon"`
	HomeSize          string    `gorm:"type:varchar(50);not null" json:"home_size"`
	MovingDate        time.Time `gorm:"not null" json:"moving_date"`
	Price             float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	PackingService    bool      `gorm:"not null;default:false" json:"packing_service"`
	AdditionalDetails string    `gorm:"type:text" json:"additional_details"`
	Status            string    `gorm:"type:varchar(50);not null;default:'pending'" json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
