package models

import "time"

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	FirstName    string     `gorm:"type:varchar(50);not null" json:"first_name"`
	SecondName   string     `gorm:"type:varchar(50)" json:"second_name"`
	Surname      string     `gorm:"type:varchar(50);not null" json:"surname"`
	Username     string     `gorm:"type:varchar(50);unique;not null" json:"username"`
	Email        string     `gorm:"type:varchar(100);unique;not null" json:"email"`
	PhoneNumber  string     `gorm:"type:varchar(9);unique;not null" json:"phone_number"`
	Gender       string     `gorm:"type:varchar(10);not null" json:"gender"`
	Location     string     `gorm:"type:varchar(100)" json:"location"`
	DateOfBirth  *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	PasswordHash string     `gorm:"type:varchar(255)" json:"-"`
	Role         string     `gorm:"type:varchar(50);not null;default:'customer'" json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
