package database

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/i-gichachi/kuhama-app/models"
	"github.com/i-gichachi/kuhama-app/utils"
)

// EnsureAdmin creates the administrative account on first boot. The
// marketplace has a single admin role and no signup path for it, so
// without this seed nobody could approve requests.
func EnsureAdmin(db *gorm.DB, username, email, phone, password string) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		FirstName:    "Ian",
		Surname:      "Gichachi",
		Username:     username,
		Email:        email,
		PhoneNumber:  phone,
		Gender:       "male",
		Location:     "Nairobi",
		PasswordHash: string(hashed),
		Role:         models.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	utils.InfoLogger.Printf("Seeded admin account %s", admin.Username)
	return nil
}
