package controllers

import (
	"errors"
	"net/http"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/i-gichachi/kuhama-app/models"
	"github.com/i-gichachi/kuhama-app/utils"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

const dateLayout = "2006-01-02"

// Signup registers a new customer and notifies every admin about the new
// account. Admins are created by seeding, never through this endpoint.
func (uc *UserController) Signup(c *gin.Context) {
	type request struct {
		FirstName   string `json:"first_name" binding:"required"`
		SecondName  string `json:"second_name"`
		Surname     string `json:"surname" binding:"required"`
		Username    string `json:"username" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		PhoneNumber string `json:"phone_number" binding:"required"`
		Gender      string `json:"gender" binding:"required"`
		Location    string `json:"location"`
		DateOfBirth string `json:"date_of_birth" binding:"required"`
		Password    string `json:"password" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !isValidPhoneNumber(req.PhoneNumber) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("phone number must be exactly 9 digits"))
		return
	}

	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid date format"))
		return
	}
	if ageInYears(dob, time.Now()) < 18 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("you must be at least 18 years old to register"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		FirstName:    req.FirstName,
		SecondName:   req.SecondName,
		Surname:      req.Surname,
		Username:     req.Username,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Gender:       req.Gender,
		Location:     req.Location,
		DateOfBirth:  &dob,
		PasswordHash: string(hashed),
		Role:         models.RoleCustomer,
	}

	if err := uc.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Signup notifications are best effort; the account already exists.
	var admins []models.User
	if err := uc.DB.Where("role = ?", models.RoleAdmin).Find(&admins).Error; err == nil {
		for _, admin := range admins {
			notif := models.Notification{
				UserID:  admin.ID,
				Message: "New user signed up: " + user.Username,
			}
			if err := uc.DB.Create(&notif).Error; err != nil {
				utils.ErrorLogger.Printf("failed to notify admin %d of signup: %v", admin.ID, err)
			}
		}
	}

	utils.InfoLogger.Printf("New user registered: %s", user.Username)

	utils.RespondJSON(c, http.StatusCreated, "User registered successfully", gin.H{
		"user_id": user.ID,
	})
}

// Login accepts a username, email or phone number plus password and
// returns a bearer token carrying the user's id and role.
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Login    string `json:"login" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := uc.DB.
		Where("username = ? OR email = ? OR phone_number = ?", input.Login, input.Login, input.Login).
		First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid username, email, phone number or password"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid username, email, phone number or password"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Login successful for user %s", user.Username)

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"access_token": token,
		"role":         user.Role,
	})
}

// Logout is a no-op on the server: tokens are stateless and simply expire.
func (uc *UserController) Logout(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "User logged out successfully", nil)
}

func (uc *UserController) GetInfo(c *gin.Context) {
	var user models.User
	if err := uc.DB.First(&user, currentUserID(c)).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "User info", user)
}

// UpdateInfo applies a partial profile update. Each provided field is
// validated with the same rules as signup.
func (uc *UserController) UpdateInfo(c *gin.Context) {
	var user models.User
	if err := uc.DB.First(&user, currentUserID(c)).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	var req struct {
		FirstName   *string `json:"first_name"`
		SecondName  *string `json:"second_name"`
		Surname     *string `json:"surname"`
		Email       *string `json:"email"`
		PhoneNumber *string `json:"phone_number"`
		Gender      *string `json:"gender"`
		Location    *string `json:"location"`
		DateOfBirth *string `json:"date_of_birth"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Email != nil {
		if !isValidEmail(*req.Email) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid email format"))
			return
		}
		user.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		if !isValidPhoneNumber(*req.PhoneNumber) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("phone number must be exactly 9 digits"))
			return
		}
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse(dateLayout, *req.DateOfBirth)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid date format"))
			return
		}
		user.DateOfBirth = &dob
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.SecondName != nil {
		user.SecondName = *req.SecondName
	}
	if req.Surname != nil {
		user.Surname = *req.Surname
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.Location != nil {
		user.Location = *req.Location
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "User information updated successfully", user)
}

func isValidPhoneNumber(phone string) bool {
	if len(phone) != 9 {
		return false
	}
	for _, r := range phone {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isValidEmail(email string) bool {
	// Real validation happens on signup via the binding tag; updates only
	// guard against the obviously malformed.
	for _, r := range email {
		if r == '@' {
			return true
		}
	}
	return false
}

func ageInYears(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}
