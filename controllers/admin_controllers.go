package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/i-gichachi/kuhama-app/models"
	"github.com/i-gichachi/kuhama-app/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

func (ac *AdminController) ListCustomers(c *gin.Context) {
	customers := []models.User{}
	if err := ac.DB.Where("role = ?", models.RoleCustomer).Order("id asc").Find(&customers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customers", customers)
}

func (ac *AdminController) GetCustomerInventory(c *gin.Context) {
	userID, _ := strconv.Atoi(c.Param("user_id"))

	items := []models.Inventory{}
	if err := ac.DB.Where("user_id = ?", userID).Order("id asc").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer inventory", items)
}

func (ac *AdminController) DeleteCustomer(c *gin.Context) {
	userID, _ := strconv.Atoi(c.Param("user_id"))

	var user models.User
	if err := ac.DB.First(&user, userID).Error; err != nil || user.Role != models.RoleCustomer {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found or not a customer"))
		return
	}

	if err := ac.DB.Delete(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Customer %d (%s) deleted by admin %d", user.ID, user.Username, currentUserID(c))

	utils.RespondJSON(c, http.StatusOK, "User deleted successfully", gin.H{"user_id": user.ID})
}

// UpdateMovingStatus is the admin side of the request lifecycle. The
// status write and the owner notification are committed as one
// transaction; a failure on either side leaves the request untouched.
func (ac *AdminController) UpdateMovingStatus(c *gin.Context) {
	detailID, _ := strconv.Atoi(c.Param("detail_id"))

	var detail models.MovingDetail
	if err := ac.DB.First(&detail, detailID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("moving detail not found"))
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.IsValidStatus(req.Status) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid status"))
		return
	}
	if !models.CanTransition(detail.Status, req.Status) {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("cannot change status from %s to %s", detail.Status, req.Status))
		return
	}

	tx := ac.DB.Begin()
	if tx.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, tx.Error)
		return
	}

	detail.Status = req.Status
	if err := tx.Save(&detail).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if message := models.NotificationForStatus(req.Status); message != "" {
		notif := models.Notification{
			UserID:  detail.UserID,
			Message: message,
		}
		if err := tx.Create(&notif).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Moving request %d set to %s by admin %d", detail.ID, detail.Status, currentUserID(c))

	utils.RespondJSON(c, http.StatusOK, "Moving status updated successfully", detail)
}
