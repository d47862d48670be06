package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/i-gichachi/kuhama-app/models"
	"github.com/i-gichachi/kuhama-app/utils"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// ListNotifications returns the caller's notifications in insertion
// order. Serves both the customer and the admin route.
func (nc *NotificationController) ListNotifications(c *gin.Context) {
	notifs := []models.Notification{}
	if err := nc.DB.Where("user_id = ?", currentUserID(c)).Order("id asc").Find(&notifs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Notifications", notifs)
}

func (nc *NotificationController) MarkRead(c *gin.Context) {
	notifID, _ := strconv.Atoi(c.Param("notification_id"))

	var notif models.Notification
	if err := nc.DB.Where("id = ? AND user_id = ?", notifID, currentUserID(c)).First(&notif).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("notification not found"))
		return
	}

	notif.Read = true
	if err := nc.DB.Save(&notif).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Notification marked as read", notif)
}
