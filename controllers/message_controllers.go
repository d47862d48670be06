package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/i-gichachi/kuhama-app/models"
	"github.com/i-gichachi/kuhama-app/utils"
)

type MessageController struct {
	DB *gorm.DB
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{DB: db}
}

// SendMessage delivers a customer message to the admin. There is a single
// administrative role, so the first admin account is the receiver.
func (mc *MessageController) SendMessage(c *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var admin models.User
	if err := mc.DB.Where("role = ?", models.RoleAdmin).First(&admin).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrNoAdminUser)
		return
	}

	message := models.Message{
		SenderID:   currentUserID(c),
		ReceiverID: admin.ID,
		Content:    req.Content,
	}

	if err := mc.DB.Create(&message).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Message sent successfully", message)
}

func (mc *MessageController) AdminInbox(c *gin.Context) {
	messages := []models.Message{}
	if err := mc.DB.Where("receiver_id = ?", currentUserID(c)).Order("id asc").Find(&messages).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Messages", messages)
}
