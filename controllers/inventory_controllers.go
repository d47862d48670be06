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

type InventoryController struct {
	DB *gorm.DB
}

func NewInventoryController(db *gorm.DB) *InventoryController {
	return &InventoryController{DB: db}
}

func (ic *InventoryController) AddItem(c *gin.Context) {
	type request struct {
		ItemName    string `json:"item_name" binding:"required"`
		Quantity    int    `json:"quantity" binding:"required,min=1"`
		Description string `json:"description" binding:"required"`
		Category    string `json:"category" binding:"required"`
		Condition   string `json:"condition" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.Inventory{
		UserID:      currentUserID(c),
		ItemName:    req.ItemName,
		Quantity:    req.Quantity,
		Description: req.Description,
		Category:    req.Category,
		Condition:   req.Condition,
	}

	if err := ic.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Item added to inventory successfully", item)
}

// ListItems returns the caller's inventory, optionally filtered by a
// keyword over name/description and by category and condition.
func (ic *InventoryController) ListItems(c *gin.Context) {
	query := ic.DB.Where("user_id = ?", currentUserID(c))

	if keyword := c.Query("keyword"); keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Where("item_name LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category LIKE ?", "%"+category+"%")
	}
	if condition := c.Query("condition"); condition != "" {
		query = query.Where("`condition` LIKE ?", "%"+condition+"%")
	}

	items := []models.Inventory{}
	if err := query.Order("id asc").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Inventory items", items)
}

func (ic *InventoryController) UpdateItem(c *gin.Context) {
	itemID, _ := strconv.Atoi(c.Param("item_id"))

	var item models.Inventory
	if err := ic.DB.Where("id = ? AND user_id = ?", itemID, currentUserID(c)).First(&item).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("item not found"))
		return
	}

	var req struct {
		ItemName    *string `json:"item_name"`
		Quantity    *int    `json:"quantity"`
		Description *string `json:"description"`
		Category    *string `json:"category"`
		Condition   *string `json:"condition"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.ItemName != nil {
		item.ItemName = *req.ItemName
	}
	if req.Quantity != nil {
		if *req.Quantity < 1 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("quantity must be at least 1"))
			return
		}
		item.Quantity = *req.Quantity
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Condition != nil {
		item.Condition = *req.Condition
	}

	if err := ic.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Inventory item updated successfully", item)
}

func (ic *InventoryController) DeleteItem(c *gin.Context) {
	itemID, _ := strconv.Atoi(c.Param("item_id"))

	var item models.Inventory
	if err := ic.DB.Where("id = ? AND user_id = ?", itemID, currentUserID(c)).First(&item).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("item not found"))
		return
	}

	if err := ic.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Inventory item deleted successfully", gin.H{"item_id": item.ID})
}
