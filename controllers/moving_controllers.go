package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/i-gichachi/kuhama-app/models"
	"github.com/i-gichachi/kuhama-app/services"
	"github.com/i-gichachi/kuhama-app/utils"
)

type MovingController struct {
	DB      *gorm.DB
	Pricing services.Pricing
}

func NewMovingController(db *gorm.DB, pricing services.Pricing) *MovingController {
	return &MovingController{DB: db, Pricing: pricing}
}

const movingDateLayout = "2006-01-02 15:04:05"

// minNoticeDays is how far in advance a move must be booked.
const minNoticeDays = 7

// CreateMovingDetail quotes and stores a new moving request. The price is
// derived from the great-circle distance between the two coordinates, the
// home size and the packing-service flag, and the request always starts
// in pending status.
func (mc *MovingController) CreateMovingDetail(c *gin.Context) {
	type request struct {
		FromLocation      string  `json:"from_location" binding:"required"`
		FromLat           float64 `json:"from_lat" binding:"gte=-90,lte=90"`
		FromLon           float64 `json:"from_lon" binding:"gte=-180,lte=180"`
		ToLocation        string  `json:"to_location" binding:"required"`
		ToLat             float64 `json:"to_lat" binding:"gte=-90,lte=90"`
		ToLon             float64 `json:"to_lon" binding:"gte=-180,lte=180"`
		HomeSize          string  `json:"home_size" binding:"required"`
		MovingDate        string  `json:"moving_date" binding:"required"`
		PackingService    bool    `json:"packing_service"`
		AdditionalDetails string  `json:"additional_details"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !services.IsValidHomeSize(req.HomeSize) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown home size"))
		return
	}

	movingDate, err := time.Parse(movingDateLayout, req.MovingDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid moving date format"))
		return
	}

	now := time.Now()
	if movingDate.Before(now) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("moving date cannot be in the past"))
		return
	}
	if movingDate.Before(now.AddDate(0, 0, minNoticeDays)) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("moving date should be at least 7 days from today"))
		return
	}

	distance := services.HaversineDistance(req.FromLat, req.FromLon, req.ToLat, req.ToLon)
	price, err := mc.Pricing.CalculatePrice(distance, req.HomeSize, req.PackingService)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	detail := models.MovingDetail{
		UserID:            currentUserID(c),
		FromLocation:      req.FromLocation,
		ToLocation:        req.ToLocation,
		FromLat:           req.FromLat,
		FromLon:           req.FromLon,
		ToLat:             req.ToLat,
		ToLon:             req.ToLon,
		HomeSize:          strings.ToLower(req.HomeSize),
		MovingDate:        movingDate,
		Price:             price,
		PackingService:    req.PackingService,
		AdditionalDetails: req.AdditionalDetails,
		Status:            models.StatusPending,
	}

	if err := mc.DB.Create(&detail).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Moving request %d created for user %d (%.1f km, price %.2f)",
		detail.ID, detail.UserID, distance, price)

	utils.RespondJSON(c, http.StatusCreated, "Moving details added successfully", detail)
}

// ListMovingDetails returns the caller's own requests. An empty result is
// a normal 200 with an empty list, not an error.
func (mc *MovingController) ListMovingDetails(c *gin.Context) {
	details := []models.MovingDetail{}
	if err := mc.DB.Where("user_id = ?", currentUserID(c)).Order("id asc").Find(&details).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Moving details", details)
}

// UpdateMovingDetail applies a partial owner update. The quoted price is
// deliberately not recomputed when locations or home size change; the
// original quote stands unless the price itself is overwritten.
func (mc *MovingController) UpdateMovingDetail(c *gin.Context) {
	detailID, _ := strconv.Atoi(c.Param("detail_id"))

	var detail models.MovingDetail
	if err := mc.DB.Where("id = ? AND user_id = ?", detailID, currentUserID(c)).First(&detail).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("moving detail not found"))
		return
	}

	var req struct {
		FromLocation      *string  `json:"from_location"`
		ToLocation        *string  `json:"to_location"`
		HomeSize          *string  `json:"home_size"`
		MovingDate        *string  `json:"moving_date"`
		Price             *float64 `json:"price"`
		AdditionalDetails *string  `json:"additional_details"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.FromLocation != nil {
		detail.FromLocation = *req.FromLocation
	}
	if req.ToLocation != nil {
		detail.ToLocation = *req.ToLocation
	}
	if req.HomeSize != nil {
		if !services.IsValidHomeSize(*req.HomeSize) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("unknown home size"))
			return
		}
		detail.HomeSize = strings.ToLower(*req.HomeSize)
	}
	if req.MovingDate != nil {
		movingDate, err := time.Parse(movingDateLayout, *req.MovingDate)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid moving date format"))
			return
		}
		detail.MovingDate = movingDate
	}
	if req.Price != nil {
		if *req.Price < 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("price cannot be negative"))
			return
		}
		detail.Price = *req.Price
	}
	if req.AdditionalDetails != nil {
		detail.AdditionalDetails = *req.AdditionalDetails
	}

	if err := mc.DB.Save(&detail).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Moving detail updated successfully", detail)
}

func (mc *MovingController) DeleteMovingDetail(c *gin.Context) {
	detailID, _ := strconv.Atoi(c.Param("detail_id"))

	var detail models.MovingDetail
	if err := mc.DB.Where("id = ? AND user_id = ?", detailID, currentUserID(c)).First(&detail).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("moving detail not found"))
		return
	}

	if err := mc.DB.Delete(&detail).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Moving detail deleted successfully", gin.H{"detail_id": detail.ID})
}
