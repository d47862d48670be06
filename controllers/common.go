package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var ErrNoAdminUser = errors.New("admin user not found")

// currentUserID reads the identity resolved by the auth middleware.
// Handlers behind AuthMiddleware can rely on it being present.
func currentUserID(c *gin.Context) uint {
	id, _ := c.Get("userID")
	userID, _ := id.(uint)
	return userID
}
