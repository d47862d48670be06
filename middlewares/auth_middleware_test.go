package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/i-gichachi/kuhama-app/middlewares"
	"github.com/i-gichachi/kuhama-app/models"
	"github.com/i-gichachi/kuhama-app/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	utils.InitJWT("test-secret")
}

func protectedRouter(role string) *gin.Engine {
	r := gin.New()
	group := r.Group("/")
	group.Use(middlewares.AuthMiddleware())
	if role != "" {
		group.Use(middlewares.RequireRole(role))
	}
	group.GET("/protected", func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func request(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	w := request(protectedRouter(""), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	w := request(protectedRouter(""), "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	token, err := utils.GenerateToken(42, models.RoleCustomer)
	assert.NoError(t, err)

	w := request(protectedRouter(""), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}

func TestRequireRoleRejectsWrongRole(t *testing.T) {
	token, err := utils.GenerateToken(7, models.RoleCustomer)
	assert.NoError(t, err)

	w := request(protectedRouter(models.RoleAdmin), token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	token, err := utils.GenerateToken(7, models.RoleAdmin)
	assert.NoError(t, err)

	w := request(protectedRouter(models.RoleAdmin), token)
	assert.Equal(t, http.StatusOK, w.Code)
}
