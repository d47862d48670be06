package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/i-gichachi/kuhama-app/models"
	"github.com/i-gichachi/kuhama-app/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	utils.InitJWT("test-secret")
}

// setupTestDB opens a private in-memory SQLite database per test so state
// never leaks between tests.
func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Inventory{},
		&models.MovingDetail{},
		&models.Notification{},
		&models.Message{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

var seededUsers int

// seedUser inserts a user with the given role and returns it together
// with a valid bearer token.
func seedUser(t *testing.T, db *gorm.DB, username, role string) (models.User, string) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("Password@123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	seededUsers++
	user := models.User{
		FirstName:    "Test",
		Surname:      "User",
		Username:     username,
		Email:        username + "@example.com",
		PhoneNumber:  fmt.Sprintf("7%08d", seededUsers),
		Gender:       "male",
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return user, token
}

// doJSON performs a request against the router with an optional bearer
// token and JSON body, and returns the recorded response.
func doJSON(t *testing.T, r *gin.Engine, method, url, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return resp
}
