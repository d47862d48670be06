package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/i-gichachi/kuhama-app/models"
	"github.com/i-gichachi/kuhama-app/router"
	"github.com/i-gichachi/kuhama-app/services"
)

func TestSendMessageToAdminInbox(t *testing.T) {
	db := setupTestDB(t)
	customer, customerToken := seedUser(t, db, "sender", models.RoleCustomer)
	admin, adminToken := seedUser(t, db, "receiver", models.RoleAdmin)
	r := router.SetupRouter(db, services.DefaultPricing())

	w := doJSON(t, r, "POST", "/send-message", customerToken, map[string]string{
		"content": "Hello, I need assistance with my moving details",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "GET", "/admin/messages", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	messages := decodeResponse(t, w)["data"].([]interface{})
	assert.Len(t, messages, 1)

	msg := messages[0].(map[string]interface{})
	assert.Equal(t, float64(customer.ID), msg["sender_id"])
	assert.Equal(t, float64(admin.ID), msg["receiver_id"])
	assert.Equal(t, "Hello, I need assistance with my moving details", msg["content"])
}

func TestSendMessageWithoutAdmin(t *testing.T) {
	db := setupTestDB(t)
	_, customerToken := seedUser(t, db, "lonelysender", models.RoleCustomer)
	r := router.SetupRouter(db, services.DefaultPricing())

	w := doJSON(t, r, "POST", "/send-message", customerToken, map[string]string{
		"content": "Anyone there?",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSendMessageRequiresContent(t *testing.T) {
	db := setupTestDB(t)
	_, customerToken := seedUser(t, db, "emptysender", models.RoleCustomer)
	seedUser(t, db, "someadmin", models.RoleAdmin)
	r := router.SetupRouter(db, services.DefaultPricing())

	w := doJSON(t, r, "POST", "/send-message", customerToken, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
