package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/i-gichachi/kuhama-app/models"
	"github.com/i-gichachi/kuhama-app/router"
	"github.com/i-gichachi/kuhama-app/services"
)

func TestInventoryCRUDAndFilters(t *testing.T) {
	db := setupTestDB(t)
	_, token := seedUser(t, db, "inventoryowner", models.RoleCustomer)
	r := router.SetupRouter(db, services.DefaultPricing())

	items := []map[string]interface{}{
		{"item_name": "Table", "quantity": 1, "description": "Wooden dining table", "category": "Furniture", "condition": "New"},
		{"item_name": "Sofa", "quantity": 2, "description": "Leather sofa", "category": "Furniture", "condition": "Used"},
		{"item_name": "Fridge", "quantity": 1, "description": "Double door fridge", "category": "Appliances", "condition": "New"},
	}
	for _, item := range items {
		w := doJSON(t, r, "POST", "/inventory/add", token, item)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	// Unfiltered list returns everything the caller owns.
	w := doJSON(t, r, "GET", "/inventory", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeResponse(t, w)["data"].([]interface{}), 3)

	// Keyword matches name or description.
	w = doJSON(t, r, "GET", "/inventory?keyword=sofa", token, nil)
	assert.Len(t, decodeResponse(t, w)["data"].([]interface{}), 1)

	// Category and condition filters combine.
	w = doJSON(t, r, "GET", "/inventory?category=Furniture&condition=New", token, nil)
	assert.Len(t, decodeResponse(t, w)["data"].([]interface{}), 1)

	// Update and delete round trip.
	w = doJSON(t, r, "GET", "/inventory?keyword=Fridge", token, nil)
	fridge := decodeResponse(t, w)["data"].([]interface{})[0].(map[string]interface{})
	fridgeID := int(fridge["id"].(float64))

	w = doJSON(t, r, "PUT", fmt.Sprintf("/inventory/update/%d", fridgeID), token, map[string]interface{}{
		"quantity": 3,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), decodeResponse(t, w)["data"].(map[string]interface{})["quantity"])

	w = doJSON(t, r, "DELETE", fmt.Sprintf("/inventory/delete/%d", fridgeID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", "/inventory", token, nil)
	assert.Len(t, decodeResponse(t, w)["data"].([]interface{}), 2)
}

func TestInventoryOwnership(t *testing.T) {
	db := setupTestDB(t)
	_, ownerToken := seedUser(t, db, "invowner", models.RoleCustomer)
	_, otherToken := seedUser(t, db, "invother", models.RoleCustomer)
	r := router.SetupRouter(db, services.DefaultPricing())

	w := doJSON(t, r, "POST", "/inventory/add", ownerToken, map[string]interface{}{
		"item_name": "Bed", "quantity": 1, "description": "King size", "category": "Furniture", "condition": "Used",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	itemID := int(decodeResponse(t, w)["data"].(map[string]interface{})["id"].(float64))

	w = doJSON(t, r, "PUT", fmt.Sprintf("/inventory/update/%d", itemID), otherToken, map[string]interface{}{
		"quantity": 5,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, "GET", "/inventory", otherToken, nil)
	assert.Len(t, decodeResponse(t, w)["data"].([]interface{}), 0)
}
