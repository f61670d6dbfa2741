package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func jsonRequest(method, path string, payload interface{}) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func testContext(w *httptest.ResponseRecorder, req *http.Request, id string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	if id != "" {
		c.Params = gin.Params{{Key: "id", Value: id}}
	}
	return c
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestGetProductMalformedIDReturns400(t *testing.T) {
	w := httptest.NewRecorder()
	c := testContext(w, httptest.NewRequest("GET", "/api/products/notanid", nil), "notanid")

	GetProduct(nil)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeEnvelope(t, w)
	assert.False(t, response["success"].(bool))
	assert.Equal(t, "Invalid product ID", response["error"])
}

func TestUpdateProductMalformedIDReturns400(t *testing.T) {
	w := httptest.NewRecorder()
	c := testContext(w, jsonRequest("PUT", "/api/products/zzz", gin.H{"prix": 10}), "zzz")

	UpdateProduct(nil)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteProductMalformedIDReturns400(t *testing.T) {
	w := httptest.NewRecorder()
	c := testContext(w, httptest.NewRequest("DELETE", "/api/products/12", nil), "12")

	DeleteProduct(nil)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProductMissingFieldNamesTheField(t *testing.T) {
	w := httptest.NewRecorder()
	c := testContext(w, jsonRequest("POST", "/api/products", gin.H{"nom": "Echarpe"}), "")

	CreateProduct(nil)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeEnvelope(t, w)
	assert.Equal(t, "Missing field: prix", response["error"])
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	w := httptest.NewRecorder()
	c := testContext(w, jsonRequest("POST", "/api/products", gin.H{
		"nom":       "Echarpe",
		"prix":      -1,
		"stock":     3,
		"categorie": "Accessoires",
	}), "")

	CreateProduct(nil)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddOrderItemRequiresNameAndPrice(t *testing.T) {
	w := httptest.NewRecorder()
	c := testContext(w, jsonRequest(
		"POST",
		"/api/orders/embedding/64b00000000000000000face/products",
		gin.H{"nom": "Gants"},
	), "64b00000000000000000face")

	AddOrderItem(nil)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeEnvelope(t, w)
	assert.Equal(t, "nom and prix required", response["error"])
}

func TestAddProductTagRequiresTag(t *testing.T) {
	w := httptest.NewRecorder()
	c := testContext(w, jsonRequest(
		"POST",
		"/api/products/64b00000000000000000face/tags",
		gin.H{},
	), "64b00000000000000000face")

	AddProductTag(nil)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeEnvelope(t, w)
	assert.Equal(t, "Tag is required", response["error"])
}

func TestCreateLinkedOrderRejectsMalformedClientID(t *testing.T) {
	w := httptest.NewRecorder()
	c := testContext(w, jsonRequest("POST", "/api/orders/linking", gin.H{
		"client_id": "not-an-id",
		"produits":  []gin.H{{"produit_id": "64b00000000000000000face"}},
	}), "")

	CreateLinkedOrder(nil)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeEnvelope(t, w)
	assert.Equal(t, "Invalid client_id", response["error"])
}

func TestCreateIndexRequiresField(t *testing.T) {
	w := httptest.NewRecorder()
	c := testContext(w, jsonRequest("POST", "/api/indexes", gin.H{}), "")

	CreateIndex(nil)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeEnvelope(t, w)
	assert.Equal(t, "Field name required", response["error"])
}
