package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildDemoQueryDefaults(t *testing.T) {
	query, ok := buildDemoQuery("$gt", map[string]interface{}{})
	assert.True(t, ok)
	assert.Equal(t, bson.M{"prix": bson.M{"$gt": 50}}, query)

	query, ok = buildDemoQuery("$gte", map[string]interface{}{})
	assert.True(t, ok)
	assert.Equal(t, bson.M{"stock": bson.M{"$gte": 50}}, query)

	query, ok = buildDemoQuery("$regex", map[string]interface{}{})
	assert.True(t, ok)
	assert.Equal(t, bson.M{"nom": bson.M{"$regex": "^[SC]", "$options": "i"}}, query)

	query, ok = buildDemoQuery("$where", map[string]interface{}{})
	assert.True(t, ok)
	assert.Equal(t, bson.M{"$where": "this.prix * this.stock > 1000"}, query)
}

func TestBuildDemoQueryUsesProvidedParams(t *testing.T) {
	query, ok := buildDemoQuery("$in", map[string]interface{}{
		"field":  "categorie",
		"values": []interface{}{"Chaussures"},
	})
	assert.True(t, ok)
	assert.Equal(t, bson.M{"categorie": bson.M{"$in": []interface{}{"Chaussures"}}}, query)

	query, ok = buildDemoQuery("$exists", map[string]interface{}{"field": "promotion", "exists": false})
	assert.True(t, ok)
	assert.Equal(t, bson.M{"promotion": bson.M{"$exists": false}}, query)
}

func TestBuildDemoQueryRejectsUnknownOperator(t *testing.T) {
	_, ok := buildDemoQuery("$nearSphere", map[string]interface{}{})
	assert.False(t, ok)
}

func TestBuildDemoUpdateDefaults(t *testing.T) {
	update, ok := buildDemoUpdate("$set", map[string]interface{}{})
	assert.True(t, ok)
	assert.Equal(t, bson.M{"$set": bson.M{"prix": 100}}, update)

	update, ok = buildDemoUpdate("$pop", map[string]interface{}{})
	assert.True(t, ok)
	assert.Equal(t, bson.M{"$pop": bson.M{"tags": 1}}, update)

	update, ok = buildDemoUpdate("$currentDate", map[string]interface{}{})
	assert.True(t, ok)
	assert.Equal(t, bson.M{"$currentDate": bson.M{"lastModified": bson.M{"$type": "date"}}}, update)
}

func TestBuildDemoUpdatePopPositionFromParams(t *testing.T) {
	update, ok := buildDemoUpdate("$pop", map[string]interface{}{"value": float64(-1)})
	assert.True(t, ok)
	assert.Equal(t, bson.M{"$pop": bson.M{"tags": -1}}, update)
}

func TestDemoOperatorsUnknownOperatorReturns400(t *testing.T) {
	gin.SetMode(gin.TestMode)

	body, _ := json.Marshal(map[string]interface{}{"operator": "$explode"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/demo/operators", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	DemoOperators(nil)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response["success"].(bool))
	assert.Equal(t, "Unknown operator: $explode", response["error"])
}
