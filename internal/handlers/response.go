package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondOKWithMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "message": message})
}

func respondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data, "message": message})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func respondError(c *gin.Context, status int, message string) {
	logrus.WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
		"status": status,
	}).Warn(message)
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": message})
}

// respondStoreError maps an unclassified store failure to the uniform
// envelope instead of leaking the driver error to the client.
func respondStoreError(c *gin.Context, err error) {
	logrus.WithError(err).Error("store call failed")
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "db error"})
}
