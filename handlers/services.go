package handlers

import (
	"net/http"

	"nestly/services/catalog"

	"github.com/gin-gonic/gin"
)

// GetAvailableServices lists every bookable service's metadata.
func GetAvailableServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": catalog.ListServices()})
}

// GetServiceConfig returns the full config for one service, including
// its option tables and add-on catalog. Unknown ids are a 404, not an
// error state.
func GetServiceConfig(c *gin.Context) {
	cfg, ok := catalog.GetConfig(c.Param("serviceID"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": cfg})
}
