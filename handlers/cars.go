package handlers

import (
	"net/http"

	"swiftfleet/services/catalog"

	"github.com/gin-gonic/gin"
)

// ListCarsHandler handles GET /api/cars.
func ListCarsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cars": catalog.Cars()})
}

// GetCarHandler handles GET /api/cars/:id.
func GetCarHandler(c *gin.Context) {
	id := c.Param("id")
	car, ok := catalog.CarByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "car type not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"car": car})
}
