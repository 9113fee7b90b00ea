package handler

import (
	"context"
	"net/http"
	"strconv"

	"coffee-filter-api/internal/models"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles location-based search requests
type SearchHandler struct {
	service SearchService
}

// Service interface for dependency injection
type SearchService interface {
	SearchByLocation(ctx context.Context, lat, lon, radiusKM float64) ([]models.CoffeeShop, error)
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(svc SearchService) *SearchHandler {
	return &SearchHandler{service: svc}
}

// ByLocation handles GET /coffee-shops/search/by-location requests
//
//	@Summary	Search coffee shops near a point
//	@Param		latitude	query	number	true	"center latitude"
//	@Param		longitude	query	number	true	"center longitude"
//	@Param		radius		query	number	false	"radius in kilometers"	default(10.0)
//	@Success	200			{array}	models.CoffeeShop
//	@Router		/coffee-shops/search/by-location [get]
func (h *SearchHandler) ByLocation(c *gin.Context) {
	latStr := c.Query("latitude")
	lonStr := c.Query("longitude")

	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'latitude' and 'longitude'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	radius := 10.0
	if radiusStr := c.Query("radius"); radiusStr != "" {
		radius, err = strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius format"})
			return
		}
	}

	shops, err := h.service.SearchByLocation(c.Request.Context(), lat, lon, radius)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, shops)
}
