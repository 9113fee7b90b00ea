package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"coffee-filter-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const placesPhotoURL = "https://maps.googleapis.com/maps/api/place/photo"

// PhotoHandler redirects photo requests to the image provider. The provider
// credential lives only here, server-side; it is combined with the stored
// opaque photo reference per request and never appears in any record.
type PhotoHandler struct {
	service ShopGetter
	apiKey  string
}

// Service interface for dependency injection
type ShopGetter interface {
	Get(ctx context.Context, id int) (*models.CoffeeShop, error)
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(svc ShopGetter, apiKey string) *PhotoHandler {
	return &PhotoHandler{service: svc, apiKey: apiKey}
}

// Photo handles GET /coffee-shops/:id/photo requests
//
//	@Summary	Redirect to a shop's photo
//	@Param		id			path	int	true	"shop id"
//	@Param		maxwidth	query	int	false	"maximum image width"	default(400)
//	@Success	302
//	@Failure	404	{object}	map[string]string
//	@Router		/coffee-shops/{id}/photo [get]
func (h *PhotoHandler) Photo(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shop id"})
		return
	}

	maxWidth := 400
	if mwStr := c.Query("maxwidth"); mwStr != "" {
		maxWidth, err = strconv.Atoi(mwStr)
		if err != nil || maxWidth <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid maxwidth parameter"})
			return
		}
	}

	shop, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	if shop.PhotoReference == nil || *shop.PhotoReference == "" {
		// No provider token stored; fall back to the plain image URL.
		if shop.Image != "" {
			c.Redirect(http.StatusFound, shop.Image)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "no photo available for this coffee shop"})
		return
	}

	if h.apiKey == "" {
		log.Error().Msg("photo proxy requested but GOOGLE_PLACES_API_KEY is not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "photo proxy is not configured"})
		return
	}

	query := url.Values{}
	query.Set("maxwidth", strconv.Itoa(maxWidth))
	query.Set("photo_reference", *shop.PhotoReference)
	query.Set("key", h.apiKey)

	c.Redirect(http.StatusFound, fmt.Sprintf("%s?%s", placesPhotoURL, query.Encode()))
}
