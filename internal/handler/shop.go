package handler

import (
	"context"
	"net/http"
	"strconv"

	"coffee-filter-api/internal/models"

	"github.com/gin-gonic/gin"
)

// ShopHandler handles coffee shop CRUD requests
type ShopHandler struct {
	service ShopService
}

// Service interface for dependency injection
type ShopService interface {
	Create(ctx context.Context, params models.CreateShopParams) (*models.CoffeeShop, error)
	Get(ctx context.Context, id int) (*models.CoffeeShop, error)
	List(ctx context.Context, skip, limit int) ([]models.CoffeeShop, error)
	Update(ctx context.Context, id int, params models.UpdateShopParams) (*models.CoffeeShop, error)
	Delete(ctx context.Context, id int) error
}

// NewShopHandler creates a new shop handler
func NewShopHandler(svc ShopService) *ShopHandler {
	return &ShopHandler{service: svc}
}

// List handles GET /coffee-shops requests
//
//	@Summary	List coffee shops
//	@Param		skip	query	int	false	"offset"
//	@Param		limit	query	int	false	"page size"	default(100)
//	@Success	200		{array}	models.CoffeeShop
//	@Router		/coffee-shops [get]
func (h *ShopHandler) List(c *gin.Context) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid skip parameter"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit parameter"})
		return
	}

	shops, err := h.service.List(c.Request.Context(), skip, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, shops)
}

// Get handles GET /coffee-shops/:id requests
//
//	@Summary	Get a coffee shop by id
//	@Param		id	path		int	true	"shop id"
//	@Success	200	{object}	models.CoffeeShop
//	@Failure	404	{object}	map[string]string
//	@Router		/coffee-shops/{id} [get]
func (h *ShopHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shop id"})
		return
	}

	shop, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, shop)
}

// Create handles POST /coffee-shops requests
//
//	@Summary	Create a coffee shop
//	@Security	BearerAuth
//	@Param		shop	body		models.CreateShopParams	true	"shop fields"
//	@Success	201		{object}	models.CoffeeShop
//	@Failure	400		{object}	map[string]string
//	@Router		/coffee-shops [post]
func (h *ShopHandler) Create(c *gin.Context) {
	var params models.CreateShopParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	shop, err := h.service.Create(c.Request.Context(), params)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, shop)
}

// Update handles PUT /coffee-shops/:id requests
//
//	@Summary	Partially update a coffee shop
//	@Security	BearerAuth
//	@Param		id		path		int						true	"shop id"
//	@Param		shop	body		models.UpdateShopParams	true	"fields to change"
//	@Success	200		{object}	models.CoffeeShop
//	@Failure	404		{object}	map[string]string
//	@Router		/coffee-shops/{id} [put]
func (h *ShopHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shop id"})
		return
	}

	var params models.UpdateShopParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	shop, err := h.service.Update(c.Request.Context(), id, params)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, shop)
}

// Delete handles DELETE /coffee-shops/:id requests
//
//	@Summary	Delete a coffee shop
//	@Security	BearerAuth
//	@Param		id	path	int	true	"shop id"
//	@Success	204
//	@Failure	404	{object}	map[string]string
//	@Router		/coffee-shops/{id} [delete]
func (h *ShopHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shop id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
