package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cardfolio/cardfolio/internal/models"
	"github.com/cardfolio/cardfolio/internal/services"
)

type EbayHandler struct {
	ebayService *services.EbayService
}

func NewEbayHandler(ebayService *services.EbayService) *EbayHandler {
	return &EbayHandler{
		ebayService: ebayService,
	}
}

// Search proxies a listing search. Only the query is required; category,
// limit, and sort fall back to the client defaults.
func (h *EbayHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}

	result := h.ebayService.Search(c.Request.Context(), query, c.Query("categoryId"), limit, c.Query("sort"))
	c.JSON(http.StatusOK, result)
}

func (h *EbayHandler) GetItem(c *gin.Context) {
	itemID := c.Param("itemId")
	listing := h.ebayService.GetListingDetails(c.Request.Context(), itemID)
	c.JSON(http.StatusOK, listing)
}

// GetItemPrices returns the flattened per-card observations for one listing.
func (h *EbayHandler) GetItemPrices(c *gin.Context) {
	itemID := c.Param("itemId")
	listing := h.ebayService.GetListingDetails(c.Request.Context(), itemID)

	c.JSON(http.StatusOK, models.ListingPrices{
		ItemID:     itemID,
		Title:      listing.Title,
		CardPrices: services.ExtractCardPrices(listing),
		MockData:   listing.MockData,
	})
}

// BatchPrices returns observations for several listings at once, in the
// order the ids were supplied.
func (h *EbayHandler) BatchPrices(c *gin.Context) {
	var req models.BatchPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.ItemIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemIds array is required"})
		return
	}

	results := h.ebayService.GetListingPrices(c.Request.Context(), req.ItemIDs)
	c.JSON(http.StatusOK, gin.H{"results": results})
}
