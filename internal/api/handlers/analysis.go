package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardfolio/cardfolio/internal/database"
	"github.com/cardfolio/cardfolio/internal/models"
	"github.com/cardfolio/cardfolio/internal/services"
)

type AnalysisHandler struct {
	analysisService *services.AnalysisService
}

func NewAnalysisHandler(analysisService *services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// Compare matches the inventory (optionally narrowed by set) against the
// supplied marketplace listings.
func (h *AnalysisHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.ItemIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemIds array is required"})
		return
	}

	result, err := h.analysisService.Compare(c.Request.Context(), req.Set, req.ItemIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Recommendations lists the relevant inventory cards as a scaffold for the
// UI. Pricing fields stay empty until listings are analyzed via compare.
func (h *AnalysisHandler) Recommendations(c *gin.Context) {
	setFilter := c.Query("set")

	var cards []models.InventoryCard
	if err := database.GetDB().Order("added_at").Find(&cards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	relevant := services.FilterBySet(cards, setFilter)

	recommendations := make([]models.RecommendationItem, 0, len(relevant))
	for _, card := range relevant {
		recommendations = append(recommendations, models.RecommendationItem{
			CardName:  card.CardName,
			Set:       card.SetName,
			Quantity:  card.Quantity,
			Condition: card.Condition,
			Note:      "Search eBay listings to get pricing recommendations",
		})
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}
