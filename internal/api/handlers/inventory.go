package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cardfolio/cardfolio/internal/database"
	"github.com/cardfolio/cardfolio/internal/models"
)

// Maximum quantity allowed per inventory card
const maxQuantity = 9999

type InventoryHandler struct{}

func NewInventoryHandler() *InventoryHandler {
	return &InventoryHandler{}
}

func (h *InventoryHandler) GetInventory(c *gin.Context) {
	db := database.GetDB()

	var cards []models.InventoryCard
	if err := db.Order("added_at").Find(&cards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cards": cards})
}

func (h *InventoryHandler) AddCard(c *gin.Context) {
	var req models.AddCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.CardName == "" || req.Set == "" || req.Quantity == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cardName, set, and quantity are required"})
		return
	}
	if req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
		return
	}
	if req.Quantity > maxQuantity {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity exceeds maximum allowed (9999)"})
		return
	}

	condition := req.Condition
	if condition == "" {
		condition = models.ConditionNearMint
	}

	now := time.Now()
	card := models.InventoryCard{
		ID:        uuid.New().String(),
		CardName:  req.CardName,
		SetName:   req.Set,
		Quantity:  req.Quantity,
		Condition: condition,
		Notes:     req.Notes,
		AddedAt:   now,
		UpdatedAt: now,
	}

	if err := database.GetDB().Create(&card).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, card)
}

func (h *InventoryHandler) UpdateCard(c *gin.Context) {
	id := c.Param("id")
	db := database.GetDB()

	var card models.InventoryCard
	if err := db.First(&card, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var req models.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.CardName != nil {
		card.CardName = *req.CardName
	}
	if req.Set != nil {
		card.SetName = *req.Set
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 || *req.Quantity > maxQuantity {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity out of range"})
			return
		}
		card.Quantity = *req.Quantity
	}
	if req.Condition != nil {
		card.Condition = *req.Condition
	}
	if req.Notes != nil {
		card.Notes = *req.Notes
	}
	card.UpdatedAt = time.Now()

	if err := db.Save(&card).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, card)
}

func (h *InventoryHandler) DeleteCard(c *gin.Context) {
	id := c.Param("id")

	result := database.GetDB().Delete(&models.InventoryCard{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card deleted successfully"})
}

func (h *InventoryHandler) ImportCards(c *gin.Context) {
	var req models.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Cards == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cards array is required"})
		return
	}

	db := database.GetDB()
	now := time.Now()

	imported := make([]models.InventoryCard, 0, len(req.Cards))
	for _, entry := range req.Cards {
		cardName := entry.CardName
		if cardName == "" {
			cardName = entry.Name
		}

		quantity := entry.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		condition := entry.Condition
		if condition == "" {
			condition = models.ConditionNearMint
		}

		imported = append(imported, models.InventoryCard{
			ID:        uuid.New().String(),
			CardName:  cardName,
			SetName:   entry.Set,
			Quantity:  quantity,
			Condition: condition,
			Notes:     entry.Notes,
			AddedAt:   now,
			UpdatedAt: now,
		})
	}

	if len(imported) > 0 {
		if err := db.Create(&imported).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	var cards []models.InventoryCard
	if err := db.Order("added_at").Find(&cards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Imported %d cards", len(imported)),
		"cards":   cards,
	})
}
