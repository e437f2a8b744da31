package services

import (
	"fmt"

	"github.com/cardfolio/cardfolio/internal/models"
)

// Synthetic catalog served whenever live marketplace access is missing or
// fails. Entries are fixed so downstream figures are reproducible; every
// payload is tagged MockData so the UI can disclose that prices are
// illustrative.

type mockCatalogEntry struct {
	summary    models.ListingSummary
	variations []models.Variation
}

var mockCatalog = []mockCatalogEntry{
	{
		summary: models.ListingSummary{
			ItemID:          "mock-001",
			Title:           "Pokemon Base Set PICK YOUR CARD - Charizard, Blastoise, Venusaur + More",
			Price:           models.Price{Value: "99.99", Currency: "USD"},
			Condition:       "Near Mint",
			ItemWebURL:      "https://www.ebay.com/itm/mock-001",
			ThumbnailImages: []models.Image{{ImageURL: "https://via.placeholder.com/150"}},
			Seller:          &models.Seller{Username: "mock_seller_1", FeedbackPercentage: "99.5"},
			ItemHref:        "/api/ebay/item/mock-001",
		},
		variations: []models.Variation{
			mockVariation("Charizard", "299.99", 3),
			mockVariation("Blastoise", "89.99", 5),
			mockVariation("Venusaur", "79.99", 4),
			mockVariation("Alakazam", "39.99", 8),
			mockVariation("Pikachu", "24.99", 12),
		},
	},
	{
		summary: models.ListingSummary{
			ItemID:          "mock-002",
			Title:           "Pokemon Base Set Singles - PICK YOUR CARD - NM Condition",
			Price:           models.Price{Value: "149.99", Currency: "USD"},
			Condition:       "Near Mint",
			ItemWebURL:      "https://www.ebay.com/itm/mock-002",
			ThumbnailImages: []models.Image{{ImageURL: "https://via.placeholder.com/150"}},
			Seller:          &models.Seller{Username: "mock_seller_2", FeedbackPercentage: "98.8"},
			ItemHref:        "/api/ebay/item/mock-002",
		},
		variations: []models.Variation{
			mockVariation("Charizard", "289.99", 2),
			mockVariation("Blastoise", "85.99", 6),
			mockVariation("Venusaur", "75.99", 5),
			mockVariation("Raichu", "29.99", 10),
		},
	},
	{
		summary: models.ListingSummary{
			ItemID:          "mock-003",
			Title:           "Pokemon Jungle Set PICK YOUR CARD - Complete Set Available",
			Price:           models.Price{Value: "79.99", Currency: "USD"},
			Condition:       "Lightly Played",
			ItemWebURL:      "https://www.ebay.com/itm/mock-003",
			ThumbnailImages: []models.Image{{ImageURL: "https://via.placeholder.com/150"}},
			Seller:          &models.Seller{Username: "mock_seller_3", FeedbackPercentage: "100"},
			ItemHref:        "/api/ebay/item/mock-003",
		},
		variations: []models.Variation{
			mockVariation("Pidgeot", "19.99", 15),
			mockVariation("Snorlax", "49.99", 7),
			mockVariation("Clefable", "14.99", 20),
		},
	},
	{
		summary: models.ListingSummary{
			ItemID:          "mock-004",
			Title:           "Pokemon Fossil Set - Pick Your Card - Near Mint Singles",
			Price:           models.Price{Value: "89.99", Currency: "USD"},
			Condition:       "Near Mint",
			ItemWebURL:      "https://www.ebay.com/itm/mock-004",
			ThumbnailImages: []models.Image{{ImageURL: "https://via.placeholder.com/150"}},
			Seller:          &models.Seller{Username: "mock_seller_4", FeedbackPercentage: "97.5"},
			ItemHref:        "/api/ebay/item/mock-004",
		},
		variations: []models.Variation{
			mockVariation("Aerodactyl", "34.99", 9),
			mockVariation("Gengar", "44.99", 6),
			mockVariation("Kabutops", "24.99", 12),
		},
	},
}

func mockVariation(name, price string, quantity int) models.Variation {
	return models.Variation{
		Specifications:    []models.Specification{{Name: name}},
		Price:             models.Price{Value: price, Currency: "USD"},
		AvailableQuantity: quantity,
	}
}

func mockSearchResults(limit int) *models.SearchResult {
	items := make([]models.ListingSummary, 0, len(mockCatalog))
	for _, entry := range mockCatalog {
		items = append(items, entry.summary)
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	return &models.SearchResult{
		Total:    len(mockCatalog),
		Items:    items,
		Href:     "/api/mock/search",
		MockData: true,
		Source:   models.DataSourceMock,
	}
}

// mockListingDetails resolves unknown ids to the first catalog entry so
// the synthetic path never fails.
func mockListingDetails(itemID string) *models.Listing {
	variations := mockCatalog[0].variations
	for _, entry := range mockCatalog {
		if entry.summary.ItemID == itemID {
			variations = entry.variations
			break
		}
	}

	return &models.Listing{
		ItemID:         itemID,
		Title:          fmt.Sprintf("Mock Pokemon Card Listing %s", itemID),
		Price:          models.Price{Value: "99.99", Currency: "USD"},
		Condition:      "Near Mint",
		ItemVariations: variations,
		ItemWebURL:     fmt.Sprintf("https://www.ebay.com/itm/%s", itemID),
		Image:          &models.Image{ImageURL: "https://via.placeholder.com/400"},
		MockData:       true,
		Source:         models.DataSourceMock,
	}
}
