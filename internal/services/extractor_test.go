package services

import (
	"testing"

	"github.com/cardfolio/cardfolio/internal/models"
)

func TestExtractCardPricesNoVariations(t *testing.T) {
	if got := ExtractCardPrices(nil); len(got) != 0 {
		t.Errorf("nil listing should yield no observations, got %d", len(got))
	}

	listing := &models.Listing{ItemID: "v1|1|0", Title: "Single card", Condition: "Near Mint"}
	if got := ExtractCardPrices(listing); len(got) != 0 {
		t.Errorf("listing without variations should yield no observations, got %d", len(got))
	}
}

func TestExtractCardPricesDefaults(t *testing.T) {
	listing := &models.Listing{
		ItemID: "v1|1|0",
		Title:  "Pick your card",
		ItemVariations: []models.Variation{
			{
				// No specifications and no price
			},
			{
				Specifications: []models.Specification{{Name: "Charizard"}},
				Price:          models.Price{Value: "not-a-number", Currency: "USD"},
			},
			{
				Specifications: []models.Specification{{Name: "Blastoise"}},
				Price:          models.Price{Value: "-5.00", Currency: "USD"},
			},
		},
	}

	got := ExtractCardPrices(listing)
	if len(got) != 3 {
		t.Fatalf("expected 3 observations, got %d", len(got))
	}

	if got[0].CardName != "Unknown" {
		t.Errorf("missing specification should yield Unknown, got %q", got[0].CardName)
	}
	if got[0].Price != 0 || got[1].Price != 0 || got[2].Price != 0 {
		t.Errorf("missing/unparsable/negative prices should default to 0, got %v %v %v",
			got[0].Price, got[1].Price, got[2].Price)
	}
	if got[0].AvailableQuantity != 0 {
		t.Errorf("missing quantity should default to 0, got %d", got[0].AvailableQuantity)
	}
	if got[0].Condition != "Unknown" {
		t.Errorf("missing listing condition should yield Unknown, got %q", got[0].Condition)
	}
	if got[0].Currency != "USD" {
		t.Errorf("missing currency should default to USD, got %q", got[0].Currency)
	}
}

func TestExtractCardPricesInheritsListingCondition(t *testing.T) {
	listing := &models.Listing{
		ItemID:    "v1|1|0",
		Title:     "Pick your card",
		Condition: "Lightly Played",
		ItemVariations: []models.Variation{
			{
				Specifications:    []models.Specification{{Name: "Snorlax"}},
				Price:             models.Price{Value: "49.99", Currency: "USD"},
				AvailableQuantity: 7,
			},
		},
	}

	got := ExtractCardPrices(listing)
	if len(got) != 1 {
		t.Fatalf("expected 1 observation, got %d", len(got))
	}
	obs := got[0]
	if obs.CardName != "Snorlax" {
		t.Errorf("card name = %q, want Snorlax", obs.CardName)
	}
	if obs.Price != 49.99 {
		t.Errorf("price = %v, want 49.99", obs.Price)
	}
	if obs.AvailableQuantity != 7 {
		t.Errorf("quantity = %d, want 7", obs.AvailableQuantity)
	}
	if obs.Condition != "Lightly Played" {
		t.Errorf("condition = %q, want inherited Lightly Played", obs.Condition)
	}
}
