package services

import (
	"context"
	"testing"

	"github.com/cardfolio/cardfolio/internal/models"
)

func observations(cardName string, prices ...float64) []models.PriceObservation {
	result := make([]models.PriceObservation, 0, len(prices))
	for _, price := range prices {
		result = append(result, models.PriceObservation{
			CardName:  cardName,
			Price:     price,
			Currency:  "USD",
			Condition: "Near Mint",
		})
	}
	return result
}

func TestComputeStatisticsLowerMiddleMedian(t *testing.T) {
	tests := []struct {
		name   string
		prices []float64
		median float64
	}{
		{"even count picks lower middle", []float64{10, 20, 30, 40}, 20},
		{"odd count picks middle", []float64{10, 20, 30}, 20},
		{"two elements pick lower", []float64{289.99, 299.99}, 289.99},
		{"single element", []float64{42}, 42},
		{"unsorted input", []float64{40, 10, 30, 20}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := computeStatistics(tt.prices)
			if stats.Median != tt.median {
				t.Errorf("median = %v, want %v", stats.Median, tt.median)
			}
		})
	}
}

func TestComputeStatisticsSummary(t *testing.T) {
	stats := computeStatistics([]float64{10, 20, 30, 40})
	if stats.Min != 10 || stats.Max != 40 {
		t.Errorf("min/max = %v/%v, want 10/40", stats.Min, stats.Max)
	}
	if stats.Avg != 25 {
		t.Errorf("avg = %v, want 25", stats.Avg)
	}
	if stats.Count != 4 {
		t.Errorf("count = %v, want 4", stats.Count)
	}
}

func TestConfidenceThresholds(t *testing.T) {
	tests := []struct {
		count int
		want  models.Confidence
	}{
		{1, models.ConfidenceLow},
		{2, models.ConfidenceMedium},
		{3, models.ConfidenceMedium},
		{4, models.ConfidenceHigh},
		{10, models.ConfidenceHigh},
	}

	for _, tt := range tests {
		if got := confidenceFor(tt.count); got != tt.want {
			t.Errorf("confidenceFor(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestFilterBySet(t *testing.T) {
	cards := []models.InventoryCard{
		{CardName: "Charizard", SetName: "Base Set"},
		{CardName: "Snorlax", SetName: "Jungle"},
	}

	filtered := FilterBySet(cards, "base")
	if len(filtered) != 1 || filtered[0].CardName != "Charizard" {
		t.Errorf("set filter 'base' should match only Base Set, got %v", filtered)
	}

	if got := FilterBySet(cards, ""); len(got) != 2 {
		t.Errorf("empty filter should keep all cards, got %d", len(got))
	}

	if got := FilterBySet(cards, "JUNGLE"); len(got) != 1 {
		t.Errorf("filter should be case-insensitive, got %d", len(got))
	}
}

func TestAnalyzePricingMergesCaseInsensitively(t *testing.T) {
	cards := []models.InventoryCard{
		{CardName: "CHARIZARD", SetName: "Base Set", Quantity: 1},
	}
	pricing := []models.ListingPrices{
		{ItemID: "a", Title: "Lot A", CardPrices: observations("Charizard", 100)},
		{ItemID: "b", Title: "Lot B", CardPrices: observations("charizard", 200)},
	}

	result := AnalyzePricing(cards, pricing)

	if result.Summary.UniqueCardsFound != 1 {
		t.Errorf("expected one statistics bucket, got %d", result.Summary.UniqueCardsFound)
	}
	match := result.Matches[0]
	if match.Pricing == nil {
		t.Fatal("expected inventory card to match across case variants")
	}
	if match.Pricing.Count != 2 {
		t.Errorf("expected 2 merged observations, got %d", match.Pricing.Count)
	}
}

func TestAnalyzePricingCharizardScenario(t *testing.T) {
	cards := []models.InventoryCard{
		{CardName: "Charizard", SetName: "Base Set", Quantity: 1, Condition: models.ConditionNearMint},
	}
	pricing := []models.ListingPrices{
		{ItemID: "listing-1", Title: "Base Set Lot", CardPrices: observations("Charizard", 299.99, 289.99)},
	}

	result := AnalyzePricing(cards, pricing)

	if result.TotalCardsAnalyzed != 1 || result.CardsWithPricing != 1 {
		t.Fatalf("unexpected totals: analyzed=%d priced=%d", result.TotalCardsAnalyzed, result.CardsWithPricing)
	}

	match := result.Matches[0]
	if match.Pricing == nil || match.Recommendation == nil {
		t.Fatal("expected pricing and recommendation")
	}
	if match.Pricing.Count != 2 || match.Pricing.Min != 289.99 || match.Pricing.Max != 299.99 {
		t.Errorf("unexpected stats: %+v", match.Pricing)
	}
	if match.Recommendation.Confidence != models.ConfidenceMedium {
		t.Errorf("confidence = %q, want medium", match.Recommendation.Confidence)
	}
	if match.Recommendation.SuggestedPrice != 289.99 {
		t.Errorf("suggested price = %v, want 289.99 (lower middle)", match.Recommendation.SuggestedPrice)
	}
	if match.Recommendation.PriceRange != "$289.99 - $299.99" {
		t.Errorf("price range = %q", match.Recommendation.PriceRange)
	}
}

func TestAnalyzePricingUnmatchedCardHasNoPricing(t *testing.T) {
	cards := []models.InventoryCard{
		{CardName: "Mewtwo", SetName: "Base Set", Quantity: 1},
	}
	pricing := []models.ListingPrices{
		{ItemID: "a", Title: "Lot A", CardPrices: observations("Charizard", 100)},
	}

	result := AnalyzePricing(cards, pricing)

	if result.CardsWithPricing != 0 {
		t.Errorf("expected no priced cards, got %d", result.CardsWithPricing)
	}
	match := result.Matches[0]
	// Pricing and recommendation are absent together or present together
	if match.Pricing != nil || match.Recommendation != nil {
		t.Errorf("unmatched card should have nil pricing and recommendation: %+v", match)
	}
}

func TestAnalyzePricingSummary(t *testing.T) {
	cards := []models.InventoryCard{}
	pricing := []models.ListingPrices{
		{ItemID: "a", Title: "Lot A", CardPrices: observations("Charizard", 100)},
		{ItemID: "b", Title: "Lot B", CardPrices: observations("Blastoise", 50)},
	}

	result := AnalyzePricing(cards, pricing)

	if result.Summary.TotalListingsAnalyzed != 2 {
		t.Errorf("listings analyzed = %d, want 2", result.Summary.TotalListingsAnalyzed)
	}
	if result.Summary.UniqueCardsFound != 2 {
		t.Errorf("unique cards = %d, want 2", result.Summary.UniqueCardsFound)
	}
}

func TestCompareRejectsEmptyItemIDs(t *testing.T) {
	svc := NewAnalysisService(nil, nil)

	// The guard must fire before any inventory load or listing fetch
	if _, err := svc.Compare(context.Background(), "", nil); err == nil {
		t.Fatal("expected error for empty item ids")
	}
	if _, err := svc.Compare(context.Background(), "base", []string{}); err == nil {
		t.Fatal("expected error for empty item ids")
	}
}
