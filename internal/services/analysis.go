package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/cardfolio/cardfolio/internal/metrics"
	"github.com/cardfolio/cardfolio/internal/models"
)

// AnalysisService joins the collector's inventory against price
// observations aggregated from marketplace listings.
type AnalysisService struct {
	ebay *EbayService
	db   *gorm.DB
}

func NewAnalysisService(ebay *EbayService, db *gorm.DB) *AnalysisService {
	return &AnalysisService{
		ebay: ebay,
		db:   db,
	}
}

// Compare fetches the given listings, aggregates their observations, and
// matches them against the inventory, optionally narrowed by a set-name
// filter. At least one listing id is required.
func (s *AnalysisService) Compare(ctx context.Context, setFilter string, itemIDs []string) (*models.AnalysisResult, error) {
	if len(itemIDs) == 0 {
		return nil, fmt.Errorf("at least one listing id is required")
	}

	var cards []models.InventoryCard
	if err := s.db.Order("added_at").Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("loading inventory: %w", err)
	}

	relevant := FilterBySet(cards, setFilter)
	pricing := s.ebay.GetListingPrices(ctx, itemIDs)

	result := AnalyzePricing(relevant, pricing)

	metrics.AnalysesTotal.Inc()
	metrics.AnalysisListings.Observe(float64(len(pricing)))

	return result, nil
}

// FilterBySet keeps the cards whose set name contains the filter,
// case-insensitively. An empty filter keeps everything.
func FilterBySet(cards []models.InventoryCard, setFilter string) []models.InventoryCard {
	if setFilter == "" {
		return cards
	}

	needle := strings.ToLower(setFilter)
	filtered := make([]models.InventoryCard, 0, len(cards))
	for _, card := range cards {
		if strings.Contains(strings.ToLower(card.SetName), needle) {
			filtered = append(filtered, card)
		}
	}
	return filtered
}

// AnalyzePricing aggregates observations across listings and emits one
// match per inventory card. Card names are matched case-insensitively and
// exactly; there is no fuzzy matching.
func AnalyzePricing(cards []models.InventoryCard, pricing []models.ListingPrices) *models.AnalysisResult {
	observed := make(map[string][]float64)
	for _, listing := range pricing {
		for _, observation := range listing.CardPrices {
			key := strings.ToLower(observation.CardName)
			observed[key] = append(observed[key], observation.Price)
		}
	}

	stats := make(map[string]*models.PriceStatistics, len(observed))
	for name, prices := range observed {
		stats[name] = computeStatistics(prices)
	}

	matches := make([]models.MatchResult, 0, len(cards))
	cardsWithPricing := 0
	for _, card := range cards {
		match := models.MatchResult{Card: card}
		if cardStats, ok := stats[strings.ToLower(card.CardName)]; ok {
			match.Pricing = cardStats
			match.Recommendation = buildRecommendation(cardStats)
			cardsWithPricing++
		}
		matches = append(matches, match)
	}

	return &models.AnalysisResult{
		TotalCardsAnalyzed: len(cards),
		CardsWithPricing:   cardsWithPricing,
		Matches:            matches,
		Summary: models.AnalysisSummary{
			TotalListingsAnalyzed: len(pricing),
			UniqueCardsFound:      len(stats),
		},
	}
}

// computeStatistics summarizes one card's observed prices. The median is
// the lower-middle element of the sorted sample ([10,20,30,40] -> 20),
// which keeps figures identical for consumers of the previous analyzer.
func computeStatistics(prices []float64) *models.PriceStatistics {
	sorted := make([]float64, len(prices))
	copy(sorted, prices)
	sort.Float64s(sorted)

	sum := 0.0
	for _, price := range sorted {
		sum += price
	}

	return &models.PriceStatistics{
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Avg:    sum / float64(len(sorted)),
		Median: sorted[(len(sorted)-1)/2],
		Count:  len(sorted),
	}
}

func buildRecommendation(stats *models.PriceStatistics) *models.Recommendation {
	return &models.Recommendation{
		SuggestedPrice: stats.Median,
		PriceRange:     fmt.Sprintf("$%.2f - $%.2f", stats.Min, stats.Max),
		MarketAverage:  stats.Avg,
		Confidence:     confidenceFor(stats.Count),
	}
}

// confidenceFor grades a recommendation purely by sample size. A single
// observation still yields a recommendation, just a low-trust one.
func confidenceFor(count int) models.Confidence {
	switch {
	case count > 3:
		return models.ConfidenceHigh
	case count > 1:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}
