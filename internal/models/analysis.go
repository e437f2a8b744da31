package models

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// PriceStatistics summarizes every observation seen for one normalized
// card name across the listings supplied in a single run.
type PriceStatistics struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Avg    float64 `json:"avg"`
	Median float64 `json:"median"`
	Count  int     `json:"count"`
}

type Recommendation struct {
	SuggestedPrice float64    `json:"suggestedPrice"`
	PriceRange     string     `json:"priceRange"`
	MarketAverage  float64    `json:"marketAverage"`
	Confidence     Confidence `json:"confidence"`
}

// MatchResult pairs one inventory card with its market statistics.
// Pricing and Recommendation are nil together or present together.
type MatchResult struct {
	Card           InventoryCard    `json:"card"`
	Pricing        *PriceStatistics `json:"pricing"`
	Recommendation *Recommendation  `json:"recommendation"`
}

type AnalysisSummary struct {
	TotalListingsAnalyzed int `json:"totalListingsAnalyzed"`
	UniqueCardsFound      int `json:"uniqueCardsFound"`
}

type AnalysisResult struct {
	TotalCardsAnalyzed int             `json:"totalCardsAnalyzed"`
	CardsWithPricing   int             `json:"cardsWithPricing"`
	Matches            []MatchResult   `json:"matches"`
	Summary            AnalysisSummary `json:"summary"`
}

type CompareRequest struct {
	Set     string   `json:"set"`
	ItemIDs []string `json:"itemIds"`
}

type BatchPricesRequest struct {
	ItemIDs []string `json:"itemIds"`
}

// RecommendationItem is the scaffold returned by the recommendations
// endpoint before any listings have been analyzed.
type RecommendationItem struct {
	CardName         string    `json:"cardName"`
	Set              string    `json:"set"`
	Quantity         int       `json:"quantity"`
	Condition        Condition `json:"condition"`
	RecommendedPrice *float64  `json:"recommendedPrice"`
	MarketAverage    *float64  `json:"marketAverage"`
	PriceRange       *string   `json:"priceRange"`
	Note             string    `json:"note"`
}
