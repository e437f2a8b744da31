package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/cardfolio/cardfolio/internal/metrics"
	"github.com/cardfolio/cardfolio/internal/models"
)

const (
	browseSearchPath = "/buy/browse/v1/item_summary/search"
	browseItemPath   = "/buy/browse/v1/item/"

	// Trading Card Games category
	defaultCategoryID  = "183454"
	defaultSearchLimit = 200
	defaultSortOrder   = "price"
	fixedPriceFilter   = "buyingOptions:{FIXED_PRICE}"
	marketplaceID      = "EBAY_US"

	ebayRequestTimeout = 15 * time.Second

	detailCacheSize = 256
	detailCacheTTL  = 5 * time.Minute
)

// EbayService wraps the marketplace Browse API behind two operations:
// search and listing detail. Both degrade to the synthetic catalog instead
// of failing: missing credentials select mock mode outright, and any live
// request failure is logged and substituted. Callers never see an error
// from this component; the result's Source/MockData say what they got.
type EbayService struct {
	client      *http.Client
	tokens      *TokenService
	baseURL     string
	limiter     *rate.Limiter
	detailCache *expirable.LRU[string, *models.Listing]
}

type browseSearchResponse struct {
	Total         int                     `json:"total"`
	Href          string                  `json:"href"`
	ItemSummaries []models.ListingSummary `json:"itemSummaries"`
}

// NewEbayService creates a listing client against the given API host.
func NewEbayService(tokens *TokenService, baseURL string) *EbayService {
	return &EbayService{
		client:  &http.Client{Timeout: ebayRequestTimeout},
		tokens:  tokens,
		baseURL: baseURL,
		// Browse API default quota is generous; 5 rps keeps bursts polite.
		limiter:     rate.NewLimiter(rate.Limit(5), 5),
		detailCache: expirable.NewLRU[string, *models.Listing](detailCacheSize, nil, detailCacheTTL),
	}
}

// Search queries the marketplace for listings. Zero values select the
// defaults: trading-card category, 200 results, ascending price, fixed
// price listings only.
func (s *EbayService) Search(ctx context.Context, query, categoryID string, limit int, sort string) *models.SearchResult {
	if categoryID == "" {
		categoryID = defaultCategoryID
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if sort == "" {
		sort = defaultSortOrder
	}

	token, err := s.tokens.GetToken(ctx)
	if err != nil {
		log.Printf("eBay token exchange failed, using mock search results: %v", err)
		metrics.EbayFallbacksTotal.WithLabelValues("search", "auth").Inc()
		return s.mockSearch(limit)
	}
	if token == "" {
		// Unconfigured: supported offline mode, not an error.
		return s.mockSearch(limit)
	}

	result, err := s.liveSearch(ctx, token, query, categoryID, limit, sort)
	if err != nil {
		log.Printf("eBay search failed, using mock search results: %v", err)
		metrics.EbayFallbacksTotal.WithLabelValues("search", "request").Inc()
		return s.mockSearch(limit)
	}

	metrics.EbayRequestsTotal.WithLabelValues("search", "live").Inc()
	return result
}

// GetListingDetails fetches one listing with its variations. Live results
// are cached briefly; synthetic results are cheap enough to rebuild.
func (s *EbayService) GetListingDetails(ctx context.Context, itemID string) *models.Listing {
	if listing, ok := s.detailCache.Get(itemID); ok {
		metrics.EbayDetailCacheHits.Inc()
		return listing
	}

	token, err := s.tokens.GetToken(ctx)
	if err != nil {
		log.Printf("eBay token exchange failed, using mock listing %s: %v", itemID, err)
		metrics.EbayFallbacksTotal.WithLabelValues("detail", "auth").Inc()
		return s.mockDetails(itemID)
	}
	if token == "" {
		return s.mockDetails(itemID)
	}

	listing, err := s.liveDetails(ctx, token, itemID)
	if err != nil {
		log.Printf("eBay detail fetch failed for %s, using mock listing: %v", itemID, err)
		metrics.EbayFallbacksTotal.WithLabelValues("detail", "request").Inc()
		return s.mockDetails(itemID)
	}

	metrics.EbayRequestsTotal.WithLabelValues("detail", "live").Inc()
	s.detailCache.Add(itemID, listing)
	return listing
}

// GetListingPrices fetches listing details for each id and flattens them
// into per-listing observation sets. Fetches run concurrently; results
// keep the input id order so downstream aggregation is deterministic.
func (s *EbayService) GetListingPrices(ctx context.Context, itemIDs []string) []models.ListingPrices {
	fetched := make([]*models.Listing, len(itemIDs))

	var wg sync.WaitGroup
	for i, itemID := range itemIDs {
		wg.Add(1)
		go func(i int, itemID string) {
			defer wg.Done()
			fetched[i] = s.GetListingDetails(ctx, itemID)
		}(i, itemID)
	}
	wg.Wait()

	results := make([]models.ListingPrices, 0, len(itemIDs))
	for i, listing := range fetched {
		if listing == nil {
			log.Printf("Skipping listing %s: no details available", itemIDs[i])
			continue
		}
		results = append(results, models.ListingPrices{
			ItemID:     listing.ItemID,
			Title:      listing.Title,
			CardPrices: ExtractCardPrices(listing),
			MockData:   listing.MockData,
		})
	}
	return results
}

func (s *EbayService) liveSearch(ctx context.Context, token, query, categoryID string, limit int, sort string) (*models.SearchResult, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("category_ids", categoryID)
	params.Set("filter", fixedPriceFilter)
	params.Set("sort", sort)
	params.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+browseSearchPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating search request: %w", err)
	}
	s.setAuthHeaders(req, token)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var body browseSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	items := body.ItemSummaries
	if items == nil {
		items = []models.ListingSummary{}
	}

	return &models.SearchResult{
		Total:  body.Total,
		Items:  items,
		Href:   body.Href,
		Source: models.DataSourceLive,
	}, nil
}

func (s *EbayService) liveDetails(ctx context.Context, token, itemID string) (*models.Listing, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+browseItemPath+url.PathEscape(itemID), nil)
	if err != nil {
		return nil, fmt.Errorf("creating detail request: %w", err)
	}
	s.setAuthHeaders(req, token)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing detail request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("detail fetch returned status %d", resp.StatusCode)
	}

	var listing models.Listing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("parsing detail response: %w", err)
	}

	listing.Source = models.DataSourceLive
	return &listing, nil
}

func (s *EbayService) setAuthHeaders(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-EBAY-C-MARKETPLACE-ID", marketplaceID)
	req.Header.Set("Accept", "application/json")
}

func (s *EbayService) mockSearch(limit int) *models.SearchResult {
	metrics.EbayRequestsTotal.WithLabelValues("search", "mock").Inc()
	return mockSearchResults(limit)
}

func (s *EbayService) mockDetails(itemID string) *models.Listing {
	metrics.EbayRequestsTotal.WithLabelValues("detail", "mock").Inc()
	return mockListingDetails(itemID)
}
