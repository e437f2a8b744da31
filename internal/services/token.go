package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cardfolio/cardfolio/internal/metrics"
)

const (
	tokenEndpointPath = "/identity/v1/oauth2/token"
	tokenScope        = "https://api.ebay.com/oauth/api_scope"

	// Tokens are discarded this long before their reported expiry to
	// absorb clock skew and renewal races at the boundary.
	tokenSafetyMargin = 5 * time.Minute

	tokenExchangeTimeout = 15 * time.Second
)

// TokenService caches the application OAuth token for the marketplace API.
// Tokens are fetched lazily via the client-credentials grant and renewed
// once they come within the safety margin of expiry.
type TokenService struct {
	client       *http.Client
	clientID     string
	clientSecret string
	baseURL      string

	mu          sync.Mutex
	accessToken string
	expiry      time.Time
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// NewTokenService creates a token cache for the given credentials. Empty
// credentials are allowed; GetToken then always reports "no token", which
// the listing client treats as mock mode rather than an error.
func NewTokenService(clientID, clientSecret, baseURL string) *TokenService {
	return &TokenService{
		client:       &http.Client{Timeout: tokenExchangeTimeout},
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      strings.TrimSuffix(baseURL, "/"),
	}
}

// Configured reports whether marketplace credentials are present.
func (s *TokenService) Configured() bool {
	return s.clientID != "" && s.clientSecret != ""
}

// GetToken returns a valid access token, exchanging credentials with the
// marketplace if the cached one is missing or expired. An unconfigured
// service returns ("", nil): not an error, just no live access. A failed
// exchange returns an error for the caller to recover from.
func (s *TokenService) GetToken(ctx context.Context) (string, error) {
	if !s.Configured() {
		return "", nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.accessToken != "" && time.Now().Before(s.expiry) {
		return s.accessToken, nil
	}

	token, expiresIn, err := s.exchange(ctx)
	if err != nil {
		metrics.TokenRefreshFailuresTotal.Inc()
		return "", err
	}

	s.accessToken = token
	s.expiry = time.Now().Add(time.Duration(expiresIn)*time.Second - tokenSafetyMargin)
	metrics.TokenRefreshesTotal.Inc()

	return s.accessToken, nil
}

func (s *TokenService) exchange(ctx context.Context) (string, int, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("scope", tokenScope)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+tokenEndpointPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, fmt.Errorf("creating token request: %w", err)
	}
	req.SetBasicAuth(s.clientID, s.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("executing token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("token exchange failed with status %d: %s", resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", 0, fmt.Errorf("parsing token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", 0, fmt.Errorf("token response missing access_token")
	}

	return token.AccessToken, token.ExpiresIn, nil
}
