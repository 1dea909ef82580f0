package fuelapi

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/dashlens/backend/internal/domain"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

// priceFields are the candidate JSON keys probed for the price value, in
// priority order. Providers have shipped both spellings.
var priceFields = []string{"gasoline", "price"}

// Client handles communication with the fuel price data provider
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new fuel price API client.
// requestsPerHour bounds outbound calls to the provider's quota.
func NewClient(apiKey, baseURL string, requestsPerHour int) *Client {
	if requestsPerHour <= 0 {
		requestsPerHour = 100
	}
	limiter := rate.NewLimiter(rate.Limit(float64(requestsPerHour)/3600.0), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug enables request/response logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// FetchPrice fetches the current gas price for a location from the provider.
// Any failure mode (missing key, transport error, non-2xx, unusable payload)
// returns ErrPriceUnavailable; the caller decides on a fallback.
func (c *Client) FetchPrice(ctx context.Context, location string) (float64, error) {
	if c.apiKey == "" {
		return 0, fmt.Errorf("%w: no API key configured", domain.ErrPriceUnavailable)
	}

	endpoint := fmt.Sprintf("%s/price", c.baseURL)
	params := url.Values{}
	if location != "" {
		params.Add("location", location)
	}

	reqURL := endpoint
	if len(params) > 0 {
		reqURL = fmt.Sprintf("%s?%s", endpoint, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrPriceUnavailable, err)
	}
	req.Header.Set("Authorization", "apikey "+c.apiKey)
	req.Header.Set("User-Agent", "DashLens/1.0")

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("%w: rate limiter: %v", domain.ErrPriceUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrPriceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		if c.debug {
			log.Printf("[FUEL] provider error - status: %d, body: %s", resp.StatusCode, string(body))
		}
		return 0, fmt.Errorf("%w: status %d", domain.ErrPriceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrPriceUnavailable, err)
	}

	price, ok := extractPrice(body)
	if !ok {
		if c.debug {
			log.Printf("[FUEL] no usable price field in response: %s", string(body))
		}
		return 0, fmt.Errorf("%w: no usable price field", domain.ErrPriceUnavailable)
	}

	if c.debug {
		log.Printf("[FUEL] fetched price %.3f for location %q", price, location)
	}

	return price, nil
}

// extractPrice probes the response body for the first candidate field holding
// a positive number. gjson tolerates both numeric and quoted-numeric values.
func extractPrice(body []byte) (float64, bool) {
	for _, field := range priceFields {
		result := gjson.GetBytes(body, field)
		if !result.Exists() {
			continue
		}
		price := result.Float()
		if price > 0 {
			return price, true
		}
	}
	return 0, false
}
