package usecase

import (
	"context"
	"log"
	"time"

	"github.com/dashlens/backend/internal/domain"
)

// priceCacheKey holds the single process-wide fuel price quote. The quote is
// shared across locations; location only steers the upstream fetch.
const priceCacheKey = "fuel:price"

// fetchTimeout bounds the one blocking network call per cache miss
const fetchTimeout = 10 * time.Second

// PriceOracleConfig holds configuration for the price oracle
type PriceOracleConfig struct {
	FallbackPrice float64
	TTL           time.Duration
}

// PriceOracle serves the current fuel price from a TTL cache, fetching from
// the provider on a miss. It never fails: every failure mode degrades to the
// fallback price, which is cached for a full TTL window so repeated failures
// do not hammer the provider.
type PriceOracle struct {
	cache         domain.CacheRepository
	client        domain.FuelPriceClient
	fallbackPrice float64
	ttl           time.Duration
}

// NewPriceOracle creates a new price oracle with dependencies
func NewPriceOracle(cache domain.CacheRepository, client domain.FuelPriceClient, config PriceOracleConfig) *PriceOracle {
	fallback := config.FallbackPrice
	if fallback <= 0 {
		fallback = 3.25
	}

	ttl := config.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &PriceOracle{
		cache:         cache,
		client:        client,
		fallbackPrice: fallback,
		ttl:           ttl,
	}
}

// GetQuote returns the current fuel price quote, cached or freshly fetched
func (o *PriceOracle) GetQuote(ctx context.Context, location string) domain.PriceQuote {
	if cached, err := o.cache.Get(ctx, priceCacheKey); err == nil {
		if quote, ok := cached.(domain.PriceQuote); ok && quote.Price > 0 {
			return quote
		}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	quote := domain.PriceQuote{FetchedAt: time.Now(), Source: domain.PriceSourceProvider}

	price, err := o.client.FetchPrice(fetchCtx, location)
	if err != nil || price <= 0 {
		log.Printf("[FUEL] using fallback price $%.2f: %v", o.fallbackPrice, err)
		quote.Price = o.fallbackPrice
		quote.Source = domain.PriceSourceFallback
	} else {
		quote.Price = price
	}

	if err := o.cache.Set(ctx, priceCacheKey, quote, o.ttl); err != nil {
		log.Printf("[FUEL] failed to cache price quote: %v", err)
	}

	return quote
}

// GetPrice returns the current fuel price in dollars per gallon. It always
// returns a usable value.
func (o *PriceOracle) GetPrice(ctx context.Context, location string) float64 {
	return o.GetQuote(ctx, location).Price
}
