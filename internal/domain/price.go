package domain

import "time"

// PriceQuote is a cached fuel price observation
type PriceQuote struct {
	Price     float64   `json:"price"` // dollars per gallon
	FetchedAt time.Time `json:"fetchedAt"`
	Source    string    `json:"source"` // "provider" or "fallback"
}

// Price quote sources
const (
	PriceSourceProvider = "provider"
	PriceSourceFallback = "fallback"
)
