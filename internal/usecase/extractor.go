package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dashlens/backend/internal/domain"
)

// orderPattern pairs a compiled pattern with the semantic role of its two
// capture groups. New phrasings get added to the table, not as branches.
type orderPattern struct {
	re         *regexp.Regexp
	milesFirst bool
}

// orderPatterns are applied against lower-cased text in priority order.
// Each captures exactly two numeric groups (digits, optional decimal point).
var orderPatterns = []orderPattern{
	// "$20 for 10 miles" - payout first
	{regexp.MustCompile(`\$(\d+(?:\.\d+)?)\s*for\s*(\d+(?:\.\d+)?)\s*miles?`), false},
	// "10 miles for $20" - miles first
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*miles?\s*for\s*\$(\d+(?:\.\d+)?)`), true},
	// "10 miles, $20" - miles first
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*miles?\s*,\s*\$(\d+(?:\.\d+)?)`), true},
}

// Confidence scoring constants. Hand-tuned; treated as fixed configuration.
const (
	confidenceNone   = 0.0
	confidenceSingle = 0.3
	confidenceBase   = 0.6

	bonusReasonableRanges = 0.2 // every candidate within plausible miles/payout bounds
	bonusNoDuplicates     = 0.1 // no match was discarded as a duplicate
	bonusContextKeyword   = 0.1 // "order" or "spark" appears in the text
)

// Plausibility bounds for a real delivery order
const (
	minReasonableMiles  = 0.5
	maxReasonableMiles  = 100.0
	minReasonablePayout = 1.0
	maxReasonablePayout = 200.0
)

// OrderExtractor parses unstructured message text into order candidates
type OrderExtractor struct{}

// NewOrderExtractor creates a new order extractor
func NewOrderExtractor() *OrderExtractor {
	return &OrderExtractor{}
}

// Extract parses text into order candidates plus a confidence score.
// Pure and deterministic: the same text always yields the same result.
func (e *OrderExtractor) Extract(text string) domain.ExtractionResult {
	lowered := strings.ToLower(text)

	seen := make(map[string]bool)
	var orders []*domain.OrderCandidate
	totalMatches := 0

	for _, pattern := range orderPatterns {
		for _, match := range pattern.re.FindAllStringSubmatch(lowered, -1) {
			totalMatches++

			milesText, payoutText := match[1], match[2]
			if !pattern.milesFirst {
				milesText, payoutText = match[2], match[1]
			}

			// Dedup on the captured text, not the parsed values, so "10" and
			// "10.0" remain distinct pairs.
			key := milesText + "|" + payoutText
			if seen[key] {
				continue
			}
			seen[key] = true

			// The patterns only capture digits with an optional decimal
			// point, so ParseFloat cannot fail here.
			miles, _ := strconv.ParseFloat(milesText, 64)
			payout, _ := strconv.ParseFloat(payoutText, 64)

			orders = append(orders, &domain.OrderCandidate{
				ID:     fmt.Sprintf("Order %d", len(orders)+1),
				Miles:  miles,
				Payout: payout,
			})
		}
	}

	return domain.ExtractionResult{
		Orders:     orders,
		Confidence: scoreConfidence(orders, totalMatches, lowered),
	}
}

// scoreConfidence estimates how trustworthy the extraction is
func scoreConfidence(orders []*domain.OrderCandidate, totalMatches int, lowered string) float64 {
	switch len(orders) {
	case 0:
		return confidenceNone
	case 1:
		return confidenceSingle
	}

	confidence := confidenceBase

	if allWithinReasonableRanges(orders) {
		confidence += bonusReasonableRanges
	}
	if len(orders) == totalMatches {
		confidence += bonusNoDuplicates
	}
	if strings.Contains(lowered, "order") || strings.Contains(lowered, "spark") {
		confidence += bonusContextKeyword
	}

	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

// allWithinReasonableRanges reports whether every candidate looks like a real
// delivery order rather than a stray number match
func allWithinReasonableRanges(orders []*domain.OrderCandidate) bool {
	for _, order := range orders {
		if order.Miles < minReasonableMiles || order.Miles > maxReasonableMiles {
			return false
		}
		if order.Payout < minReasonablePayout || order.Payout > maxReasonablePayout {
			return false
		}
	}
	return true
}
