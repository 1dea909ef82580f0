package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/dashlens/backend/internal/domain"
)

// Intent phrase tables. A message is an order query when it contains an
// intent phrase AND a context word; a gas query needs only one phrase.
var (
	orderIntentPhrases = []string{"which order", "best order", "should i take"}
	orderContextWords  = []string{"spark", "order", "delivery", "miles"}
	gasIntentPhrases   = []string{"gas price", "fuel price", "cost of gas"}
)

// ToolDispatcherConfig holds configuration for the tool dispatcher
type ToolDispatcherConfig struct {
	MinConfidence float64
	MPG           float64
	PerMileCost   float64
}

// ToolDispatcher inspects incoming chat messages and answers order and gas
// price queries with templated replies instead of an LLM round-trip
type ToolDispatcher struct {
	extractor     *OrderExtractor
	optimizer     *ProfitOptimizer
	oracle        *PriceOracle
	minConfidence float64
	mpg           float64
	perMileCost   float64
}

// NewToolDispatcher creates a new tool dispatcher with dependencies
func NewToolDispatcher(oracle *PriceOracle, config ToolDispatcherConfig) *ToolDispatcher {
	minConfidence := config.MinConfidence
	if minConfidence <= 0 {
		minConfidence = 0.6
	}

	mpg := config.MPG
	if mpg <= 0 {
		mpg = domain.DefaultMPG
	}

	perMileCost := config.PerMileCost
	if perMileCost <= 0 {
		perMileCost = domain.DefaultPerMileCost
	}

	return &ToolDispatcher{
		extractor:     NewOrderExtractor(),
		optimizer:     NewProfitOptimizer(),
		oracle:        oracle,
		minConfidence: minConfidence,
		mpg:           mpg,
		perMileCost:   perMileCost,
	}
}

// Dispatch decides whether a message is handled by a specialized tool. The
// order branch is evaluated first and short-circuits when it produces a
// reply; the gas branch only runs otherwise. Returns (nil, false) when the
// message should go to the generic LLM path.
func (d *ToolDispatcher) Dispatch(ctx context.Context, text string) (*domain.ToolReply, bool) {
	lowered := strings.ToLower(text)

	if isOrderQuery(lowered) {
		result := d.extractor.Extract(text)

		if len(result.Orders) >= 2 && result.Confidence >= d.minConfidence {
			price := d.oracle.GetPrice(ctx, "")
			cost := domain.CostModel{MPG: d.mpg, PerMileCost: d.perMileCost, GasPrice: price}
			best := d.optimizer.Optimize(result.Orders, cost)
			log.Printf("[DISPATCH] order query: %d candidates, confidence %.2f, best %s",
				len(result.Orders), result.Confidence, best.ID)
			return &domain.ToolReply{
				Text:   formatRecommendation(result.Orders, best, cost),
				Source: domain.SourceOrderOptimizer,
			}, true
		}

		if len(result.Orders) > 0 {
			log.Printf("[DISPATCH] order query below threshold: %d candidates, confidence %.2f",
				len(result.Orders), result.Confidence)
			return &domain.ToolReply{
				Text:   formatClarification(result.Orders),
				Source: domain.SourceOrderOptimizer,
			}, true
		}
		// Nothing parsed: not actually a tool match, fall through.
	}

	if isGasQuery(lowered) {
		quote := d.oracle.GetQuote(ctx, "")
		return &domain.ToolReply{
			Text:   formatGasPrice(quote),
			Source: domain.SourceGasPrice,
		}, true
	}

	return nil, false
}

// isOrderQuery checks whether lowered text asks for an order recommendation
func isOrderQuery(lowered string) bool {
	return containsAny(lowered, orderIntentPhrases) && containsAny(lowered, orderContextWords)
}

// isGasQuery checks whether lowered text asks for the current gas price
func isGasQuery(lowered string) bool {
	return containsAny(lowered, gasIntentPhrases)
}

func containsAny(s string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(s, phrase) {
			return true
		}
	}
	return false
}

// formatRecommendation renders the full breakdown plus the best pick
func formatRecommendation(orders []*domain.OrderCandidate, best *domain.OrderCandidate, cost domain.CostModel) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Here's the math on your %d orders (gas at $%.2f/gal):\n\n", len(orders), cost.GasPrice)
	for _, order := range orders {
		fmt.Fprintf(&b, "%s: %.1f miles for $%.2f -> net $%.2f (fuel $%.2f)\n",
			order.ID, order.Miles, order.Payout, *order.NetProfit, *order.FuelCost)
	}
	fmt.Fprintf(&b, "\nBest pick: %s - $%.2f for %.1f miles nets you $%.2f after fuel and vehicle costs.",
		best.ID, best.Payout, best.Miles, *best.NetProfit)

	return b.String()
}

// formatClarification asks the user to confirm or restate what was parsed.
// The zero-candidate template is kept even though Dispatch currently falls
// through to the LLM before reaching it with no candidates.
func formatClarification(orders []*domain.OrderCandidate) string {
	if len(orders) == 0 {
		return "I couldn't pick out any orders from that. Try listing each one like: \"Order 1: $20 for 10 miles\"."
	}

	var b strings.Builder
	b.WriteString("Here's what I think I saw, but I'm not fully sure:\n\n")
	for _, order := range orders {
		fmt.Fprintf(&b, "%s: %.1f miles for $%.2f\n", order.ID, order.Miles, order.Payout)
	}
	b.WriteString("\nIs that right? Restate the orders like \"$20 for 10 miles\" if I misread them.")

	return b.String()
}

// formatGasPrice renders the current price quote
func formatGasPrice(quote domain.PriceQuote) string {
	return fmt.Sprintf("Gas is running about $%.2f/gal right now. I use that number when I work out fuel costs on your orders.", quote.Price)
}
