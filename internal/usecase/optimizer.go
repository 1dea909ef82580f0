package usecase

import (
	"math"

	"github.com/dashlens/backend/internal/domain"
)

// ProfitOptimizer computes net profit per order under a cost model and picks
// the best one
type ProfitOptimizer struct{}

// NewProfitOptimizer creates a new profit optimizer
func NewProfitOptimizer() *ProfitOptimizer {
	return &ProfitOptimizer{}
}

// Optimize enriches each candidate with its fuel cost and net profit, then
// returns the candidate with the strictly greatest net profit. Ties keep the
// first-encountered candidate. Returns nil for empty input.
func (o *ProfitOptimizer) Optimize(orders []*domain.OrderCandidate, cost domain.CostModel) *domain.OrderCandidate {
	var best *domain.OrderCandidate

	for _, order := range orders {
		fuelCost := 0.0
		if cost.MPG > 0 {
			fuelCost = (order.Miles / cost.MPG) * cost.GasPrice
		}
		vehicleCost := order.Miles * cost.PerMileCost
		netProfit := order.Payout - (fuelCost + vehicleCost)

		fuelCost = round2(fuelCost)
		netProfit = round2(netProfit)
		order.FuelCost = &fuelCost
		order.NetProfit = &netProfit

		if best == nil || netProfit > *best.NetProfit {
			best = order
		}
	}

	return best
}

// round2 rounds to 2 decimal places (cents)
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
