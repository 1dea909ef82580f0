package domain

// OrderCandidate represents one delivery order parsed from free text
type OrderCandidate struct {
	ID        string   `json:"id"`     // sequential label: "Order 1", "Order 2", ...
	Miles     float64  `json:"miles"`  // trip distance
	Payout    float64  `json:"payout"` // offered pay in dollars
	NetProfit *float64 `json:"netProfit,omitempty"` // set by the optimizer
	FuelCost  *float64 `json:"fuelCost,omitempty"`  // set by the optimizer
}

// ExtractionResult is the outcome of parsing a message for order candidates.
// Orders keeps insertion order: the order labels depend on it.
type ExtractionResult struct {
	Orders     []*OrderCandidate `json:"orders"`
	Confidence float64           `json:"confidence"` // 0.0 - 1.0
}

// CostModel holds the per-request cost assumptions for profit calculation
type CostModel struct {
	MPG         float64 `json:"mpg"`
	PerMileCost float64 `json:"perMileCost"`
	GasPrice    float64 `json:"gasPrice"` // dollars per gallon
}

// Default cost model assumptions for a typical delivery vehicle
const (
	DefaultMPG         = 25.0
	DefaultPerMileCost = 0.08
)
