package usecase

import (
	"math"
	"testing"
)

func TestExtract_NoPatterns(t *testing.T) {
	extractor := NewOrderExtractor()

	tests := []struct {
		name string
		text string
	}{
		{"empty string", ""},
		{"plain chat", "hey, how was your day?"},
		{"numbers without units", "I made 45 today over 3 trips"},
		{"miles without payout", "the trip was 12 miles long"},
		{"dollars without miles", "they offered $18 for the job"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractor.Extract(tt.text)
			if len(result.Orders) != 0 {
				t.Errorf("Orders = %d, want 0", len(result.Orders))
			}
			if result.Confidence != 0.0 {
				t.Errorf("Confidence = %v, want 0.0", result.Confidence)
			}
		})
	}
}

func TestExtract_SingleCandidate(t *testing.T) {
	extractor := NewOrderExtractor()

	result := extractor.Extract("$20 for 10 miles")

	if len(result.Orders) != 1 {
		t.Fatalf("Orders = %d, want 1", len(result.Orders))
	}

	order := result.Orders[0]
	if order.ID != "Order 1" {
		t.Errorf("ID = %q, want \"Order 1\"", order.ID)
	}
	if order.Miles != 10.0 {
		t.Errorf("Miles = %v, want 10.0", order.Miles)
	}
	if order.Payout != 20.0 {
		t.Errorf("Payout = %v, want 20.0", order.Payout)
	}
	if result.Confidence != 0.3 {
		t.Errorf("Confidence = %v, want 0.3", result.Confidence)
	}
}

func TestExtract_TwoCandidatesFullConfidence(t *testing.T) {
	extractor := NewOrderExtractor()

	result := extractor.Extract("Order 1: 10 miles for $20, Order 2: 8 miles for $15")

	if len(result.Orders) != 2 {
		t.Fatalf("Orders = %d, want 2", len(result.Orders))
	}

	first, second := result.Orders[0], result.Orders[1]
	if first.ID != "Order 1" || first.Miles != 10.0 || first.Payout != 20.0 {
		t.Errorf("first = %+v, want Order 1 / 10.0 / 20.0", first)
	}
	if second.ID != "Order 2" || second.Miles != 8.0 || second.Payout != 15.0 {
		t.Errorf("second = %+v, want Order 2 / 8.0 / 15.0", second)
	}

	// 0.6 base + 0.2 reasonable ranges + 0.1 no dups + 0.1 keyword, clamped
	if result.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", result.Confidence)
	}
}

func TestExtract_PatternVariants(t *testing.T) {
	extractor := NewOrderExtractor()

	tests := []struct {
		name       string
		text       string
		wantMiles  float64
		wantPayout float64
	}{
		{"payout first", "$32.50 for 14 miles", 14.0, 32.5},
		{"miles first", "7.5 miles for $12", 7.5, 12.0},
		{"comma form", "9 miles, $16.25", 9.0, 16.25},
		{"singular mile", "1 mile for $6", 1.0, 6.0},
		{"mixed casing", "12 MILES FOR $25", 12.0, 25.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractor.Extract(tt.text)
			if len(result.Orders) != 1 {
				t.Fatalf("Orders = %d, want 1", len(result.Orders))
			}
			if result.Orders[0].Miles != tt.wantMiles {
				t.Errorf("Miles = %v, want %v", result.Orders[0].Miles, tt.wantMiles)
			}
			if result.Orders[0].Payout != tt.wantPayout {
				t.Errorf("Payout = %v, want %v", result.Orders[0].Payout, tt.wantPayout)
			}
		})
	}
}

func TestExtract_DeduplicatesAcrossPatterns(t *testing.T) {
	extractor := NewOrderExtractor()

	// Same pair phrased both ways: only the first acceptance survives.
	result := extractor.Extract("$20 for 10 miles, 10 miles for $20")

	if len(result.Orders) != 1 {
		t.Fatalf("Orders = %d, want 1", len(result.Orders))
	}
	if result.Orders[0].Miles != 10.0 || result.Orders[0].Payout != 20.0 {
		t.Errorf("order = %+v, want 10.0 / 20.0", result.Orders[0])
	}
	if result.Confidence != 0.3 {
		t.Errorf("Confidence = %v, want 0.3", result.Confidence)
	}
}

func TestExtract_NearDuplicatesStayDistinct(t *testing.T) {
	extractor := NewOrderExtractor()

	// "10" and "10.0" parse to the same float but the captured text differs,
	// so both candidates are kept.
	result := extractor.Extract("10 miles for $20 or 10.0 miles for $20")

	if len(result.Orders) != 2 {
		t.Fatalf("Orders = %d, want 2", len(result.Orders))
	}
	if result.Orders[0].Miles != result.Orders[1].Miles {
		t.Errorf("parsed miles differ: %v vs %v", result.Orders[0].Miles, result.Orders[1].Miles)
	}
}

func TestExtract_DuplicateDropsBonus(t *testing.T) {
	extractor := NewOrderExtractor()

	// Three matches, one discarded as a duplicate: the no-duplicates bonus
	// is withheld. No "order"/"spark" keyword either.
	result := extractor.Extract("should i take 10 miles for $20, 8 miles for $15, or 10 miles for $20 again")

	if len(result.Orders) != 2 {
		t.Fatalf("Orders = %d, want 2", len(result.Orders))
	}
	want := 0.8 // 0.6 base + 0.2 ranges
	if math.Abs(result.Confidence-want) > 1e-9 {
		t.Errorf("Confidence = %v, want %v", result.Confidence, want)
	}
}

func TestExtract_UnreasonableRangesWithholdBonus(t *testing.T) {
	extractor := NewOrderExtractor()

	// 500 miles is outside the plausible range.
	result := extractor.Extract("500 miles for $20, 8 miles for $15")

	if len(result.Orders) != 2 {
		t.Fatalf("Orders = %d, want 2", len(result.Orders))
	}
	want := 0.7 // 0.6 base + 0.1 no dups
	if math.Abs(result.Confidence-want) > 1e-9 {
		t.Errorf("Confidence = %v, want %v", result.Confidence, want)
	}
}

func TestExtract_SparkKeywordBonus(t *testing.T) {
	extractor := NewOrderExtractor()

	result := extractor.Extract("spark offers: 10 miles for $20, 8 miles for $15")

	if result.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", result.Confidence)
	}
}

func TestExtract_Idempotent(t *testing.T) {
	extractor := NewOrderExtractor()
	text := "Order 1: 10 miles for $20, Order 2: 8 miles for $15"

	first := extractor.Extract(text)
	second := extractor.Extract(text)

	if len(first.Orders) != len(second.Orders) {
		t.Fatalf("order counts differ: %d vs %d", len(first.Orders), len(second.Orders))
	}
	if first.Confidence != second.Confidence {
		t.Errorf("confidence differs: %v vs %v", first.Confidence, second.Confidence)
	}
	for i := range first.Orders {
		a, b := first.Orders[i], second.Orders[i]
		if a.ID != b.ID || a.Miles != b.Miles || a.Payout != b.Payout {
			t.Errorf("order %d differs: %+v vs %+v", i, a, b)
		}
	}
}
