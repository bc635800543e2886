package rate

import (
	"testing"

	"courierPortal/models"
)

func TestCalculate_TierFormulas(t *testing.T) {
	weights := []float64{0.5, 1, 2, 7.25, 30}
	for _, w := range weights {
		if got, want := Calculate(w, models.TierStandard, models.PayUPI), 50+50*w; got != want {
			t.Errorf("standard w=%v: got %v, want %v", w, got, want)
		}
		if got, want := Calculate(w, models.TierExpress, models.PayUPI), 100+50*w; got != want {
			t.Errorf("express w=%v: got %v, want %v", w, got, want)
		}
		if got, want := Calculate(w, models.TierSameDay, models.PayUPI), 600+50*w; got != want {
			t.Errorf("same day w=%v: got %v, want %v", w, got, want)
		}
	}
}

func TestCalculate_CashAddsFlatFee(t *testing.T) {
	for _, tier := range []models.ServiceTier{models.TierStandard, models.TierExpress, models.TierSameDay} {
		base := Calculate(3, tier, models.PayCard)
		cash := Calculate(3, tier, models.PayCash)
		if cash-base != CashFee {
			t.Errorf("tier %s: cash should add exactly %v, got %v", tier, CashFee, cash-base)
		}
	}
}

func TestCalculate_NonPositiveWeightBilledAsOneKg(t *testing.T) {
	want := Calculate(1, models.TierStandard, models.PayUPI)
	if got := Calculate(0, models.TierStandard, models.PayUPI); got != want {
		t.Errorf("zero weight: got %v, want %v", got, want)
	}
	if got := Calculate(-4, models.TierStandard, models.PayUPI); got != want {
		t.Errorf("negative weight: got %v, want %v", got, want)
	}
}

func TestCalculate_BookingScenario(t *testing.T) {
	// 2 kg Express paid by UPI costs 100 + 100 = 200.
	if got := Calculate(2, models.TierExpress, models.PayUPI); got != 200 {
		t.Fatalf("got %v, want 200", got)
	}
}
