// Package rate computes shipment cost. It is pure and side-effect free.
package rate

import "courierPortal/models"

const (
	// BaseStandard and BaseExpress are the per-tier base rates.
	BaseStandard = 50.0
	BaseExpress  = 100.0
	// PerKg is the weight charge per kilogram.
	PerKg = 50.0
	// SameDayPremium is the flat surcharge on top of the Express total.
	SameDayPremium = 500.0
	// CashFee is the flat handling fee for cash payment.
	CashFee = 50.0
)

// Calculate returns the cost of a shipment from weight, service tier and
// payment mode. Non-positive weight is billed as 1 kg; that is the
// documented minimum, not a silent drop. Money stays in plain float64
// arithmetic; cent-level rounding is out of scope.
func Calculate(weightKg float64, tier models.ServiceTier, mode models.PaymentMode) float64 {
	if weightKg <= 0 {
		weightKg = 1
	}

	var cost float64
	switch tier {
	case models.TierExpress:
		cost = BaseExpress + weightKg*PerKg
	case models.TierSameDay:
		cost = BaseExpress + weightKg*PerKg + SameDayPremium
	default:
		cost = BaseStandard + weightKg*PerKg
	}

	if mode == models.PayCash {
		cost += CashFee
	}
	return cost
}
