// Package lifecycle orchestrates shipment creation, status transitions,
// cancellation and lookup against the record store.
package lifecycle

import (
	"courierPortal/internal/errs"
	"courierPortal/models"
)

// legalTransitions is the complete transition graph. Booked is entered
// only through CreateShipment; Delivered and Cancelled are terminal.
var legalTransitions = map[models.ShipmentStatus][]models.ShipmentStatus{
	models.StatusBooked:         {models.StatusInTransit, models.StatusCancelled},
	models.StatusInTransit:      {models.StatusOutForDelivery},
	models.StatusOutForDelivery: {models.StatusDelivered, models.StatusFailedAttempt},
	models.StatusFailedAttempt:  {models.StatusOutForDelivery},
	models.StatusDelivered:      {},
	models.StatusCancelled:      {},
}

// CanTransition reports whether moving from one status to another is
// legal. Any pair not in the table is illegal.
func CanTransition(from, to models.ShipmentStatus) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// checkTransition returns the error an illegal move surfaces with.
func checkTransition(from, to models.ShipmentStatus) error {
	if !CanTransition(from, to) {
		return &errs.InvalidTransitionError{From: string(from), To: string(to)}
	}
	return nil
}
