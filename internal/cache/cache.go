// Package cache holds the in-memory projection the UI shell reads from:
// shipments, branches, vehicles, staff and notifications. Managers apply
// mutations only after the store confirms the corresponding write
// (confirm-then-apply, never optimistic). There is no deduplication
// across in-flight operations on the same tracking number: whichever
// confirmed response lands last wins, even out of issuance order.
package cache

import (
	"sync"

	"courierPortal/models"
)

// State is the single in-memory source of truth for the UI.
type State struct {
	mu sync.Mutex

	shipments     []models.Shipment
	branches      []models.Branch
	vehicles      []models.Vehicle
	staff         []models.StaffMember
	notifications []models.Notification
}

// New returns an empty State.
func New() *State {
	return &State{}
}

// PutShipment inserts or replaces a shipment by tracking number.
func (s *State) PutShipment(sh models.Shipment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.shipments {
		if s.shipments[i].TrackingNumber == sh.TrackingNumber {
			s.shipments[i] = sh
			return
		}
	}
	s.shipments = append(s.shipments, sh)
}

// RemoveShipment drops a shipment from the projection. This is history
// cleanup, not a lifecycle transition.
func (s *State) RemoveShipment(trackingNumber string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.shipments {
		if s.shipments[i].TrackingNumber == trackingNumber {
			s.shipments = append(s.shipments[:i], s.shipments[i+1:]...)
			return
		}
	}
}

// Shipments returns a copy of the cached shipments.
func (s *State) Shipments() []models.Shipment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Shipment, len(s.shipments))
	copy(out, s.shipments)
	return out
}

// ReplaceShipments swaps the whole shipment list, e.g. after a list read.
func (s *State) ReplaceShipments(list []models.Shipment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shipments = make([]models.Shipment, len(list))
	copy(s.shipments, list)
}

// ClearShipments empties the shipment projection (logout).
func (s *State) ClearShipments() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shipments = nil
}

// ReplaceBranches swaps the branch list.
func (s *State) ReplaceBranches(list []models.Branch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.branches = make([]models.Branch, len(list))
	copy(s.branches, list)
}

// Branches returns a copy of the cached branches.
func (s *State) Branches() []models.Branch {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Branch, len(s.branches))
	copy(out, s.branches)
	return out
}

// ReplaceVehicles swaps the fleet list.
func (s *State) ReplaceVehicles(list []models.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles = make([]models.Vehicle, len(list))
	copy(s.vehicles, list)
}

// Vehicles returns a copy of the cached fleet.
func (s *State) Vehicles() []models.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out
}

// ReplaceStaff swaps the staff list.
func (s *State) ReplaceStaff(list []models.StaffMember) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staff = make([]models.StaffMember, len(list))
	copy(s.staff, list)
}

// Staff returns a copy of the cached staff.
func (s *State) Staff() []models.StaffMember {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.StaffMember, len(s.staff))
	copy(out, s.staff)
	return out
}
