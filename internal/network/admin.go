// Package network holds the administrative operations over branches,
// fleet and staff.
package network

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"courierPortal/internal/cache"
	"courierPortal/internal/errs"
	"courierPortal/internal/store"
	"courierPortal/models"
)

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, errs.ErrNotFound)
}

// Admin runs branch, fleet and staff administration. Like the lifecycle
// manager, it applies cache updates only after the store confirms.
type Admin struct {
	store store.RecordStore
	state *cache.State
	log   *zap.Logger
}

// NewAdmin creates a network administration service.
func NewAdmin(st store.RecordStore, state *cache.State, log *zap.Logger) *Admin {
	return &Admin{store: st, state: state, log: log}
}

// SaveBranch creates or updates a branch. A missing id gets a fresh one.
func (a *Admin) SaveBranch(ctx context.Context, b models.Branch) (*models.Branch, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Type == "" {
		b.Type = models.BranchTypeBranch
	}
	if b.Status == "" {
		b.Status = models.BranchActive
	}
	if err := a.store.SaveBranch(ctx, &b); err != nil {
		return nil, err
	}
	if err := a.refreshBranches(ctx); err != nil {
		return nil, err
	}
	return &b, nil
}

// SetBranchStatus toggles a branch between Active and Inactive.
func (a *Admin) SetBranchStatus(ctx context.Context, id string, status models.BranchStatus) error {
	branches, err := a.store.ListBranches(ctx)
	if err != nil {
		return err
	}
	for i := range branches {
		if branches[i].ID == id {
			branches[i].Status = status
			if err := a.store.SaveBranch(ctx, &branches[i]); err != nil {
				return err
			}
			return a.refreshBranches(ctx)
		}
	}
	return notFound("branch", id)
}

// DeleteBranch removes a branch from the store and the cache.
func (a *Admin) DeleteBranch(ctx context.Context, id string) error {
	if err := a.store.DeleteBranch(ctx, id); err != nil {
		return err
	}
	return a.refreshBranches(ctx)
}

// Branches lists all branches, refreshing the cached projection.
func (a *Admin) Branches(ctx context.Context) ([]models.Branch, error) {
	if err := a.refreshBranches(ctx); err != nil {
		return nil, err
	}
	return a.state.Branches(), nil
}

func (a *Admin) refreshBranches(ctx context.Context) error {
	list, err := a.store.ListBranches(ctx)
	if err != nil {
		return err
	}
	a.state.ReplaceBranches(list)
	return nil
}

// SaveVehicle creates or updates a fleet vehicle.
func (a *Admin) SaveVehicle(ctx context.Context, v models.Vehicle) (*models.Vehicle, error) {
	if v.Status == "" {
		v.Status = models.VehicleAvailable
	}
	if err := a.store.SaveVehicle(ctx, &v); err != nil {
		return nil, err
	}
	if err := a.refreshVehicles(ctx); err != nil {
		return nil, err
	}
	return &v, nil
}

// AssignDriver attaches a staff member to a vehicle. An empty staffID
// clears the assignment.
func (a *Admin) AssignDriver(ctx context.Context, vehicleNumber, staffID string) error {
	vehicles, err := a.store.ListVehicles(ctx)
	if err != nil {
		return err
	}
	for i := range vehicles {
		if vehicles[i].Number == vehicleNumber {
			if staffID == "" {
				vehicles[i].Driver = nil
			} else {
				vehicles[i].Driver = &staffID
			}
			if err := a.store.SaveVehicle(ctx, &vehicles[i]); err != nil {
				return err
			}
			a.log.Info("assigned driver", zap.String("vehicle", vehicleNumber), zap.String("staff", staffID))
			return a.refreshVehicles(ctx)
		}
	}
	return notFound("vehicle", vehicleNumber)
}

// DeleteVehicle removes a vehicle from the store and the cache.
func (a *Admin) DeleteVehicle(ctx context.Context, number string) error {
	if err := a.store.DeleteVehicle(ctx, number); err != nil {
		return err
	}
	return a.refreshVehicles(ctx)
}

// Vehicles lists the fleet, refreshing the cached projection.
func (a *Admin) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	if err := a.refreshVehicles(ctx); err != nil {
		return nil, err
	}
	return a.state.Vehicles(), nil
}

func (a *Admin) refreshVehicles(ctx context.Context) error {
	list, err := a.store.ListVehicles(ctx)
	if err != nil {
		return err
	}
	a.state.ReplaceVehicles(list)
	return nil
}

// SaveStaff creates or updates a staff member.
func (a *Admin) SaveStaff(ctx context.Context, m models.StaffMember) (*models.StaffMember, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Status == "" {
		m.Status = "Active"
	}
	if err := a.store.SaveStaff(ctx, &m); err != nil {
		return nil, err
	}
	if err := a.refreshStaff(ctx); err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteStaff removes a staff member from the store and the cache.
func (a *Admin) DeleteStaff(ctx context.Context, id string) error {
	if err := a.store.DeleteStaff(ctx, id); err != nil {
		return err
	}
	return a.refreshStaff(ctx)
}

// Staff lists all staff, refreshing the cached projection.
func (a *Admin) Staff(ctx context.Context) ([]models.StaffMember, error) {
	if err := a.refreshStaff(ctx); err != nil {
		return nil, err
	}
	return a.state.Staff(), nil
}

func (a *Admin) refreshStaff(ctx context.Context) error {
	list, err := a.store.ListStaff(ctx)
	if err != nil {
		return err
	}
	a.state.ReplaceStaff(list)
	return nil
}
