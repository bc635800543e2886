// Package store is the persistence boundary of the portal core: a generic
// record store with create/read/update/delete per collection and
// query-by-field lookups. The core does not depend on any particular
// transport behind this interface.
package store

import (
	"context"

	"courierPortal/internal/schema"
	"courierPortal/models"
)

// RecordStore is the external persistence collaborator. Implementations
// return errs.ErrNotFound for absent records and wrap unreachable-store
// failures in errs.ErrNetwork. No implementation retries on its own.
type RecordStore interface {
	// CreateShipment persists a new shipment record and issues its
	// tracking number (fixed alphabetic prefix + monotonic suffix).
	// Uniqueness of the tracking number is enforced here, not by callers.
	CreateShipment(ctx context.Context, rec *schema.ShipmentRecord) (*schema.ShipmentRecord, error)
	ShipmentByTracking(ctx context.Context, trackingNumber string) (*schema.ShipmentRecord, error)
	ShipmentsByCustomer(ctx context.Context, customerID string) ([]*schema.ShipmentRecord, error)
	UpdateShipment(ctx context.Context, rec *schema.ShipmentRecord) error
	// DeleteShipment is history cleanup, not a lifecycle transition.
	DeleteShipment(ctx context.Context, trackingNumber string) error

	CreateUser(ctx context.Context, rec *schema.UserRecord, password string) error
	UserByEmail(ctx context.Context, email string) (*schema.UserRecord, error)
	// UserByCredentials returns the first user whose stored email and
	// password both match exactly.
	UserByCredentials(ctx context.Context, email, password string) (*schema.UserRecord, error)

	CreateTransaction(ctx context.Context, t *models.Transaction) error
	TransactionsByTracking(ctx context.Context, trackingNumber string) ([]models.Transaction, error)

	SaveBranch(ctx context.Context, b *models.Branch) error
	DeleteBranch(ctx context.Context, id string) error
	ListBranches(ctx context.Context) ([]models.Branch, error)

	SaveVehicle(ctx context.Context, v *models.Vehicle) error
	DeleteVehicle(ctx context.Context, number string) error
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)

	SaveStaff(ctx context.Context, m *models.StaffMember) error
	DeleteStaff(ctx context.Context, id string) error
	ListStaff(ctx context.Context) ([]models.StaffMember, error)
}
