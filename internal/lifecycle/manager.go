package lifecycle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"courierPortal/internal/cache"
	"courierPortal/internal/errs"
	"courierPortal/internal/rate"
	"courierPortal/internal/schema"
	"courierPortal/internal/store"
	"courierPortal/models"
)

// Delivery estimates by tier, in days from booking.
const (
	etaStandardDays = 5
	etaExpressDays  = 2
)

// BookingSpec carries the create-time input for a shipment.
type BookingSpec struct {
	OwnerID     string
	Sender      models.Contact
	Receiver    models.Contact
	WeightKg    float64
	Tier        models.ServiceTier
	PaymentMode models.PaymentMode
}

// Manager runs shipment lifecycle operations. The cache is mutated only
// after the store confirms the corresponding write.
type Manager struct {
	store store.RecordStore
	state *cache.State
	log   *zap.Logger
	now   func() time.Time
}

// NewManager creates a lifecycle manager.
func NewManager(st store.RecordStore, state *cache.State, log *zap.Logger) *Manager {
	return &Manager{store: st, state: state, log: log, now: time.Now}
}

// CreateShipment validates the booking, computes its cost, persists the
// mapped record (the store issues the tracking number) and returns the
// Booked view model. One payment transaction is recorded per booking.
func (m *Manager) CreateShipment(ctx context.Context, spec BookingSpec) (*models.Shipment, error) {
	if err := validateBooking(spec); err != nil {
		return nil, err
	}

	booked := m.now()
	sh := &models.Shipment{
		OwnerID:     spec.OwnerID,
		Sender:      spec.Sender,
		Receiver:    spec.Receiver,
		WeightKg:    spec.WeightKg,
		Tier:        spec.Tier,
		PaymentMode: spec.PaymentMode,
		Cost:        rate.Calculate(spec.WeightKg, spec.Tier, spec.PaymentMode),
		Status:      models.StatusBooked,
		BookedAt:    booked,
		EstimatedAt: estimatedDelivery(booked, spec.Tier),
	}
	if spec.PaymentMode != models.PayCash {
		sh.GatewayRef = "TXN-" + strings.ToUpper(uuid.NewString()[:8])
	}

	created, err := m.store.CreateShipment(ctx, schema.ShipmentRecordOf(sh))
	if err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}
	view, err := schema.ShipmentView(created)
	if err != nil {
		m.log.Error("created shipment failed mapping", zap.Error(err))
		return nil, err
	}

	m.state.PutShipment(*view)
	m.state.AddNotification(
		fmt.Sprintf("New shipment %s booked for %s", view.TrackingNumber, view.Receiver.City),
		models.ScopeAgent)

	m.recordPayment(ctx, view)
	return view, nil
}

// recordPayment writes the booking's transaction row. Gateway modes
// settle immediately; cash stays pending until delivery. The booking
// itself already succeeded, so a failure here is logged, not returned.
func (m *Manager) recordPayment(ctx context.Context, sh *models.Shipment) {
	status := models.TxnCompleted
	if sh.PaymentMode == models.PayCash {
		status = models.TxnPending
	}
	txn := &models.Transaction{
		ID:             uuid.NewString(),
		TrackingNumber: sh.TrackingNumber,
		Date:           m.now(),
		Amount:         sh.Cost,
		Status:         status,
		Method:         sh.PaymentMode,
	}
	if err := m.store.CreateTransaction(ctx, txn); err != nil {
		m.log.Error("record payment", zap.String("tracking", sh.TrackingNumber), zap.Error(err))
	}
}

// UpdateStatus moves a shipment to newStatus if the transition table
// allows it. On an illegal transition nothing is written and the stored
// record is untouched.
func (m *Manager) UpdateStatus(ctx context.Context, trackingNumber string, newStatus models.ShipmentStatus) (*models.Shipment, error) {
	rec, err := m.store.ShipmentByTracking(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}
	view, err := schema.ShipmentView(rec)
	if err != nil {
		m.log.Error("shipment failed mapping", zap.String("tracking", trackingNumber), zap.Error(err))
		return nil, err
	}

	if err := checkTransition(view.Status, newStatus); err != nil {
		return nil, err
	}

	view.Status = newStatus
	if newStatus == models.StatusDelivered {
		d := m.now()
		view.DeliveredAt = &d
	}
	if err := m.store.UpdateShipment(ctx, schema.ShipmentRecordOf(view)); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	m.state.PutShipment(*view)
	m.state.AddNotification(
		fmt.Sprintf("Shipment %s is now %s", view.TrackingNumber, view.Status),
		models.ScopeCustomer)
	return view, nil
}

// CancelShipment cancels a shipment, allowed only while it is still
// Booked. The reason is stored as metadata, not a state-machine input.
func (m *Manager) CancelShipment(ctx context.Context, trackingNumber, reason string) (*models.Shipment, error) {
	rec, err := m.store.ShipmentByTracking(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}
	view, err := schema.ShipmentView(rec)
	if err != nil {
		m.log.Error("shipment failed mapping", zap.String("tracking", trackingNumber), zap.Error(err))
		return nil, err
	}

	if view.Status != models.StatusBooked {
		return nil, &errs.InvalidTransitionError{From: string(view.Status), To: string(models.StatusCancelled)}
	}

	view.Status = models.StatusCancelled
	view.CancelReason = reason
	if err := m.store.UpdateShipment(ctx, schema.ShipmentRecordOf(view)); err != nil {
		return nil, fmt.Errorf("cancel shipment: %w", err)
	}

	m.state.PutShipment(*view)
	m.state.AddNotification(
		fmt.Sprintf("Shipment %s was cancelled", view.TrackingNumber),
		models.ScopeCustomer)
	return view, nil
}

// GetShipment is a pure read by tracking number. It does not touch the
// cache.
func (m *Manager) GetShipment(ctx context.Context, trackingNumber string) (*models.Shipment, error) {
	rec, err := m.store.ShipmentByTracking(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}
	view, err := schema.ShipmentView(rec)
	if err != nil {
		m.log.Error("shipment failed mapping", zap.String("tracking", trackingNumber), zap.Error(err))
		return nil, err
	}
	return view, nil
}

// ListShipments loads a customer's shipments and refreshes the cached
// projection with the confirmed result.
func (m *Manager) ListShipments(ctx context.Context, ownerID string) ([]models.Shipment, error) {
	recs, err := m.store.ShipmentsByCustomer(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]models.Shipment, 0, len(recs))
	for _, rec := range recs {
		view, err := schema.ShipmentView(rec)
		if err != nil {
			m.log.Error("shipment failed mapping", zap.Error(err))
			return nil, err
		}
		out = append(out, *view)
	}
	m.state.ReplaceShipments(out)
	return out, nil
}

// Transactions lists the payments recorded against a shipment.
func (m *Manager) Transactions(ctx context.Context, trackingNumber string) ([]models.Transaction, error) {
	return m.store.TransactionsByTracking(ctx, trackingNumber)
}

// PurgeShipment removes a shipment from the store and the cache. History
// cleanup for administrators; not a lifecycle transition.
func (m *Manager) PurgeShipment(ctx context.Context, trackingNumber string) error {
	if err := m.store.DeleteShipment(ctx, trackingNumber); err != nil {
		return err
	}
	m.state.RemoveShipment(trackingNumber)
	return nil
}

func validateBooking(spec BookingSpec) error {
	if spec.Sender.Name == "" || spec.Sender.Address == "" {
		return &errs.ValidationError{Field: "sender", Reason: "name and address are required"}
	}
	if spec.Receiver.Name == "" || spec.Receiver.Address == "" {
		return &errs.ValidationError{Field: "receiver", Reason: "name and address are required"}
	}
	if spec.WeightKg <= 0 {
		return &errs.ValidationError{Field: "weight", Reason: "must be greater than zero"}
	}
	switch spec.Tier {
	case models.TierStandard, models.TierExpress, models.TierSameDay:
	default:
		return &errs.ValidationError{Field: "service tier", Reason: fmt.Sprintf("unknown tier %q", spec.Tier)}
	}
	switch spec.PaymentMode {
	case models.PayCash, models.PayUPI, models.PayCard:
	default:
		return &errs.ValidationError{Field: "payment mode", Reason: fmt.Sprintf("unknown mode %q", spec.PaymentMode)}
	}
	return nil
}

func estimatedDelivery(booked time.Time, tier models.ServiceTier) time.Time {
	switch tier {
	case models.TierSameDay:
		return booked
	case models.TierExpress:
		return booked.AddDate(0, 0, etaExpressDays)
	default:
		return booked.AddDate(0, 0, etaStandardDays)
	}
}
