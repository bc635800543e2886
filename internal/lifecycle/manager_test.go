package lifecycle

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"courierPortal/internal/cache"
	"courierPortal/internal/errs"
	"courierPortal/internal/testutil"
	"courierPortal/models"
)

func newManager(t *testing.T, name string) (*Manager, *cache.State) {
	t.Helper()
	state := cache.New()
	m := NewManager(testutil.NewStore(t, name), state, zap.NewNop())
	return m, state
}

func validBooking() BookingSpec {
	return BookingSpec{
		OwnerID: "cust-1",
		Sender: models.Contact{
			Name: "Asha Rao", Phone: "9000000001",
			Address: "12 MG Road", City: "Bengaluru", Pincode: "560001",
		},
		Receiver: models.Contact{
			Name: "Vikram Shah", Phone: "9000000002",
			Address: "4 Marine Drive", City: "Mumbai", Pincode: "400001",
		},
		WeightKg:    2,
		Tier:        models.TierExpress,
		PaymentMode: models.PayUPI,
	}
}

func TestCreateShipment(t *testing.T) {
	m, state := newManager(t, "lc_create")
	ctx := context.Background()

	sh, err := m.CreateShipment(ctx, validBooking())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	// 2 kg Express via UPI: 100 + 100 = 200.
	if sh.Cost != 200 {
		t.Errorf("cost: got %v, want 200", sh.Cost)
	}
	if sh.Status != models.StatusBooked {
		t.Errorf("status: got %s, want Booked", sh.Status)
	}
	if !strings.HasPrefix(sh.TrackingNumber, "CP") {
		t.Errorf("tracking number %q missing prefix", sh.TrackingNumber)
	}
	if sh.GatewayRef == "" {
		t.Errorf("UPI booking should carry a gateway reference")
	}

	// Confirmed write lands in the cache.
	cached := state.Shipments()
	if len(cached) != 1 || cached[0].TrackingNumber != sh.TrackingNumber {
		t.Errorf("cache not updated: %+v", cached)
	}

	// One payment transaction recorded, settled for gateway modes.
	txns, err := m.Transactions(ctx, sh.TrackingNumber)
	if err != nil {
		t.Fatalf("transactions: %v", err)
	}
	if len(txns) != 1 || txns[0].Status != models.TxnCompleted || txns[0].Amount != 200 {
		t.Errorf("unexpected transactions: %+v", txns)
	}
}

func TestCreateShipment_CashPaymentStaysPending(t *testing.T) {
	m, _ := newManager(t, "lc_cash")
	spec := validBooking()
	spec.PaymentMode = models.PayCash

	sh, err := m.CreateShipment(context.Background(), spec)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sh.GatewayRef != "" {
		t.Errorf("cash booking must not have a gateway reference")
	}
	txns, err := m.Transactions(context.Background(), sh.TrackingNumber)
	if err != nil {
		t.Fatal(err)
	}
	if len(txns) != 1 || txns[0].Status != models.TxnPending {
		t.Errorf("cash payment should be pending: %+v", txns)
	}
}

func TestCreateShipment_Validation(t *testing.T) {
	m, state := newManager(t, "lc_validate")
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*BookingSpec)
	}{
		{"missing sender", func(s *BookingSpec) { s.Sender = models.Contact{} }},
		{"missing receiver", func(s *BookingSpec) { s.Receiver = models.Contact{} }},
		{"zero weight", func(s *BookingSpec) { s.WeightKg = 0 }},
		{"negative weight", func(s *BookingSpec) { s.WeightKg = -1 }},
		{"unknown tier", func(s *BookingSpec) { s.Tier = "OVERNIGHT" }},
		{"unknown payment mode", func(s *BookingSpec) { s.PaymentMode = "cheque" }},
	}
	for _, tc := range cases {
		spec := validBooking()
		tc.mutate(&spec)
		if _, err := m.CreateShipment(ctx, spec); !errs.IsValidation(err) {
			t.Errorf("%s: want ValidationError, got %v", tc.name, err)
		}
	}
	if len(state.Shipments()) != 0 {
		t.Errorf("rejected bookings must not touch the cache")
	}
}

func TestUpdateStatus_HappyPath(t *testing.T) {
	m, _ := newManager(t, "lc_happy")
	ctx := context.Background()

	sh, err := m.CreateShipment(ctx, validBooking())
	if err != nil {
		t.Fatal(err)
	}

	path := []models.ShipmentStatus{
		models.StatusInTransit,
		models.StatusOutForDelivery,
		models.StatusDelivered,
	}
	for _, next := range path {
		sh, err = m.UpdateStatus(ctx, sh.TrackingNumber, next)
		if err != nil {
			t.Fatalf("to %s: %v", next, err)
		}
		if sh.Status != next {
			t.Fatalf("status: got %s, want %s", sh.Status, next)
		}
	}
	if sh.DeliveredAt == nil {
		t.Errorf("delivered shipment should carry a delivery date")
	}
	// Cost never changes after creation.
	if sh.Cost != 200 {
		t.Errorf("cost mutated to %v", sh.Cost)
	}
}

func TestUpdateStatus_FailedAttemptRetryLoop(t *testing.T) {
	m, _ := newManager(t, "lc_retry")
	ctx := context.Background()

	sh, err := m.CreateShipment(ctx, validBooking())
	if err != nil {
		t.Fatal(err)
	}
	for _, next := range []models.ShipmentStatus{
		models.StatusInTransit,
		models.StatusOutForDelivery,
		models.StatusFailedAttempt,
		models.StatusOutForDelivery,
		models.StatusDelivered,
	} {
		if sh, err = m.UpdateStatus(ctx, sh.TrackingNumber, next); err != nil {
			t.Fatalf("to %s: %v", next, err)
		}
	}
}

func TestUpdateStatus_SkippingStatesIsRejected(t *testing.T) {
	m, _ := newManager(t, "lc_skip")
	ctx := context.Background()

	sh, err := m.CreateShipment(ctx, validBooking())
	if err != nil {
		t.Fatal(err)
	}
	// Booked straight to Delivered skips the intermediate states.
	if _, err := m.UpdateStatus(ctx, sh.TrackingNumber, models.StatusDelivered); !errs.IsInvalidTransition(err) {
		t.Fatalf("want InvalidTransitionError, got %v", err)
	}
	// The stored record is untouched.
	got, err := m.GetShipment(ctx, sh.TrackingNumber)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != models.StatusBooked {
		t.Errorf("stored status changed to %s", got.Status)
	}
}

func TestUpdateStatus_UnknownTracking(t *testing.T) {
	m, _ := newManager(t, "lc_missing")
	_, err := m.UpdateStatus(context.Background(), "CP999999", models.StatusInTransit)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCancelShipment_OnlyFromBooked(t *testing.T) {
	m, _ := newManager(t, "lc_cancel")
	ctx := context.Background()

	sh, err := m.CreateShipment(ctx, validBooking())
	if err != nil {
		t.Fatal(err)
	}
	cancelled, err := m.CancelShipment(ctx, sh.TrackingNumber, "customer changed mind")
	if err != nil {
		t.Fatalf("cancel from Booked: %v", err)
	}
	if cancelled.Status != models.StatusCancelled {
		t.Errorf("status: got %s", cancelled.Status)
	}
	if cancelled.CancelReason != "customer changed mind" {
		t.Errorf("reason: got %q", cancelled.CancelReason)
	}

	// Cancelled is terminal.
	if _, err := m.UpdateStatus(ctx, sh.TrackingNumber, models.StatusInTransit); !errs.IsInvalidTransition(err) {
		t.Errorf("want InvalidTransitionError, got %v", err)
	}
}

func TestCancelShipment_InTransitIsRejected(t *testing.T) {
	m, _ := newManager(t, "lc_cancel_late")
	ctx := context.Background()

	sh, err := m.CreateShipment(ctx, validBooking())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.UpdateStatus(ctx, sh.TrackingNumber, models.StatusInTransit); err != nil {
		t.Fatal(err)
	}
	if _, err := m.CancelShipment(ctx, sh.TrackingNumber, "too late"); !errs.IsInvalidTransition(err) {
		t.Fatalf("want InvalidTransitionError, got %v", err)
	}
	got, err := m.GetShipment(ctx, sh.TrackingNumber)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != models.StatusInTransit || got.CancelReason != "" {
		t.Errorf("rejected cancel mutated record: %+v", got)
	}
}

func TestListShipments_RefreshesCache(t *testing.T) {
	m, state := newManager(t, "lc_list")
	ctx := context.Background()

	first, err := m.CreateShipment(ctx, validBooking())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.CreateShipment(ctx, validBooking()); err != nil {
		t.Fatal(err)
	}

	list, err := m.ListShipments(ctx, "cust-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d shipments", len(list))
	}
	// Newest first.
	if list[1].TrackingNumber != first.TrackingNumber {
		t.Errorf("expected oldest last, got %+v", list)
	}
	if len(state.Shipments()) != 2 {
		t.Errorf("cache not refreshed")
	}
}

func TestPurgeShipment(t *testing.T) {
	m, state := newManager(t, "lc_purge")
	ctx := context.Background()

	sh, err := m.CreateShipment(ctx, validBooking())
	if err != nil {
		t.Fatal(err)
	}
	if err := m.PurgeShipment(ctx, sh.TrackingNumber); err != nil {
		t.Fatal(err)
	}
	if _, err := m.GetShipment(ctx, sh.TrackingNumber); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("want ErrNotFound after purge, got %v", err)
	}
	if len(state.Shipments()) != 0 {
		t.Errorf("cache still holds purged shipment")
	}
}

func TestBookingNotifiesAgents(t *testing.T) {
	m, state := newManager(t, "lc_notify")
	if _, err := m.CreateShipment(context.Background(), validBooking()); err != nil {
		t.Fatal(err)
	}
	agent := state.NotificationsForRole(models.RoleAgent)
	if len(agent) != 1 {
		t.Fatalf("agent notifications: got %d, want 1", len(agent))
	}
	if got := state.NotificationsForRole(models.RoleCustomer); len(got) != 0 {
		t.Errorf("booking should not notify customers, got %+v", got)
	}
}
