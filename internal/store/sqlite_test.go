package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"courierPortal/internal/db"
	"courierPortal/internal/errs"
	"courierPortal/internal/schema"
	"courierPortal/models"
)

func newTestStore(t *testing.T, name string) *SQLiteStore {
	t.Helper()
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return NewSQLiteStore(d, "CP")
}

func sampleRecord(customer string) *schema.ShipmentRecord {
	return &schema.ShipmentRecord{
		CustomerID: customer,
		Sender: &schema.ContactRecord{
			Name: "Asha Rao", City: "Bengaluru", Address: "12 MG Road", Pincode: "560001",
		},
		Receiver: &schema.ContactRecord{
			Name: "Vikram Shah", City: "Mumbai", Address: "4 Marine Drive", Pincode: "400001",
		},
		WeightKg:    2,
		ServiceTier: "EXPRESS",
		PaymentMode: "upi",
		Cost:        200,
		Status:      "BOOKED",
		BookingDate: "2026-03-01T09:30:00Z",
	}
}

func TestCreateShipment_IssuesMonotonicTrackingNumbers(t *testing.T) {
	s := newTestStore(t, "store_tracking")
	ctx := context.Background()

	var last string
	for i := 0; i < 3; i++ {
		rec, err := s.CreateShipment(ctx, sampleRecord("cust-1"))
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		want := fmt.Sprintf("CP%06d", rec.ID)
		if rec.TrackingNumber != want {
			t.Errorf("tracking: got %q, want %q", rec.TrackingNumber, want)
		}
		if rec.TrackingNumber == last {
			t.Errorf("tracking numbers must be unique")
		}
		if last != "" && rec.TrackingNumber <= last {
			t.Errorf("tracking numbers must be monotonic: %q after %q", rec.TrackingNumber, last)
		}
		last = rec.TrackingNumber
	}
}

func TestShipmentPersistenceRoundTrip(t *testing.T) {
	s := newTestStore(t, "store_roundtrip")
	ctx := context.Background()

	created, err := s.CreateShipment(ctx, sampleRecord("cust-1"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.ShipmentByTracking(ctx, created.TrackingNumber)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != "BOOKED" || got.Cost != 200 || got.Sender.City != "Bengaluru" {
		t.Errorf("stored record mangled: %+v", got)
	}

	got.Status = "IN_TRANSIT"
	if err := s.UpdateShipment(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	back, err := s.ShipmentByTracking(ctx, created.TrackingNumber)
	if err != nil {
		t.Fatal(err)
	}
	if back.Status != "IN_TRANSIT" {
		t.Errorf("status not persisted: %q", back.Status)
	}
}

func TestShipmentByTracking_NotFound(t *testing.T) {
	s := newTestStore(t, "store_missing")
	if _, err := s.ShipmentByTracking(context.Background(), "CP999999"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUpdateShipment_UnknownTracking(t *testing.T) {
	s := newTestStore(t, "store_update_missing")
	rec := sampleRecord("cust-1")
	rec.TrackingNumber = "CP999999"
	if err := s.UpdateShipment(context.Background(), rec); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestShipmentsByCustomer_QueryByField(t *testing.T) {
	s := newTestStore(t, "store_by_customer")
	ctx := context.Background()

	for _, customer := range []string{"cust-1", "cust-2", "cust-1"} {
		if _, err := s.CreateShipment(ctx, sampleRecord(customer)); err != nil {
			t.Fatal(err)
		}
	}
	list, err := s.ShipmentsByCustomer(ctx, "cust-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d shipments for cust-1", len(list))
	}
	// Newest first.
	if list[0].ID < list[1].ID {
		t.Errorf("expected newest first: %+v", list)
	}
}

func TestUserByCredentials_FirstMatchWins(t *testing.T) {
	s := newTestStore(t, "store_first_match")
	ctx := context.Background()

	// Two rows with the same email; the registration-time duplicate
	// check normally prevents this, but the lookup's first-found
	// resolution over ambiguous rows is documented behavior.
	first := &schema.UserRecord{ID: "u-1", FullName: "First", Email: "a@x.com", Role: "customer"}
	second := &schema.UserRecord{ID: "u-2", FullName: "Second", Email: "a@x.com", Role: "customer"}
	if err := s.CreateUser(ctx, first, "pw"); err != nil {
		t.Fatal(err)
	}
	if err := s.CreateUser(ctx, second, "pw"); err != nil {
		t.Fatal(err)
	}

	got, err := s.UserByCredentials(ctx, "a@x.com", "pw")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != "u-1" {
		t.Errorf("want first inserted row, got %s", got.ID)
	}
}

func TestBranchCRUD(t *testing.T) {
	s := newTestStore(t, "store_branches")
	ctx := context.Background()

	b := &models.Branch{ID: "b-1", Name: "Koramangala", Type: models.BranchTypeBranch, Status: models.BranchActive}
	if err := s.SaveBranch(ctx, b); err != nil {
		t.Fatal(err)
	}
	b.Status = models.BranchInactive
	if err := s.SaveBranch(ctx, b); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	list, err := s.ListBranches(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Status != models.BranchInactive {
		t.Errorf("got %+v", list)
	}
	if err := s.DeleteBranch(ctx, "b-1"); err != nil {
		t.Fatal(err)
	}
	if list, _ := s.ListBranches(ctx); len(list) != 0 {
		t.Errorf("branch not deleted")
	}
}

func TestVehicleDriverAssignment(t *testing.T) {
	s := newTestStore(t, "store_fleet")
	ctx := context.Background()

	v := &models.Vehicle{Number: "KA01AB1234", Type: "van", Status: models.VehicleAvailable}
	if err := s.SaveVehicle(ctx, v); err != nil {
		t.Fatal(err)
	}
	list, err := s.ListVehicles(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Driver != nil {
		t.Fatalf("fresh vehicle should be unassigned: %+v", list)
	}

	driver := "staff-1"
	v.Driver = &driver
	v.Status = models.VehicleDelivering
	if err := s.SaveVehicle(ctx, v); err != nil {
		t.Fatal(err)
	}
	list, err = s.ListVehicles(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if list[0].Driver == nil || *list[0].Driver != "staff-1" {
		t.Errorf("driver not persisted: %+v", list[0])
	}
}

func TestStaffCRUD(t *testing.T) {
	s := newTestStore(t, "store_staff")
	ctx := context.Background()

	m := &models.StaffMember{ID: "s-1", Name: "Ravi", Role: models.StaffDriver, BranchID: "b-1", Status: "Active", DocsComplete: true}
	if err := s.SaveStaff(ctx, m); err != nil {
		t.Fatal(err)
	}
	list, err := s.ListStaff(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || !list[0].DocsComplete || list[0].Role != models.StaffDriver {
		t.Errorf("got %+v", list)
	}
	if err := s.DeleteStaff(ctx, "s-1"); err != nil {
		t.Fatal(err)
	}
	if list, _ := s.ListStaff(ctx); len(list) != 0 {
		t.Errorf("staff not deleted")
	}
}

func TestTransactions(t *testing.T) {
	s := newTestStore(t, "store_txns")
	ctx := context.Background()

	created, err := s.CreateShipment(ctx, sampleRecord("cust-1"))
	if err != nil {
		t.Fatal(err)
	}
	txn := &models.Transaction{
		ID:             "t-1",
		TrackingNumber: created.TrackingNumber,
		Amount:         200,
		Status:         models.TxnCompleted,
		Method:         models.PayUPI,
	}
	if err := s.CreateTransaction(ctx, txn); err != nil {
		t.Fatal(err)
	}
	list, err := s.TransactionsByTracking(ctx, created.TrackingNumber)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Amount != 200 || list[0].Method != models.PayUPI {
		t.Errorf("got %+v", list)
	}
}
