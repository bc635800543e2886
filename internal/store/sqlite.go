package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"courierPortal/internal/errs"
	"courierPortal/internal/schema"
	"courierPortal/models"
)

const (
	opTimeout   = 3 * time.Second
	listTimeout = 5 * time.Second

	dateFormat = time.RFC3339
)

// SQLiteStore implements RecordStore over a local SQLite database. It
// stands in for the remote record store, so driver failures surface as
// the transient errs.ErrNetwork kind.
type SQLiteStore struct {
	db     *sql.DB
	prefix string // alphabetic tracking number prefix, e.g. "CP"
}

// NewSQLiteStore creates a store issuing tracking numbers under prefix.
func NewSQLiteStore(db *sql.DB, prefix string) *SQLiteStore {
	if prefix == "" {
		prefix = "CP"
	}
	return &SQLiteStore{db: db, prefix: prefix}
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, errs.ErrNetwork, err)
}

const shipmentColumns = `tracking_number, customer_id,
	sender_name, sender_phone, sender_address, sender_city, sender_pincode,
	receiver_name, receiver_phone, receiver_address, receiver_city, receiver_pincode,
	weight_kg, service_tier, payment_mode, cost, status,
	booking_date, estimated_date, delivered_date, gateway_txn_ref, cancel_reason`

// CreateShipment inserts the record and issues its tracking number from
// the row's AUTOINCREMENT id inside the same transaction, so the number
// is unique and monotonic by construction.
func (s *SQLiteStore) CreateShipment(ctx context.Context, rec *schema.ShipmentRecord) (*schema.ShipmentRecord, error) {
	if rec == nil {
		return nil, errors.New("shipment record is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storeErr("create shipment", err)
	}
	defer func() { _ = tx.Rollback() }()

	sender := orEmpty(rec.Sender)
	receiver := orEmpty(rec.Receiver)
	// Placeholder satisfies the UNIQUE constraint until the id is known.
	placeholder := fmt.Sprintf("pending-%d", time.Now().UnixNano())
	res, err := tx.ExecContext(ctx, `INSERT INTO shipments (`+shipmentColumns+`)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		placeholder, rec.CustomerID,
		sender.Name, sender.Phone, sender.Address, sender.City, sender.Pincode,
		receiver.Name, receiver.Phone, receiver.Address, receiver.City, receiver.Pincode,
		rec.WeightKg, rec.ServiceTier, rec.PaymentMode, rec.Cost, rec.Status,
		rec.BookingDate, rec.EstimatedDate, rec.DeliveredDate, rec.GatewayRef, rec.CancelReason)
	if err != nil {
		return nil, storeErr("create shipment", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, storeErr("create shipment", err)
	}
	tracking := fmt.Sprintf("%s%06d", s.prefix, id)
	if _, err := tx.ExecContext(ctx, `UPDATE shipments SET tracking_number = ? WHERE id = ?`, tracking, id); err != nil {
		return nil, storeErr("create shipment", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, storeErr("create shipment", err)
	}

	return s.ShipmentByTracking(ctx, tracking)
}

// ShipmentByTracking fetches one shipment by its tracking number.
func (s *SQLiteStore) ShipmentByTracking(ctx context.Context, trackingNumber string) (*schema.ShipmentRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	row := s.db.QueryRowContext(ctx, `SELECT id, `+shipmentColumns+` FROM shipments WHERE tracking_number = ?`, trackingNumber)
	rec, err := scanShipment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("shipment %s: %w", trackingNumber, errs.ErrNotFound)
		}
		return nil, storeErr("get shipment", err)
	}
	return rec, nil
}

// ShipmentsByCustomer returns the customer's shipments, newest first.
func (s *SQLiteStore) ShipmentsByCustomer(ctx context.Context, customerID string) ([]*schema.ShipmentRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `SELECT id, `+shipmentColumns+` FROM shipments WHERE customer_id = ? ORDER BY id DESC`, customerID)
	if err != nil {
		return nil, storeErr("list shipments", err)
	}
	defer rows.Close()

	var out []*schema.ShipmentRecord
	for rows.Next() {
		rec, err := scanShipment(rows)
		if err != nil {
			return nil, storeErr("list shipments", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list shipments", err)
	}
	return out, nil
}

// UpdateShipment rewrites the full row keyed by tracking number.
func (s *SQLiteStore) UpdateShipment(ctx context.Context, rec *schema.ShipmentRecord) error {
	if rec == nil || rec.TrackingNumber == "" {
		return errors.New("shipment record missing tracking number")
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	sender := orEmpty(rec.Sender)
	receiver := orEmpty(rec.Receiver)
	res, err := s.db.ExecContext(ctx, `UPDATE shipments SET
		customer_id = ?,
		sender_name = ?, sender_phone = ?, sender_address = ?, sender_city = ?, sender_pincode = ?,
		receiver_name = ?, receiver_phone = ?, receiver_address = ?, receiver_city = ?, receiver_pincode = ?,
		weight_kg = ?, service_tier = ?, payment_mode = ?, cost = ?, status = ?,
		booking_date = ?, estimated_date = ?, delivered_date = ?, gateway_txn_ref = ?, cancel_reason = ?
		WHERE tracking_number = ?`,
		rec.CustomerID,
		sender.Name, sender.Phone, sender.Address, sender.City, sender.Pincode,
		receiver.Name, receiver.Phone, receiver.Address, receiver.City, receiver.Pincode,
		rec.WeightKg, rec.ServiceTier, rec.PaymentMode, rec.Cost, rec.Status,
		rec.BookingDate, rec.EstimatedDate, rec.DeliveredDate, rec.GatewayRef, rec.CancelReason,
		rec.TrackingNumber)
	if err != nil {
		return storeErr("update shipment", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("shipment %s: %w", rec.TrackingNumber, errs.ErrNotFound)
	}
	return nil
}

// DeleteShipment removes a shipment row outright.
func (s *SQLiteStore) DeleteShipment(ctx context.Context, trackingNumber string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if _, err := s.db.ExecContext(ctx, `DELETE FROM shipments WHERE tracking_number = ?`, trackingNumber); err != nil {
		return storeErr("delete shipment", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShipment(row rowScanner) (*schema.ShipmentRecord, error) {
	var rec schema.ShipmentRecord
	sender := &schema.ContactRecord{}
	receiver := &schema.ContactRecord{}
	err := row.Scan(&rec.ID, &rec.TrackingNumber, &rec.CustomerID,
		&sender.Name, &sender.Phone, &sender.Address, &sender.City, &sender.Pincode,
		&receiver.Name, &receiver.Phone, &receiver.Address, &receiver.City, &receiver.Pincode,
		&rec.WeightKg, &rec.ServiceTier, &rec.PaymentMode, &rec.Cost, &rec.Status,
		&rec.BookingDate, &rec.EstimatedDate, &rec.DeliveredDate, &rec.GatewayRef, &rec.CancelReason)
	if err != nil {
		return nil, err
	}
	rec.Sender = sender
	rec.Receiver = receiver
	return &rec, nil
}

func orEmpty(c *schema.ContactRecord) schema.ContactRecord {
	if c == nil {
		return schema.ContactRecord{}
	}
	return *c
}

// CreateUser inserts a user row. The password is stored as given;
// exact-match comparison at login is preserved portal behavior.
func (s *SQLiteStore) CreateUser(ctx context.Context, rec *schema.UserRecord, password string) error {
	if rec == nil {
		return errors.New("user record is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	c := orEmpty(rec.Contact)
	_, err := s.db.ExecContext(ctx, `INSERT INTO users (id, full_name, email, password, role, phone, address, city, pincode, avatar_url)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		rec.ID, rec.FullName, rec.Email, password, rec.Role, c.Phone, c.Address, c.City, c.Pincode, rec.AvatarURL)
	if err != nil {
		return storeErr("create user", err)
	}
	return nil
}

const userColumns = `id, full_name, email, role, phone, address, city, pincode, avatar_url`

// UserByEmail returns the first user row with the given email.
func (s *SQLiteStore) UserByEmail(ctx context.Context, email string) (*schema.UserRecord, error) {
	return s.userWhere(ctx, `email = ?`, email)
}

// UserByCredentials returns the first user whose email and password both
// match exactly. Rows are ordered by insertion, so ambiguity resolves to
// first found.
func (s *SQLiteStore) UserByCredentials(ctx context.Context, email, password string) (*schema.UserRecord, error) {
	return s.userWhere(ctx, `email = ? AND password = ?`, email, password)
}

func (s *SQLiteStore) userWhere(ctx context.Context, where string, args ...any) (*schema.UserRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var rec schema.UserRecord
	contact := &schema.ContactRecord{}
	err := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE `+where+` ORDER BY rowid LIMIT 1`, args...).
		Scan(&rec.ID, &rec.FullName, &rec.Email, &rec.Role,
			&contact.Phone, &contact.Address, &contact.City, &contact.Pincode, &rec.AvatarURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user: %w", errs.ErrNotFound)
		}
		return nil, storeErr("get user", err)
	}
	contact.Name = rec.FullName
	rec.Contact = contact
	return &rec, nil
}

// CreateTransaction inserts a payment transaction row.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	if t == nil {
		return errors.New("transaction is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `INSERT INTO transactions (id, tracking_number, txn_date, amount, status, method)
		VALUES (?,?,?,?,?,?)`,
		t.ID, t.TrackingNumber, t.Date.Format(dateFormat), t.Amount, string(t.Status), string(t.Method))
	if err != nil {
		return storeErr("create transaction", err)
	}
	return nil
}

// TransactionsByTracking lists payments recorded against a shipment.
func (s *SQLiteStore) TransactionsByTracking(ctx context.Context, trackingNumber string) ([]models.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `SELECT id, tracking_number, txn_date, amount, status, method FROM transactions WHERE tracking_number = ? ORDER BY txn_date`, trackingNumber)
	if err != nil {
		return nil, storeErr("list transactions", err)
	}
	defer rows.Close()

	var out []models.Transaction
	for rows.Next() {
		var t models.Transaction
		var date, status, method string
		if err := rows.Scan(&t.ID, &t.TrackingNumber, &date, &t.Amount, &status, &method); err != nil {
			return nil, storeErr("list transactions", err)
		}
		t.Date, _ = time.Parse(dateFormat, date)
		t.Status = models.TransactionStatus(status)
		t.Method = models.PaymentMode(method)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list transactions", err)
	}
	return out, nil
}

// SaveBranch upserts a branch row.
func (s *SQLiteStore) SaveBranch(ctx context.Context, b *models.Branch) error {
	if b == nil {
		return errors.New("branch is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `INSERT INTO branches (id, name, type, location, manager, staff_count, status)
		VALUES (?,?,?,?,?,?,?)
		ON CONFLICT(id) DO UPDATE SET name=excluded.name, type=excluded.type, location=excluded.location,
			manager=excluded.manager, staff_count=excluded.staff_count, status=excluded.status`,
		b.ID, b.Name, string(b.Type), b.Location, b.Manager, b.StaffCount, string(b.Status))
	if err != nil {
		return storeErr("save branch", err)
	}
	return nil
}

// DeleteBranch removes a branch row.
func (s *SQLiteStore) DeleteBranch(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if _, err := s.db.ExecContext(ctx, `DELETE FROM branches WHERE id = ?`, id); err != nil {
		return storeErr("delete branch", err)
	}
	return nil
}

// ListBranches returns all branches ordered by name.
func (s *SQLiteStore) ListBranches(ctx context.Context) ([]models.Branch, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, type, location, manager, staff_count, status FROM branches ORDER BY name`)
	if err != nil {
		return nil, storeErr("list branches", err)
	}
	defer rows.Close()

	var out []models.Branch
	for rows.Next() {
		var b models.Branch
		var typ, status string
		if err := rows.Scan(&b.ID, &b.Name, &typ, &b.Location, &b.Manager, &b.StaffCount, &status); err != nil {
			return nil, storeErr("list branches", err)
		}
		b.Type = models.BranchType(typ)
		b.Status = models.BranchStatus(status)
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list branches", err)
	}
	return out, nil
}

// SaveVehicle upserts a fleet row.
func (s *SQLiteStore) SaveVehicle(ctx context.Context, v *models.Vehicle) error {
	if v == nil {
		return errors.New("vehicle is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var driver sql.NullString
	if v.Driver != nil {
		driver = sql.NullString{String: *v.Driver, Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO fleet (number, type, driver_id, status)
		VALUES (?,?,?,?)
		ON CONFLICT(number) DO UPDATE SET type=excluded.type, driver_id=excluded.driver_id, status=excluded.status`,
		v.Number, v.Type, driver, string(v.Status))
	if err != nil {
		return storeErr("save vehicle", err)
	}
	return nil
}

// DeleteVehicle removes a fleet row.
func (s *SQLiteStore) DeleteVehicle(ctx context.Context, number string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if _, err := s.db.ExecContext(ctx, `DELETE FROM fleet WHERE number = ?`, number); err != nil {
		return storeErr("delete vehicle", err)
	}
	return nil
}

// ListVehicles returns the fleet ordered by vehicle number.
func (s *SQLiteStore) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `SELECT number, type, driver_id, status FROM fleet ORDER BY number`)
	if err != nil {
		return nil, storeErr("list fleet", err)
	}
	defer rows.Close()

	var out []models.Vehicle
	for rows.Next() {
		var v models.Vehicle
		var driver sql.NullString
		var status string
		if err := rows.Scan(&v.Number, &v.Type, &driver, &status); err != nil {
			return nil, storeErr("list fleet", err)
		}
		if driver.Valid {
			d := driver.String
			v.Driver = &d
		}
		v.Status = models.VehicleStatus(status)
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list fleet", err)
	}
	return out, nil
}

// SaveStaff upserts a staff row.
func (s *SQLiteStore) SaveStaff(ctx context.Context, m *models.StaffMember) error {
	if m == nil {
		return errors.New("staff member is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	docs := 0
	if m.DocsComplete {
		docs = 1
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO staff (id, name, role, branch_id, status, phone, address, docs_complete)
		VALUES (?,?,?,?,?,?,?,?)
		ON CONFLICT(id) DO UPDATE SET name=excluded.name, role=excluded.role, branch_id=excluded.branch_id,
			status=excluded.status, phone=excluded.phone, address=excluded.address, docs_complete=excluded.docs_complete`,
		m.ID, m.Name, string(m.Role), m.BranchID, m.Status, m.Phone, m.Address, docs)
	if err != nil {
		return storeErr("save staff", err)
	}
	return nil
}

// DeleteStaff removes a staff row.
func (s *SQLiteStore) DeleteStaff(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if _, err := s.db.ExecContext(ctx, `DELETE FROM staff WHERE id = ?`, id); err != nil {
		return storeErr("delete staff", err)
	}
	return nil
}

// ListStaff returns all staff ordered by name.
func (s *SQLiteStore) ListStaff(ctx context.Context) ([]models.StaffMember, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, role, branch_id, status, phone, address, docs_complete FROM staff ORDER BY name`)
	if err != nil {
		return nil, storeErr("list staff", err)
	}
	defer rows.Close()

	var out []models.StaffMember
	for rows.Next() {
		var m models.StaffMember
		var role string
		var docs int
		if err := rows.Scan(&m.ID, &m.Name, &role, &m.BranchID, &m.Status, &m.Phone, &m.Address, &docs); err != nil {
			return nil, storeErr("list staff", err)
		}
		m.Role = models.StaffRole(role)
		m.DocsComplete = docs != 0
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list staff", err)
	}
	return out, nil
}
