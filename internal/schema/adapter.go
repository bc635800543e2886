package schema

import (
	"time"

	"courierPortal/internal/errs"
	"courierPortal/models"
)

// Dates are persisted as RFC3339 strings. Unparseable or empty values
// degrade to the zero time rather than failing the mapping.
const dateFormat = time.RFC3339

// ShipmentView maps a shipment record to its view model. It fails only
// when the tracking number is absent; every other field has a default.
func ShipmentView(rec *ShipmentRecord) (*models.Shipment, error) {
	if rec == nil || rec.TrackingNumber == "" {
		return nil, &errs.MappingError{Entity: "shipment", Field: "tracking_number"}
	}
	s := &models.Shipment{
		TrackingNumber: rec.TrackingNumber,
		OwnerID:        rec.CustomerID,
		Sender:         contactView(rec.Sender),
		Receiver:       contactView(rec.Receiver),
		WeightKg:       rec.WeightKg,
		Tier:           models.ServiceTier(rec.ServiceTier),
		PaymentMode:    models.PaymentMode(rec.PaymentMode),
		Cost:           rec.Cost,
		Status:         models.ShipmentStatus(StatusTitle(rec.Status)),
		BookedAt:       parseDate(rec.BookingDate),
		EstimatedAt:    parseDate(rec.EstimatedDate),
		GatewayRef:     rec.GatewayRef,
		CancelReason:   rec.CancelReason,
	}
	if rec.DeliveredDate != "" {
		d := parseDate(rec.DeliveredDate)
		s.DeliveredAt = &d
	}
	return s, nil
}

// ShipmentRecordOf maps a view model back to its record shape. Pure and
// total: a zero view model yields a zero record.
func ShipmentRecordOf(s *models.Shipment) *ShipmentRecord {
	rec := &ShipmentRecord{
		TrackingNumber: s.TrackingNumber,
		CustomerID:     s.OwnerID,
		Sender:         contactRecord(s.Sender),
		Receiver:       contactRecord(s.Receiver),
		WeightKg:       s.WeightKg,
		ServiceTier:    string(s.Tier),
		PaymentMode:    string(s.PaymentMode),
		Cost:           s.Cost,
		Status:         StatusToken(string(s.Status)),
		BookingDate:    formatDate(s.BookedAt),
		EstimatedDate:  formatDate(s.EstimatedAt),
		GatewayRef:     s.GatewayRef,
		CancelReason:   s.CancelReason,
	}
	if s.DeliveredAt != nil {
		rec.DeliveredDate = formatDate(*s.DeliveredAt)
	}
	return rec
}

// UserView maps a user record to its view model. Email is the required
// identifier.
func UserView(rec *UserRecord) (*models.User, error) {
	if rec == nil || rec.Email == "" {
		return nil, &errs.MappingError{Entity: "user", Field: "email"}
	}
	return &models.User{
		ID:      rec.ID,
		Name:    rec.FullName,
		Email:   rec.Email,
		Role:    models.Role(rec.Role),
		Contact: contactView(rec.Contact),
		Avatar:  rec.AvatarURL,
	}, nil
}

// UserRecordOf maps a user view model back to its record shape.
func UserRecordOf(u *models.User) *UserRecord {
	return &UserRecord{
		ID:        u.ID,
		FullName:  u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Contact:   contactRecord(u.Contact),
		AvatarURL: u.Avatar,
	}
}

// contactView flattens a nested contact object; a missing sub-object
// yields empty strings, not an error.
func contactView(c *ContactRecord) models.Contact {
	if c == nil {
		return models.Contact{}
	}
	return models.Contact{
		Name:    c.Name,
		Phone:   c.Phone,
		Address: c.Address,
		City:    c.City,
		Pincode: c.Pincode,
	}
}

func contactRecord(c models.Contact) *ContactRecord {
	return &ContactRecord{
		Name:    c.Name,
		Phone:   c.Phone,
		Address: c.Address,
		City:    c.City,
		Pincode: c.Pincode,
	}
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateFormat)
}
