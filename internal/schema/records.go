// Package schema translates between the persisted record shape
// (snake_case, UPPER_SNAKE enum tokens, nested contact objects) and the
// flat human-readable view models in package models. Both directions are
// pure and total over well-formed input: every field short of the
// required identifier degrades to a default instead of failing.
package schema

// ContactRecord is the nested contact object as the store keeps it.
type ContactRecord struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

// ShipmentRecord is a shipment row. ID is the store's internal row
// identifier and is never shown to the user; TrackingNumber is the
// externally visible identifier and the one lookups key on.
type ShipmentRecord struct {
	ID             int64          `json:"id"`
	TrackingNumber string         `json:"tracking_number"`
	CustomerID     string         `json:"customer_id"`
	Sender         *ContactRecord `json:"sender_contact"`
	Receiver       *ContactRecord `json:"receiver_contact"`
	WeightKg       float64        `json:"weight_kg"`
	ServiceTier    string         `json:"service_tier"`
	PaymentMode    string         `json:"payment_mode"`
	Cost           float64        `json:"cost"`
	Status         string         `json:"status"`
	BookingDate    string         `json:"booking_date"`
	EstimatedDate  string         `json:"estimated_date"`
	DeliveredDate  string         `json:"delivered_date,omitempty"`
	GatewayRef     string         `json:"gateway_txn_ref,omitempty"`
	CancelReason   string         `json:"cancel_reason,omitempty"`
}

// UserRecord is a user row. Email is the required identifier.
type UserRecord struct {
	ID        string         `json:"id"`
	FullName  string         `json:"full_name"`
	Email     string         `json:"email"`
	Role      string         `json:"role"`
	Contact   *ContactRecord `json:"contact"`
	AvatarURL string         `json:"avatar_url,omitempty"`
}
