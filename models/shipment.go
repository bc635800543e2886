package models

import "time"

// ShipmentStatus represents the current progress of a shipment.
// Values are the human-readable display form; the persisted token form
// (BOOKED, IN_TRANSIT, ...) lives in the schema adapter.
type ShipmentStatus string

const (
	StatusBooked         ShipmentStatus = "Booked"
	StatusInTransit      ShipmentStatus = "In Transit"
	StatusOutForDelivery ShipmentStatus = "Out for Delivery"
	StatusDelivered      ShipmentStatus = "Delivered"
	StatusCancelled      ShipmentStatus = "Cancelled"
	StatusFailedAttempt  ShipmentStatus = "Failed Attempt"
)

// ServiceTier is the declared delivery speed for a shipment.
// The token form doubles as the persisted value.
type ServiceTier string

const (
	TierStandard ServiceTier = "STANDARD"
	TierExpress  ServiceTier = "EXPRESS"
	TierSameDay  ServiceTier = "SAME_DAY"
)

// PaymentMode is how the customer pays for a booking.
type PaymentMode string

const (
	PayCash PaymentMode = "cash"
	PayUPI  PaymentMode = "upi"
	PayCard PaymentMode = "card"
)

// Contact is a sender or receiver contact block.
type Contact struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

// Shipment is the in-memory view of a shipment as every screen consumes it.
// TrackingNumber is the externally visible identifier and is assigned
// exactly once, by the store, at creation. Cost is computed at creation
// and never changes after.
type Shipment struct {
	TrackingNumber string         `json:"tracking_number"`
	OwnerID        string         `json:"owner_id"`
	Sender         Contact        `json:"sender"`
	Receiver       Contact        `json:"receiver"`
	WeightKg       float64        `json:"weight_kg"`
	Tier           ServiceTier    `json:"tier"`
	PaymentMode    PaymentMode    `json:"payment_mode"`
	Cost           float64        `json:"cost"`
	Status         ShipmentStatus `json:"status"`
	BookedAt       time.Time      `json:"booked_at"`
	EstimatedAt    time.Time      `json:"estimated_at"`
	DeliveredAt    *time.Time     `json:"delivered_at,omitempty"`
	GatewayRef     string         `json:"gateway_ref,omitempty"`
	CancelReason   string         `json:"cancel_reason,omitempty"`
}
