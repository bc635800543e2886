package models

import "time"

// TransactionStatus is the settlement state of a payment.
type TransactionStatus string

const (
	TxnPending   TransactionStatus = "Pending"
	TxnCompleted TransactionStatus = "Completed"
	TxnFailed    TransactionStatus = "Failed"
)

// Transaction records the payment attached to a booking.
type Transaction struct {
	ID             string            `json:"id"`
	TrackingNumber string            `json:"tracking_number"`
	Date           time.Time         `json:"date"`
	Amount         float64           `json:"amount"`
	Status         TransactionStatus `json:"status"`
	Method         PaymentMode       `json:"method"`
}

// NotificationScope selects which role a notification is shown to.
// ScopeAll matches every role.
type NotificationScope string

const (
	ScopeCustomer NotificationScope = "customer"
	ScopeAgent    NotificationScope = "agent"
	ScopeAdmin    NotificationScope = "admin"
	ScopeAll      NotificationScope = "all"
)

// Notification is a role-scoped message consumed by the UI shell.
type Notification struct {
	ID        string            `json:"id"`
	Message   string            `json:"message"`
	Scope     NotificationScope `json:"scope"`
	CreatedAt time.Time         `json:"created_at"`
}
