package db

// SchemaSQL is the single source of truth for the portal schema. Open
// applies it on every start; statements are idempotent so a fresh and an
// existing database bootstrap the same way.
//
// Note: users.email carries no UNIQUE constraint on purpose. Duplicate
// detection is a registration-time rule, and login's "first match wins"
// behavior over ambiguous rows is preserved as documented.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS shipments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	tracking_number TEXT NOT NULL UNIQUE,
	customer_id TEXT NOT NULL,
	sender_name TEXT NOT NULL DEFAULT '',
	sender_phone TEXT NOT NULL DEFAULT '',
	sender_address TEXT NOT NULL DEFAULT '',
	sender_city TEXT NOT NULL DEFAULT '',
	sender_pincode TEXT NOT NULL DEFAULT '',
	receiver_name TEXT NOT NULL DEFAULT '',
	receiver_phone TEXT NOT NULL DEFAULT '',
	receiver_address TEXT NOT NULL DEFAULT '',
	receiver_city TEXT NOT NULL DEFAULT '',
	receiver_pincode TEXT NOT NULL DEFAULT '',
	weight_kg REAL NOT NULL,
	service_tier TEXT NOT NULL,
	payment_mode TEXT NOT NULL,
	cost REAL NOT NULL,
	status TEXT NOT NULL,
	booking_date TEXT NOT NULL DEFAULT '',
	estimated_date TEXT NOT NULL DEFAULT '',
	delivered_date TEXT NOT NULL DEFAULT '',
	gateway_txn_ref TEXT NOT NULL DEFAULT '',
	cancel_reason TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_shipments_customer ON shipments(customer_id);

CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	full_name TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL,
	password TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'customer',
	phone TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT '',
	city TEXT NOT NULL DEFAULT '',
	pincode TEXT NOT NULL DEFAULT '',
	avatar_url TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);

CREATE TABLE IF NOT EXISTS transactions (
	id TEXT PRIMARY KEY,
	tracking_number TEXT NOT NULL,
	txn_date TEXT NOT NULL,
	amount REAL NOT NULL,
	status TEXT NOT NULL,
	method TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS branches (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	type TEXT NOT NULL,
	location TEXT NOT NULL DEFAULT '',
	manager TEXT NOT NULL DEFAULT '',
	staff_count INTEGER NOT NULL DEFAULT 0,
	status TEXT NOT NULL DEFAULT 'Active'
);

CREATE TABLE IF NOT EXISTS fleet (
	number TEXT PRIMARY KEY,
	type TEXT NOT NULL DEFAULT '',
	driver_id TEXT,
	status TEXT NOT NULL DEFAULT 'Available'
);

CREATE TABLE IF NOT EXISTS staff (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	role TEXT NOT NULL,
	branch_id TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'Active',
	phone TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT '',
	docs_complete INTEGER NOT NULL DEFAULT 0
);
`
