package models

// BranchType distinguishes local branches from sorting hubs.
type BranchType string

const (
	BranchTypeBranch BranchType = "Branch"
	BranchTypeHub    BranchType = "Hub"
)

// BranchStatus is the operational state of a branch.
type BranchStatus string

const (
	BranchActive   BranchStatus = "Active"
	BranchInactive BranchStatus = "Inactive"
)

// Branch is a physical node in the delivery network.
type Branch struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Type       BranchType   `json:"type"`
	Location   string       `json:"location"`
	Manager    string       `json:"manager"`
	StaffCount int          `json:"staff_count"`
	Status     BranchStatus `json:"status"`
}

// VehicleStatus is the duty state of a vehicle.
type VehicleStatus string

const (
	VehicleAvailable  VehicleStatus = "Available"
	VehicleInTransit  VehicleStatus = "In Transit"
	VehicleDelivering VehicleStatus = "Delivering"
)

// Vehicle is a fleet vehicle. Number is the identifier shown on screens.
// Driver is nil while the vehicle is unassigned.
type Vehicle struct {
	Number string        `json:"number"`
	Type   string        `json:"type"`
	Driver *string       `json:"driver,omitempty"`
	Status VehicleStatus `json:"status"`
}

// StaffRole is a staff member's function within a branch.
type StaffRole string

const (
	StaffManager StaffRole = "Manager"
	StaffDriver  StaffRole = "Driver"
	StaffAgent   StaffRole = "Agent"
	StaffSorter  StaffRole = "Sorter"
)

// StaffMember is an employee attached to a branch.
type StaffMember struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Role         StaffRole `json:"role"`
	BranchID     string    `json:"branch_id"`
	Status       string    `json:"status"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	DocsComplete bool      `json:"docs_complete"`
}
