package domain

// ServiceStatus tracks where a service request sits in its lifecycle.
//
// This program only ever creates services in StatusPending. All later
// transitions (Pending -> Assigned or Rejected, Assigned -> Completed)
// belong to the worker/admin subsystem, which writes through the same
// collection files. Completed and Rejected are terminal.
type ServiceStatus int

// Service lifecycle states. The numeric values are part of the persisted
// layout shared with the worker/admin subsystem and must not change.
const (
	// StatusRejected means the request was declined by the admin side.
	StatusRejected ServiceStatus = -1

	// StatusPending means the request is awaiting worker assignment.
	StatusPending ServiceStatus = 0

	// StatusAssigned means a worker has been allocated.
	StatusAssigned ServiceStatus = 1

	// StatusCompleted means the work was carried out.
	StatusCompleted ServiceStatus = 2
)

// IsValid returns true if the status is recognised.
func (s ServiceStatus) IsValid() bool {
	switch s {
	case StatusRejected, StatusPending, StatusAssigned, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if no further transitions originate from this status.
func (s ServiceStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// Description returns a human-readable label for the status.
func (s ServiceStatus) Description() string {
	switch s {
	case StatusRejected:
		return "Rejected"
	case StatusPending:
		return "Pending"
	case StatusAssigned:
		return "Worker Assigned"
	case StatusCompleted:
		return "Completed"
	default:
		return unknownDescription
	}
}

// ServiceType distinguishes bookings for right-now work from bookings
// scheduled for a future date and time.
type ServiceType string

// Available service types.
const (
	// TypeImmediate is a booking for work starting as soon as possible.
	TypeImmediate ServiceType = "Immediate"

	// TypeScheduling is a booking for a caller-chosen future slot.
	TypeScheduling ServiceType = "Scheduling"
)

// IsValid returns true if the service type is recognised.
func (t ServiceType) IsValid() bool {
	return t == TypeImmediate || t == TypeScheduling
}

// String returns the string representation.
func (t ServiceType) String() string {
	return string(t)
}

// Gender preference codes for worker assignment.
const (
	// GenderPrefNone means no preference.
	GenderPrefNone = "NP"

	// GenderPrefMale requests a male worker.
	GenderPrefMale = "M"

	// GenderPrefFemale requests a female worker.
	GenderPrefFemale = "F"
)

// Service represents one booked service request.
//
// The optional fields split into two groups. WorkDate and WorkStartTime are
// set at creation for scheduled bookings; all five work-assignment fields
// plus Reason are otherwise owned exclusively by the worker/admin
// subsystem. Any save this program performs must carry those fields through
// verbatim. Price is attached once, when the payment for the booking
// succeeds.
type Service struct {
	// ID is the unique identifier, allocated as max(existing)+1 at
	// creation and never reused.
	ID int `json:"id"`

	// Status is the lifecycle state. Always StatusPending at creation.
	Status ServiceStatus `json:"status"`

	// Type records whether the booking is immediate or scheduled.
	Type ServiceType `json:"type"`

	// Plan is the pricing plan tier name chosen for the booking.
	Plan string `json:"plan"`

	// BookingDate and BookingTime stamp when the booking was created.
	BookingDate string `json:"bookingDate"`
	BookingTime string `json:"bookingTime"`

	// Locality is the customer's locality at booking time.
	Locality string `json:"locality"`

	// CustomerID links the booking to its customer.
	CustomerID string `json:"customerID"`

	// CustomerGender is carried for worker matching on the admin side.
	CustomerGender string `json:"customerGender"`

	// Address is the service address.
	Address string `json:"address"`

	// RequestedServices lists the chosen work item names, in selection
	// order. Every entry corresponds to a catalog Work at selection time.
	RequestedServices []string `json:"requestedServices"`

	// GenderPref is the worker gender preference (NP, M or F).
	GenderPref string `json:"genderPref"`

	// WorkDate and WorkStartTime hold the scheduled slot for Scheduling
	// bookings; the worker/admin subsystem sets them for Immediate ones.
	WorkDate      *string `json:"workDate,omitempty"`
	WorkStartTime *string `json:"workStartTime,omitempty"`

	// WorkEndTime, AssignedWorkerIDs and Reason are written only by the
	// worker/admin subsystem.
	WorkEndTime       *string `json:"workEndTime,omitempty"`
	AssignedWorkerIDs *string `json:"assignedWorkerIDs,omitempty"`
	Reason            *string `json:"reason,omitempty"`

	// Price is the settled bill amount, set once payment succeeds.
	Price *float64 `json:"price,omitempty"`
}

// IsCurrent returns true if the booking is still in progress
// (pending or assigned).
func (s *Service) IsCurrent() bool {
	return s.Status == StatusPending || s.Status == StatusAssigned
}
