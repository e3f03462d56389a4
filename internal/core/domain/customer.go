package domain

// Customer represents a registered customer account.
//
// The password is stored in plaintext. That matches the shared data files
// the worker/admin subsystem reads and is a deliberate property of the
// system, not an oversight to patch here.
type Customer struct {
	// ID is the customer-chosen unique identifier.
	// Uniqueness is enforced only at registration.
	ID string `json:"id"`

	// Password is the login password, compared by exact string match.
	Password string `json:"password"`

	// Name is the customer's display name.
	Name string `json:"name"`

	// Gender is M or F.
	Gender string `json:"gender"`

	// Locality is one of the serviced localities.
	Locality string `json:"locality"`

	// Address is the free-form service address.
	Address string `json:"address"`
}
