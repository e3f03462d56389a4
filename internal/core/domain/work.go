package domain

// Work is a bookable work item from the catalog.
type Work struct {
	// ID is the catalog identifier.
	ID int `json:"id" toml:"id"`

	// Name is the work item name shown to customers and stored in
	// Service.RequestedServices.
	Name string `json:"name" toml:"name"`

	// Category groups related work (house, garden, laundry).
	Category string `json:"category" toml:"category"`

	// TimeMinutes is the nominal duration, used by the worker/admin side.
	TimeMinutes int `json:"timeMinutes" toml:"time_minutes"`

	// Price is the catalog unit price before any plan discount.
	Price float64 `json:"price" toml:"price"`
}

// Package is a bundle of work items bookable under the Premium plan.
type Package struct {
	// ID is the catalog identifier.
	ID int `json:"id" toml:"id"`

	// Name is the bundle name.
	Name string `json:"name" toml:"name"`

	// Description summarises what the bundle covers.
	Description string `json:"description" toml:"description"`

	// WorkIDs lists the bundled Work ids.
	WorkIDs []int `json:"workIds" toml:"work_ids"`
}
