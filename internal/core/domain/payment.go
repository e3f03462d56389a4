package domain

// Payment is the bill raised for a service request.
//
// There is at most one Payment per service. AmountDue is immutable once
// set (regenerating a payment replaces the record wholesale) and Paid only
// ever moves from false to true.
type Payment struct {
	// ServiceID links the payment to its service. Unique per service.
	ServiceID int `json:"serviceID"`

	// AmountDue is the computed bill, including any plan discount.
	AmountDue float64 `json:"amountDue"`

	// Paid reports whether the bill has been settled.
	Paid bool `json:"paid"`
}
