package types

import "strings"

// Address is the delivery address snapshot stored on group orders and the
// finalized order. Persisted as jsonb.
type Address struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

// IsZero reports whether no address fields are populated.
func (a Address) IsZero() bool {
	return strings.TrimSpace(a.Street) == "" &&
		strings.TrimSpace(a.City) == "" &&
		strings.TrimSpace(a.Postcode) == "" &&
		strings.TrimSpace(a.Country) == ""
}
