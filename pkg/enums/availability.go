package enums

// Availability is the derived stock classification shown alongside a
// product. It is computed from quantity on every fetch and never treated as
// authoritative in storage.
type Availability string

const (
	AvailabilityInStock    Availability = "In Stock"
	AvailabilityLowStock   Availability = "Low Stock"
	AvailabilityOutOfStock Availability = "Out of Stock"
)

// String implements fmt.Stringer.
func (a Availability) String() string {
	return string(a)
}

// IsValid reports whether the value is a known Availability.
func (a Availability) IsValid() bool {
	switch a {
	case AvailabilityInStock, AvailabilityLowStock, AvailabilityOutOfStock:
		return true
	}
	return false
}
