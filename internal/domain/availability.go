package domain

// AvailabilityPolicy selects the capacity model used when deciding whether
// a room can take another booking. The direct booking path treats a room
// document as a single unit (Binary); the search path treats a room as a
// type with a fixed number of interchangeable units (FixedInventory).
// Both models are deliberate variants, not an accident: they answer
// different questions and are tagged so callers pick one explicitly.
type AvailabilityPolicy struct {
	kind  string
	units int
}

func BinaryAvailability() AvailabilityPolicy {
	return AvailabilityPolicy{kind: "binary", units: 1}
}

func FixedInventory(units int) AvailabilityPolicy {
	if units < 1 {
		units = 1
	}
	return AvailabilityPolicy{kind: "fixed", units: units}
}

// Units is the number of interchangeable units a room represents under
// this policy.
func (p AvailabilityPolicy) Units() int {
	if p.kind == "" {
		return 1
	}
	return p.units
}

// Available reports whether a room with the given number of overlapping
// active bookings can take one more.
func (p AvailabilityPolicy) Available(overlapping int64) bool {
	return overlapping < int64(p.Units())
}

// FreeUnits is max(0, units - overlapping).
func (p AvailabilityPolicy) FreeUnits(overlapping int64) int {
	free := p.Units() - int(overlapping)
	if free < 0 {
		return 0
	}
	return free
}
