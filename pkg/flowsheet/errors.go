package flowsheet

import (
	"errors"
	"fmt"
)

// ErrMassFlowNotSet is returned when a stream's mass flow is read before it
// was ever set.
var ErrMassFlowNotSet = errors.New("mass flow has not been set")

// CapacityError is returned by a full port. Port tells callers which side
// of the device overflowed.
type CapacityError struct {
	Port  PortKind
	Count int
	Limit int
}

func (ce *CapacityError) Error() string {
	return fmt.Sprintf("too many %s streams: %d attached, limit is %d", ce.Port, ce.Count, ce.Limit)
}

// NotConfiguredError is returned when a device is asked to recompute before
// the named port has any streams attached.
type NotConfiguredError struct {
	Device DeviceName
	Port   PortKind
}

func (nce *NotConfiguredError) Error() string {
	return fmt.Sprintf("device '%s' has no %s streams attached", nce.Device, nce.Port)
}
