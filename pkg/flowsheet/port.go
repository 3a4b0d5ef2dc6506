package flowsheet

import "fmt"

type PortKind string

const (
	Inlet  PortKind = "input"
	Outlet PortKind = "output"
)

// Port is a bounded, ordered collection of streams on one side of a device.
// Capacity is fixed at construction; Attach rejects streams once the port
// is full, leaving the port unchanged.
type Port interface {
	Kind() PortKind
	Capacity() int
	Count() int
	Streams() []Stream
	Attach(stream Stream) error
}

type port struct {
	kind     PortKind
	capacity int
	streams  []Stream
}

func (p *port) Kind() PortKind {
	return p.kind
}

func (p *port) Capacity() int {
	return p.capacity
}

func (p *port) Count() int {
	return len(p.streams)
}

func (p *port) Streams() []Stream {
	return p.streams
}

func (p *port) Attach(stream Stream) error {
	if stream == nil {
		return fmt.Errorf("could not attach %s stream, as it was nil", p.kind)
	}

	if len(p.streams) >= p.capacity {
		return &CapacityError{
			Port:  p.kind,
			Count: len(p.streams),
			Limit: p.capacity,
		}
	}

	p.streams = append(p.streams, stream)
	return nil
}

func NewPort(kind PortKind, capacity int) Port {
	return &port{
		kind:     kind,
		capacity: capacity,
		streams:  make([]Stream, 0, capacity),
	}
}
