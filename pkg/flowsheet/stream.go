package flowsheet

import (
	"fmt"
	"io"
)

type StreamName string

// Stream carries a scalar mass flow between devices. A single Stream may be
// attached to several devices at once, which is how networks are wired.
type Stream interface {
	Name() StreamName
	SetName(name StreamName)
	MassFlow() (float64, error)
	SetMassFlow(flow float64)
	Print(writer io.Writer) error
}

type stream struct {
	name    StreamName
	flow    float64
	flowSet bool
}

func (s *stream) Name() StreamName {
	return s.name
}

func (s *stream) SetName(name StreamName) {
	s.name = name
}

// MassFlow returns ErrMassFlowNotSet until the first SetMassFlow call.
func (s *stream) MassFlow() (float64, error) {
	if !s.flowSet {
		return 0, ErrMassFlowNotSet
	}

	return s.flow, nil
}

// SetMassFlow accepts any value. Negative flow means flow in the
// opposite direction.
func (s *stream) SetMassFlow(flow float64) {
	s.flow = flow
	s.flowSet = true
}

// Print writes a single human-readable line describing the stream.
func (s *stream) Print(writer io.Writer) error {
	flow, err := s.MassFlow()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(writer, "Stream %s flow = %g\n", s.name, flow)
	return err
}

func NewStream(name StreamName) Stream {
	return &stream{
		name: name,
	}
}
