package flowsheet

type DeviceName string

type baseDevice interface {
	Name() DeviceName
	Inputs() []Stream
	Outputs() []Stream
}

type attachable interface {
	AddInput(stream Stream) error
	AddOutput(stream Stream) error
}

// Device owns bounded input and output ports and recomputes its output
// streams from its input streams on demand. Each concrete device defines
// its own recomputation policy.
type Device interface {
	baseDevice
	attachable
	UpdateOutputs() error
}
