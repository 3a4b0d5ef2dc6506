package flowsheet

import "fmt"

// StreamNamer hands out stream names. Each scenario owns its own namer, so
// sequences never interfere across scenarios. Uniqueness is not enforced;
// two namers with the same prefix will produce colliding names.
type StreamNamer interface {
	Next() StreamName
}

type sequenceNamer struct {
	prefix  string
	counter int
}

func (sn *sequenceNamer) Next() StreamName {
	sn.counter++
	return StreamName(fmt.Sprintf("%s%d", sn.prefix, sn.counter))
}

func NewSequenceNamer(prefix string) StreamNamer {
	return &sequenceNamer{
		prefix: prefix,
	}
}
