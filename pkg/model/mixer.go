/*
 * Copyright (C) 2019-Present Pivotal Software, Inc. All rights reserved.
 *
 * This program and the accompanying materials are made available under the terms
 * of the Apache License, Version 2.0 (the "License”); you may not use this file
 * except in compliance with the License. You may obtain a copy of the License at:
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software distributed
 * under the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR
 * CONDITIONS OF ANY KIND, either express or implied. See the License for the
 * specific language governing permissions and limitations under the License.
 */

package model

import (
	"fmt"

	"github.com/AnnVusatyuk/lab-device/pkg/flowsheet"
)

// MixerOutputs is the number of output streams every Mixer carries.
const MixerOutputs = 1

// Mixer combines the mass flows of up to InputCapacity input streams and
// distributes the total evenly across its output streams.
type Mixer interface {
	flowsheet.Device
	InputCapacity() int
}

type mixer struct {
	name    flowsheet.DeviceName
	inlets  flowsheet.Port
	outlets flowsheet.Port
}

func (m *mixer) Name() flowsheet.DeviceName {
	return m.name
}

func (m *mixer) Inputs() []flowsheet.Stream {
	return m.inlets.Streams()
}

func (m *mixer) Outputs() []flowsheet.Stream {
	return m.outlets.Streams()
}

func (m *mixer) InputCapacity() int {
	return m.inlets.Capacity()
}

func (m *mixer) AddInput(stream flowsheet.Stream) error {
	return m.inlets.Attach(stream)
}

func (m *mixer) AddOutput(stream flowsheet.Stream) error {
	return m.outlets.Attach(stream)
}

// UpdateOutputs fully recomputes the output flows from the current input
// flows. Nothing is cached between calls. On any error no output stream
// has been modified.
func (m *mixer) UpdateOutputs() error {
	outputs := m.outlets.Streams()
	if len(outputs) == 0 {
		return &flowsheet.NotConfiguredError{
			Device: m.name,
			Port:   flowsheet.Outlet,
		}
	}

	total := 0.0
	for _, input := range m.inlets.Streams() {
		flow, err := input.MassFlow()
		if err != nil {
			return fmt.Errorf("could not read input stream '%s': %w", input.Name(), err)
		}

		total += flow
	}

	share := total / float64(len(outputs))
	for _, output := range outputs {
		output.SetMassFlow(share)
	}

	return nil
}

func NewMixer(name flowsheet.DeviceName, inputCapacity int) (Mixer, error) {
	if inputCapacity < 1 {
		return nil, fmt.Errorf("mixer '%s' needs a positive input capacity, was given %d", name, inputCapacity)
	}

	return &mixer{
		name:    name,
		inlets:  flowsheet.NewPort(flowsheet.Inlet, inputCapacity),
		outlets: flowsheet.NewPort(flowsheet.Outlet, MixerOutputs),
	}, nil
}
