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

package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/AnnVusatyuk/lab-device/pkg/flowsheet"
	"github.com/AnnVusatyuk/lab-device/pkg/model"
)

var (
	au            = aurora.NewAurora(true)
	inflow1       = flag.Float64("inflow1", 10.0, "Mass flow of the first input stream")
	inflow2       = flag.Float64("inflow2", 5.0, "Mass flow of the second input stream")
	inputCapacity = flag.Int("inputs", 2, "Number of input streams the mixer accepts")
	showLog       = flag.Bool("showLog", false, "Show the wiring log after the stream report")
)

func main() {
	flag.Parse()
	r := NewRunner()

	fmt.Print("Running flowsheet ... ")

	err := r.Mix()
	if err != nil {
		fmt.Printf("there was an error running the flowsheet: %s\n", err.Error())
		os.Exit(1)
	}

	err = r.Report(os.Stdout)
	if err != nil {
		fmt.Printf("there was an error reporting results: %s\n", err.Error())
		os.Exit(1)
	}
}

type Runner interface {
	Mix() error
	Report(writer io.Writer) error
}

type runner struct {
	streams []flowsheet.Stream
	mix     model.Mixer
	logbuf  *bytes.Buffer
	logger  *zap.SugaredLogger
}

func (r *runner) Mix() error {
	namer := flowsheet.NewSequenceNamer("s")

	in1 := flowsheet.NewStream(namer.Next())
	in2 := flowsheet.NewStream(namer.Next())
	out := flowsheet.NewStream(namer.Next())

	in1.SetMassFlow(*inflow1)
	in2.SetMassFlow(*inflow2)

	mix, err := model.NewMixer("DemoMixer", *inputCapacity)
	if err != nil {
		return err
	}

	for _, input := range []flowsheet.Stream{in1, in2} {
		err = mix.AddInput(input)
		if err != nil {
			return err
		}
		r.logger.Infof("attached input stream %s", input.Name())
	}

	err = mix.AddOutput(out)
	if err != nil {
		return err
	}
	r.logger.Infof("attached output stream %s", out.Name())

	err = mix.UpdateOutputs()
	if err != nil {
		return err
	}
	r.logger.Infof("recomputed outputs of %s", mix.Name())

	r.mix = mix
	r.streams = []flowsheet.Stream{in1, in2, out}

	return nil
}

func (r *runner) Report(writer io.Writer) error {
	printer := message.NewPrinter(language.AmericanEnglish)

	fmt.Fprintf(writer,
		"%5s      %14s %-14s  %14s %-8d ⟶   %14s %-8d\n\n",
		au.Bold("Done."),
		au.Cyan("Mixer:"),
		r.mix.Name(),
		au.BgGreen("Inputs"),
		au.Bold(len(r.mix.Inputs())),
		au.BgGreen("Outputs"),
		au.Bold(len(r.mix.Outputs())),
	)

	fmt.Fprintln(writer, au.BgGreen(fmt.Sprintf("%-40s", "Streams")).Bold())
	for _, s := range r.streams {
		err := s.Print(writer)
		if err != nil {
			return err
		}
	}

	total := 0.0
	for _, input := range r.mix.Inputs() {
		flow, err := input.MassFlow()
		if err != nil {
			return err
		}
		total += flow
	}

	fmt.Fprint(writer, "\n")
	fmt.Fprintln(writer, printer.Sprintf("%14s %g", au.Cyan("Total inflow:"), total))

	if *showLog {
		fmt.Fprint(writer, "\n")
		fmt.Fprintln(writer, au.Bold(fmt.Sprintf("%-40s", "          Wiring log")).BgBlue())
		fmt.Fprintln(writer, r.logbuf.String())
	}

	return nil
}

func NewRunner() Runner {
	buf := new(bytes.Buffer)
	logger := newLogger(buf)

	return &runner{
		logbuf: buf,
		logger: logger,
	}
}

func newLogger(buf io.Writer) *zap.SugaredLogger {
	sink := zapcore.AddSync(buf)

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		sink,
		zap.InfoLevel,
	)

	unsugaredLogger := zap.New(core)

	return unsugaredLogger.Named("flowsheet").Sugar()
}
