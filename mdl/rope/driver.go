// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rope

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Result holds the state of a node after one committed step
type Result struct {
	Time          float64 // simulation time
	Input         float64 // given stress or strain
	Stress        float64 // stress
	Strain        float64 // total strain
	ElasticStrain float64 // viscoelastic strain
	PlasticStrain float64 // viscoplastic strain
	Yield         float64 // yield stress
	Te            float64 // effective time
	Nit           int     // number of Newton-Raphson corrections
	Plastic       bool    // combined solve was used
}

// Driver runs a rope line through a series of inputs
type Driver struct {

	// input
	Line *Line   // line; results are taken from node 0
	Dt   float64 // time step

	// settings
	Silent bool    // do not show error messages
	TolD   float64 // tolerance to check the residual derivative
	StepD  float64 // step size for the numerical derivative
	VerD   bool    // verbose check of the residual derivative

	// check residual derivative
	TstD *testing.T // if != nil, do check consistent tangent

	// results
	Res []*Result // results

	// series
	inputs []float64
	pos    int
}

// Init initialises driver with a one-node line
func (o *Driver) Init(mdl *Model, direction string, dt float64) (err error) {
	return o.InitNodes(mdl, direction, dt, 1)
}

// InitNodes initialises driver with nnodes nodes loaded by the same series.
// All nodes are stepped concurrently and the results of node 0 are recorded
func (o *Driver) InitNodes(mdl *Model, direction string, dt float64, nnodes int) (err error) {
	if !(dt > 0) {
		return BadDt
	}
	o.Line, err = NewLine(mdl, direction, nnodes)
	if err != nil {
		return
	}
	o.Dt = dt
	o.TolD = 1e-6
	o.StepD = 1e-5
	o.VerD = chk.Verbose
	o.Res = nil
	o.inputs = nil
	o.pos = 0
	return
}

// Load sets the input series and rewinds the driver
func (o *Driver) Load(inputs []float64) {
	o.inputs = inputs
	o.pos = 0
	o.Res = make([]*Result, 0, len(inputs))
}

// Next runs the next step of the series. Complete is returned when the series is exhausted
func (o *Driver) Next() (res *Result, err error) {
	if o.pos >= len(o.inputs) {
		return nil, Complete
	}
	input := o.inputs[o.pos]
	if o.Line.NumNodes() > 1 {
		inputs := make([]float64, o.Line.NumNodes())
		for i := range inputs {
			inputs[i] = input
		}
		_, err = o.Line.StepAll(o.Dt, inputs)
	} else {
		_, err = o.Line.Step(0, o.Dt, input)
	}
	if err != nil {
		if !o.Silent {
			io.Pfred("step %d failed with input = %g: %v\n", o.pos, input, err)
		}
		return
	}
	if o.TstD != nil {
		ana, num, e := o.Line.Tangent(0, o.StepD)
		if e != nil {
			return nil, e
		}
		chk.AnaNum(o.TstD, io.Sf("dF @ step %d", o.pos), o.TolD, ana, num, o.VerD)
	}
	nit, plastic := o.Line.Iterations(0), o.Line.Plastic(0)
	o.Line.Advance(o.Dt)
	o.pos++
	res = &Result{
		Time:          float64(o.pos) * o.Dt,
		Input:         input,
		Stress:        o.Line.Stress(0),
		Strain:        o.Line.Strain(0),
		ElasticStrain: o.Line.ElasticStrain(0),
		PlasticStrain: o.Line.PlasticStrain(0),
		Yield:         o.Line.Yield(0),
		Te:            o.Line.EffTime(0),
		Nit:           nit,
		Plastic:       plastic,
	}
	o.Res = append(o.Res, res)
	return
}

// Run runs all steps of inputs
func (o *Driver) Run(inputs []float64) (err error) {
	o.Load(inputs)
	for {
		_, err = o.Next()
		if err == Complete {
			return nil
		}
		if err != nil {
			return
		}
	}
}
