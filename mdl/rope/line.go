// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rope

import (
	"fmt"
	"math"
	"runtime"

	"github.com/cpmech/gosl/chk"
	"golang.org/x/sync/errgroup"
)

// Line holds the nodes of one rope sharing a material model
//  Steps of different nodes are independent. Steps of one node must be followed
//  by Advance before the next time step is solved.
type Line struct {
	Mdl   *Model    // material model; read-only
	Dir   Direction // input/unknown direction
	nodes []node    // nodes
}

// NewLine returns a new line with nnodes nodes at rest
func NewLine(mdl *Model, direction string, nnodes int) (o *Line, err error) {
	if mdl == nil {
		return nil, chk.Err("rope: material model is required")
	}
	if err = mdl.Validate(); err != nil {
		return
	}
	if nnodes < 1 {
		return nil, chk.Err("rope: number of nodes must be positive. nnodes = %d is incorrect", nnodes)
	}
	dir, err := NewDirection(direction)
	if err != nil {
		return
	}
	o = &Line{Mdl: mdl, Dir: dir, nodes: make([]node, nnodes)}
	for i := range o.nodes {
		o.nodes[i].cur = *NewState(mdl)
	}
	return
}

// NumNodes returns the number of nodes
func (o *Line) NumNodes() int { return len(o.nodes) }

// InitStep solves the first step of node i using the viscoelastic law only
func (o *Line) InitStep(i int, dt, input float64) (float64, error) {
	return o.step(i, dt, input, true)
}

// Step solves one time step of node i. The result is committed by Advance
func (o *Line) Step(i int, dt, input float64) (float64, error) {
	return o.step(i, dt, input, false)
}

// step checks the input and runs the direction
func (o *Line) step(i int, dt, input float64, first bool) (out float64, err error) {
	n, err := o.node(i)
	if err != nil {
		return
	}
	if !(dt > 0) {
		return 0, BadDt
	}
	if input < 0 {
		return 0, o.Dir.NegativeInput()
	}
	out, err = o.Dir.Step(o.Mdl, n, dt, input, first)
	if err != nil {
		n.pending = false
		return
	}
	n.pending = true
	n.input = input
	n.dt = dt
	return
}

// StepAll solves one time step of all nodes concurrently. No node is committed
func (o *Line) StepAll(dt float64, inputs []float64) (outs []float64, err error) {
	if len(inputs) != len(o.nodes) {
		return nil, chk.Err("rope: number of inputs must equal the number of nodes. %d != %d", len(inputs), len(o.nodes))
	}
	outs = make([]float64, len(inputs))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range inputs {
		i := i
		g.Go(func() error {
			v, e := o.Step(i, dt, inputs[i])
			if e != nil {
				return fmt.Errorf("node %d: %w", i, e)
			}
			outs[i] = v
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return
}

// Advance commits the pending step of every node: hereditary memory, stress history,
// yield stress ratchet and effective time reset. Nodes without a pending step are unchanged
func (o *Line) Advance(dt float64) {
	for i := range o.nodes {
		n := &o.nodes[i]
		if !n.pending {
			continue
		}
		cur, next := &n.cur, &n.next
		o.Mdl.Commit(cur.Q, n.dPsi, next.G2, next.Sig, cur.G2, cur.Sig)
		o.Dir.Ratchet(o.Mdl, cur, next, dt)
		cur.SigPrev2 = cur.SigPrev
		cur.SigPrev = cur.Sig
		cur.Sig = next.Sig
		cur.Eps = next.Eps
		cur.EpsVp = next.EpsVp
		cur.G2 = next.G2
		cur.SigY = next.SigY
		cur.Te = next.Te
		n.pending = false
	}
}

// node returns node i
func (o *Line) node(i int) (*node, error) {
	if i < 0 || i >= len(o.nodes) {
		return nil, chk.Err("rope: node index %d is out of range [0, %d)", i, len(o.nodes))
	}
	return &o.nodes[i], nil
}

// get returns a committed quantity of node i, or NaN if i is out of range
func (o *Line) get(i int, f func(s *State) float64) float64 {
	n, err := o.node(i)
	if err != nil {
		return math.NaN()
	}
	return f(&n.cur)
}

// Yield returns the yield stress of node i
func (o *Line) Yield(i int) float64 { return o.get(i, func(s *State) float64 { return s.SigY }) }

// Stress returns the stress of node i
func (o *Line) Stress(i int) float64 { return o.get(i, func(s *State) float64 { return s.Sig }) }

// StressPrev returns the stress of node i one step back
func (o *Line) StressPrev(i int) float64 { return o.get(i, func(s *State) float64 { return s.SigPrev }) }

// Strain returns the total strain of node i
func (o *Line) Strain(i int) float64 { return o.get(i, func(s *State) float64 { return s.Eps }) }

// PlasticStrain returns the viscoplastic strain of node i
func (o *Line) PlasticStrain(i int) float64 { return o.get(i, func(s *State) float64 { return s.EpsVp }) }

// ElasticStrain returns the viscoelastic strain of node i
func (o *Line) ElasticStrain(i int) float64 {
	return o.get(i, func(s *State) float64 { return s.Eps - s.EpsVp })
}

// EffTime returns the effective time of node i
func (o *Line) EffTime(i int) float64 { return o.get(i, func(s *State) float64 { return s.Te }) }

// Stiffness returns the axial stiffness of node i at its committed stress
func (o *Line) Stiffness(i int) float64 {
	return o.get(i, func(s *State) float64 {
		k, err := o.Mdl.Stiffness(s.Sig)
		if err != nil {
			return math.NaN()
		}
		return k
	})
}

// State returns a copy of the committed state of node i
func (o *Line) State(i int) (*State, error) {
	n, err := o.node(i)
	if err != nil {
		return nil, err
	}
	return n.cur.GetCopy(), nil
}

// Iterations returns the number of Newton-Raphson corrections of the last step of node i
func (o *Line) Iterations(i int) int {
	n, err := o.node(i)
	if err != nil {
		return -1
	}
	return n.nit
}

// Plastic tells whether the last step of node i used the combined solve
func (o *Line) Plastic(i int) bool {
	n, err := o.node(i)
	if err != nil {
		return false
	}
	return n.plastic
}

// Tangent returns the analytical and numerical derivatives of the residual at the pending step of node i
func (o *Line) Tangent(i int, h float64) (ana, num float64, err error) {
	n, err := o.node(i)
	if err != nil {
		return
	}
	if !n.pending {
		return 0, 0, chk.Err("rope: node %d has no pending step", i)
	}
	fcn, err := o.Dir.Residual(o.Mdl, n, n.dt, n.input, n.plastic)
	if err != nil {
		return
	}
	x := n.next.Eps
	if o.Dir.UnknownIsStress() {
		x = n.next.Sig
	}
	if _, ana, err = fcn(x); err != nil {
		return
	}
	num = deriv5(func(x float64) float64 {
		F, _, _ := fcn(x)
		return F
	}, x, h)
	return
}
