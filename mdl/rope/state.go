// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rope

// State holds the committed state of one rope node
type State struct {
	Sig      float64   // stress
	SigPrev  float64   // stress one step back
	SigPrev2 float64   // stress two steps back
	Eps      float64   // total strain
	EpsVp    float64   // viscoplastic strain
	G2       float64   // g2 at Sig
	SigY     float64   // yield stress (ratcheted)
	Te       float64   // effective time since yield was triggered; 0 means no viscoplastic flow
	Q        []float64 // hereditary accumulators; one per Prony term
}

// NewState returns a new state at rest
func NewState(mdl *Model) *State {
	return &State{
		G2:   1,
		SigY: mdl.SigY0,
		Q:    make([]float64, len(mdl.Dn)),
	}
}

// Set copies state
func (o *State) Set(other *State) {
	q := o.Q
	*o = *other
	if len(q) != len(other.Q) {
		q = make([]float64, len(other.Q))
	}
	copy(q, other.Q)
	o.Q = q
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := new(State)
	other.Set(o)
	return other
}

// node holds the committed state and the pending step of a node
type node struct {
	cur     State   // committed
	next    State   // result of the last successful step; Q unused
	dPsi    float64 // reduced time increment at next.Sig
	pending bool    // next holds an accepted step
	plastic bool    // the last step used the combined solve
	input   float64 // input of the last step
	dt      float64 // dt of the last step
	nit     int     // iterations of the last step
}
