// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rope

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Direction defines which of stress or strain is the input of a step
type Direction interface {
	UnknownIsStress() bool                                                               // the solve is for stress
	NegativeInput() ErrorCode                                                            // error for compressive input
	Residual(mdl *Model, n *node, dt, input float64, plastic bool) (ResidualFunc, error) // residual at the pending step
	Step(mdl *Model, n *node, dt, input float64, first bool) (float64, error)            // solves one step into n.next
	Ratchet(mdl *Model, cur, next *State, dt float64)                                    // yield stress and effective time update
}

// NewDirection returns a new step direction: "stress" solves stress from strain and "strain" solves strain from stress
func NewDirection(name string) (dir Direction, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("direction %q is not available in 'rope' database", name)
	}
	return allocator(), nil
}

// allocators holds all available directions
var allocators = map[string]func() Direction{}

// viscoelastic computes the terms of ε = A·σ - B + εvp and their derivatives
//  A = g0·Do + g1·g2·ΣDn - g1·g2·S2
//  B = g1·S1 - g1·g2Prev·σPrev·S2
func (o *Model) viscoelastic(c *Coefs, s MemSums, cur *State) (A, B, dA, dB float64) {
	gσ := cur.G2 * cur.Sig
	A = c.G0*o.Do + c.G1*c.G2*o.SumDn - c.G1*c.G2*s.S2
	B = c.G1*s.S1 - c.G1*gσ*s.S2
	dA = o.Do*c.DG0 + (c.DG1*c.G2+c.G1*c.DG2)*o.SumDn - (c.DG1*c.G2*s.S2 + c.G1*c.DG2*s.S2 + c.G1*c.G2*s.S4)
	dB = c.G1*(s.S3-gσ*s.S4) + c.DG1*(s.S1-gσ*s.S2)
	return
}

// plasticStrain computes the viscoplastic strain at stress σ and effective time te, and its derivative
//  onset:  εvp = σ/Ep + (σ-σy0)/np·exp(-H/np·te)·dt
//  later:  εvp = εvpPrev + (σ-σy0)/np·exp(-H/np·te)·dt
func (o *Model) plasticStrain(c *Coefs, σ, te, dt float64, onset bool, εvpPrev float64) (εvp, dεvp float64) {
	e3 := math.Exp(-c.H / c.Np * te)
	de3 := -te * (c.DH/c.Np + c.H*c.Dnpm1) * e3
	εvp = (σ - o.SigY0) / c.Np * e3 * dt
	dεvp = dt*(e3/c.Np+σ*c.Dnpm1*e3+σ/c.Np*de3) - dt*o.SigY0*(c.Dnpm1*e3+de3/c.Np)
	if onset {
		εvp += σ / c.Ep
		dεvp += 1/c.Ep + σ*c.DEpm1
		return
	}
	εvp += εvpPrev
	return
}

// deriv5 computes df/dx with a 5-point central difference
func deriv5(f func(x float64) float64, x, h float64) float64 {
	return (-f(x+2*h) + 8*f(x+h) - 8*f(x-h) + f(x-2*h)) / (12 * h)
}
