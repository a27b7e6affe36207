// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rope

import "math"

// StrainFromStress solves for the total strain of a node given its stress
//  All material functions are evaluated at the given stress, so the residual
//  F(ε) = ε - (A·σ - B + εvp) is linear in the unknown strain.
type StrainFromStress struct{}

// add direction to factory
func init() {
	allocators["strain"] = func() Direction { return new(StrainFromStress) }
}

// UnknownIsStress returns false
func (o *StrainFromStress) UnknownIsStress() bool { return false }

// NegativeInput returns NegativeStress
func (o *StrainFromStress) NegativeInput() ErrorCode { return NegativeStress }

// target computes the strain predicted at stress σ and the resulting plastic state
func (o *StrainFromStress) target(mdl *Model, n *node, dt, σ float64, plastic bool) (ε, εvp, te float64, c Coefs, err error) {
	cur := &n.cur
	if err = mdl.EvaluateAt(σ, dt, &c); err != nil {
		return
	}
	s := mdl.Sums(cur.Q, &c, dt)
	A, B, _, _ := mdl.viscoelastic(&c, s, cur)
	εvp, te = cur.EpsVp, cur.Te
	if plastic {
		te = cur.Te + dt
		εvp, _ = mdl.plasticStrain(&c, σ, te, dt, cur.Te == 0, cur.EpsVp)
	}
	ε = A*σ - B + εvp
	return
}

// Residual returns F(ε) = ε - (A·σ - B + εvp) and its derivative
func (o *StrainFromStress) Residual(mdl *Model, n *node, dt, σ float64, plastic bool) (ResidualFunc, error) {
	ε, _, _, _, err := o.target(mdl, n, dt, σ, plastic)
	if err != nil {
		return nil, err
	}
	return func(x float64) (F, dF float64, err error) {
		return x - ε, 1, nil
	}, nil
}

// Step solves one step. first disables viscoplastic flow
func (o *StrainFromStress) Step(mdl *Model, n *node, dt, σ float64, first bool) (ε float64, err error) {

	// auxiliary
	cur := &n.cur
	n.next = State{SigY: cur.SigY, EpsVp: cur.EpsVp, Te: cur.Te}
	n.plastic = !first && σ-cur.SigY > mdl.Tol
	n.nit = 0

	// strain: explicit update
	ε, εvp, te, c, err := o.target(mdl, n, dt, σ, n.plastic)
	if err != nil {
		return
	}
	if math.IsNaN(ε) {
		if n.plastic {
			return ε, NanViscoElasticPlastic
		}
		return ε, NanViscoElastic
	}
	if math.Abs(ε-cur.Eps) >= mdl.Tol {
		n.nit = 1
	}

	// results
	n.next.Sig = σ
	n.next.Eps = ε
	n.next.EpsVp = εvp
	n.next.Te = te
	n.next.G2 = c.G2
	n.dPsi = c.DPsi
	return
}

// Ratchet raises the yield stress on unloading after viscoplastic flow and resets the effective time
func (o *StrainFromStress) Ratchet(mdl *Model, cur, next *State, dt float64) {
	if cur.Sig-next.Sig > mdl.Tol && next.Te != 0 {
		if cur.Sig > next.SigY {
			next.SigY = cur.Sig
		}
		next.Te = 0
	}
}
