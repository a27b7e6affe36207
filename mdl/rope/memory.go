// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rope

import "math"

// MemSums holds the Prony sums of one step
//  S1 = Σ Dn·exp(-λ·dPsi)·q
//  S2 = Σ Dn·(1-exp(-λ·dPsi))/(λ·dPsi)
//  S3 = ∂S1/∂σ
//  S4 = ∂S2/∂σ
type MemSums struct {
	S1, S2, S3, S4 float64
}

// relax returns (1-exp(-x))/x, which tends to 1 as x → 0
func relax(x float64) float64 {
	if math.Abs(x) < 1e-10 {
		return 1 - x/2
	}
	return -math.Expm1(-x) / x
}

// Sums computes the Prony sums for the accumulators q of a node
func (o *Model) Sums(q []float64, c *Coefs, dt float64) (s MemSums) {
	for i, dn := range o.Dn {
		λ := o.Lambda[i]
		x := λ * c.DPsi
		e := math.Exp(-x)
		s.S1 += dn * e * q[i]
		s.S2 += dn * relax(x)
		s.S3 += dn * (-λ * c.D2Psi * e) * q[i]
		s.S4 += dn * (c.D2Psi*e/c.DPsi - math.Expm1(-x)/λ/dt*c.DA0)
	}
	return
}

// Commit updates the accumulators q with the converged stress σ of a step
//  q ← exp(-λ·dPsi)·q + (1-exp(-λ·dPsi))/(λ·dPsi)·(g2·σ - g2Prev·σPrev)
func (o *Model) Commit(q []float64, dPsi, g2, σ, g2Prev, σPrev float64) {
	Δ := g2*σ - g2Prev*σPrev
	for i := range q {
		x := o.Lambda[i] * dPsi
		q[i] = math.Exp(-x)*q[i] + relax(x)*Δ
	}
}
