// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rope

import "math"

// StressFromStrain solves for the stress of a node given its total strain
//  The viscoelastic solve runs first; the combined viscoelastic-viscoplastic solve
//  follows when the trial stress exceeds the yield stress (or the first solve was
//  exhausted) while the strain is increasing.
type StressFromStrain struct{}

// add direction to factory
func init() {
	allocators["stress"] = func() Direction { return new(StressFromStrain) }
}

// UnknownIsStress returns true
func (o *StressFromStrain) UnknownIsStress() bool { return true }

// NegativeInput returns NegativeStrain
func (o *StressFromStrain) NegativeInput() ErrorCode { return NegativeStrain }

// Residual returns F(σ) = ε - A·σ + B - εvp and its derivative
func (o *StressFromStrain) Residual(mdl *Model, n *node, dt, ε float64, plastic bool) (ResidualFunc, error) {
	cur := &n.cur
	te := cur.Te + dt
	onset := cur.Te == 0
	var c Coefs
	return func(σ float64) (F, dF float64, err error) {
		if err = mdl.EvaluateAt(σ, dt, &c); err != nil {
			return
		}
		s := mdl.Sums(cur.Q, &c, dt)
		A, B, dA, dB := mdl.viscoelastic(&c, s, cur)
		εvp, dC := cur.EpsVp, 0.0
		if plastic {
			εvp, dC = mdl.plasticStrain(&c, σ, te, dt, onset, cur.EpsVp)
		}
		F = ε - A*σ + B - εvp
		dF = -A - dA*σ + dB - dC
		return
	}, nil
}

// guess returns the initial trial stress: constant if the stress was steady, otherwise extrapolated
func (o *StressFromStrain) guess(mdl *Model, cur *State) float64 {
	if math.Abs(cur.Sig-cur.SigPrev) < mdl.Tol {
		return cur.Sig
	}
	return 2*cur.Sig - cur.SigPrev
}

// Step solves one step. first runs the viscoelastic solve only
func (o *StressFromStrain) Step(mdl *Model, n *node, dt, ε float64, first bool) (σ float64, err error) {

	// auxiliary
	cur := &n.cur
	guessNext := n.next.Sig
	warm := n.pending
	n.next = State{SigY: cur.SigY, EpsVp: cur.EpsVp, Te: cur.Te}
	n.plastic = false
	n.nit = 0
	Δε := ε - cur.Eps

	// solve
	switch {

	// slack rope
	case ε <= mdl.Tol:
		σ = 0

	// unchanged strain in the viscoelastic regime
	case !first && cur.Te == 0 && math.Abs(Δε) <= mdl.Tol:
		σ = cur.Sig

	default:
		σ = o.guess(mdl, cur)
		if first && warm {
			σ = guessNext
		}
		converged := false
		nit := 0

		// viscoelastic solve; skipped while loading in the viscoplastic regime
		if first || cur.Te == 0 || Δε < mdl.Tol {
			ve := newton{Tol: mdl.Tol, Limit: mdl.Limit, IsStress: true, CountPert: true, NanErr: NanViscoElastic}
			fcn, _ := o.Residual(mdl, n, dt, ε, false)
			σ, nit, converged, err = ve.Solve(fcn, σ)
			n.nit = nit
			if err != nil {
				return
			}
		}
		if first {
			if !converged {
				return σ, NoConvergedSolution
			}
			break
		}

		// combined solve
		if (σ-cur.SigY > 1e-6 || !converged) && Δε >= mdl.Tol {
			vp := newton{Tol: mdl.Tol, Limit: mdl.Limit, IsStress: true, CountPert: false, NanErr: NanViscoElasticPlastic}
			fcn, _ := o.Residual(mdl, n, dt, ε, true)
			σ, nit, converged, err = vp.Solve(fcn, o.guess(mdl, cur))
			n.nit += nit
			if err != nil {
				return
			}
			if !converged {
				return σ, NoConvergedSolutionViscoplastic
			}
			var c Coefs
			if err = mdl.EvaluateAt(σ, dt, &c); err != nil {
				return
			}
			n.next.Te = cur.Te + dt
			n.next.EpsVp, _ = mdl.plasticStrain(&c, σ, n.next.Te, dt, cur.Te == 0, cur.EpsVp)
			n.plastic = true
			break
		}
		if !converged {
			return σ, NoConvergedSolution
		}
	}

	// results
	var c Coefs
	if err = mdl.EvaluateAt(σ, dt, &c); err != nil {
		return
	}
	n.next.Sig = σ
	n.next.Eps = ε
	n.next.G2 = c.G2
	n.dPsi = c.DPsi
	return
}

// Ratchet raises the yield stress on unloading after viscoplastic flow and resets the effective time
func (o *StressFromStrain) Ratchet(mdl *Model, cur, next *State, dt float64) {
	if cur.Sig-next.Sig > mdl.Tol && next.Te > dt {
		if cur.Sig > next.SigY {
			next.SigY = cur.Sig
		}
		next.Te = 0
		return
	}
	if next.SigY-next.Sig > mdl.Tol && next.Te == dt {
		next.Te = 0
	}
}
