// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rope

import "math"

// ResidualFunc computes the residual F and its derivative dF/dx at the trial unknown x
type ResidualFunc func(x float64) (F, dFdx float64, err error)

// newton holds the settings of one Newton-Raphson solve
type newton struct {
	Tol       float64   // tolerance on the correction
	Limit     int       // maximum number of iterations
	IsStress  bool      // unknown is a stress: negative trials are rejected and tiny values snap to 0
	CountPert bool      // a rejected negative trial counts as an iteration
	NanErr    ErrorCode // error returned when the trial becomes NaN
	Pert      float64   // perturbation applied after a rejected trial
}

// Solve runs Newton-Raphson from x0.
//  nit is the number of corrections larger than Tol. converged is false if the
//  iteration limit was exhausted.
func (o newton) Solve(fcn ResidualFunc, x0 float64) (x float64, nit int, converged bool, err error) {
	x = x0
	pert := o.Pert
	if pert == 0 {
		pert = 0.001
	}
	uncounted := 0
	for it := 0; it < o.Limit; {

		// residual
		F, dF, e := fcn(x)
		if e != nil {
			return x, nit, false, e
		}
		xnew := x - F/dF

		// snap to zero
		if o.IsStress && math.Abs(xnew) < o.Tol {
			if x != 0 {
				nit++
			}
			return 0, nit, true, nil
		}

		// reject negative stress
		if o.IsStress && xnew < 0 {
			x += pert
			if o.CountPert {
				it++
			} else {
				uncounted++
				if uncounted > o.Limit {
					return x, nit, false, nil
				}
			}
			continue
		}

		// NaN
		if math.IsNaN(x) || math.IsNaN(xnew) {
			return x, nit, false, o.NanErr
		}

		// update
		δ := math.Abs(xnew - x)
		x = xnew
		it++
		if δ < o.Tol || δ == 0 {
			return x, nit, true, nil
		}
		nit++
	}
	return x, nit, false, nil
}
