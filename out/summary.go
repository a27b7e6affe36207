// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// Summary holds a few statistics of a run
type Summary struct {
	Nsteps     int     // number of committed steps
	Nplastic   int     // number of steps solved with the combined solve
	Nit        int     // total number of Newton-Raphson corrections
	MaxStress  float64 // peak stress
	MaxStrain  float64 // peak total strain
	FinalYield float64 // yield stress after the last step
	FinalEpsVp float64 // viscoplastic strain after the last step
	Duration   float64 // simulated time
}

// GetSummary computes the summary of results
func (o *Results) GetSummary() (sum Summary) {
	sum.Nsteps = len(o.Res)
	if sum.Nsteps == 0 {
		return
	}
	sig, _ := o.Get("sig")
	eps, _ := o.Get("eps")
	sum.MaxStress = floats.Max(sig)
	sum.MaxStrain = floats.Max(eps)
	for _, r := range o.Res {
		sum.Nit += r.Nit
		if r.Plastic {
			sum.Nplastic++
		}
	}
	last := o.Res[len(o.Res)-1]
	sum.FinalYield = last.Yield
	sum.FinalEpsVp = last.PlasticStrain
	sum.Duration = last.Time
	return
}

// String returns a formatted summary
func (o Summary) String() string {
	l := io.Sf("steps             = %d\n", o.Nsteps)
	l += io.Sf("viscoplastic      = %d\n", o.Nplastic)
	l += io.Sf("iterations        = %d\n", o.Nit)
	l += io.Sf("duration          = %g\n", o.Duration)
	l += io.Sf("max stress        = %g\n", o.MaxStress)
	l += io.Sf("max strain        = %g\n", o.MaxStrain)
	l += io.Sf("final yield       = %g\n", o.FinalYield)
	l += io.Sf("final plastic eps = %g\n", o.FinalEpsVp)
	return l
}
