// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rope

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/io"
)

// Poly is a material function of stress given by one polynomial or by polynomial segments
//  Single:    f(σ) = Σ c[i]·σ^i
//  Segmented: segment 0 holds σ ≤ Breaks[0] and uses C[0:Starts[0]];
//             segment k holds Breaks[k-1] < σ ≤ Breaks[k] and uses C[Starts[k-1]:Starts[k]];
//             the last segment holds σ > Breaks[n-1] and uses C[Starts[n-1]:].
//  The exponent restarts at 0 in each segment.
type Poly struct {
	C      []float64 // coefficients
	Breaks []float64 // stress breakpoints; empty for a single polynomial
	Starts []int     // index in C of the first coefficient after each breakpoint
}

// NewSingle returns a single polynomial
func NewSingle(c []float64) (o *Poly, err error) {
	if len(c) == 0 {
		return nil, NonLogicalCoefficients
	}
	return &Poly{C: append([]float64{}, c...)}, nil
}

// NewSegmented returns a polynomial with segments activated by stress breakpoints
func NewSegmented(c, breaks []float64, starts []int) (o *Poly, err error) {
	if len(breaks) == 0 {
		return NewSingle(c)
	}
	if len(c) == 0 || len(breaks) != len(starts) {
		return nil, NonLogicalCoefficients
	}
	for k, b := range breaks {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return nil, NonLogicalCoefficients
		}
		if starts[k] <= 0 || starts[k] >= len(c) {
			return nil, NonLogicalCoefficients
		}
		if k > 0 && (b <= breaks[k-1] || starts[k] <= starts[k-1]) {
			return nil, NonLogicalCoefficients
		}
	}
	o = &Poly{
		C:      append([]float64{}, c...),
		Breaks: append([]float64{}, breaks...),
		Starts: append([]int{}, starts...),
	}
	return
}

// Segmented tells whether the function has breakpoints
func (o *Poly) Segmented() bool { return len(o.Breaks) > 0 }

// segment returns the coefficient range active at σ
func (o *Poly) segment(σ float64) (lo, hi int, err error) {
	if math.IsNaN(σ) {
		return 0, 0, NonLogicalCoefficients
	}
	if !o.Segmented() {
		return 0, len(o.C), nil
	}
	n := len(o.Breaks)
	for k := 0; k < n; k++ {
		if k == 0 && σ <= o.Breaks[0] {
			return 0, o.Starts[0], nil
		}
		if k == n-1 && σ > o.Breaks[k] {
			return o.Starts[k], len(o.C), nil
		}
		if k < n-1 && σ > o.Breaks[k] && σ <= o.Breaks[k+1] {
			return o.Starts[k], o.Starts[k+1], nil
		}
	}
	return 0, 0, NonLogicalCoefficients
}

// Eval computes f(σ) and its first and second derivatives
func (o *Poly) Eval(σ float64) (f, df, d2f float64, err error) {
	lo, hi, err := o.segment(σ)
	if err != nil {
		return
	}
	for i := hi - 1; i >= lo; i-- {
		d2f = d2f*σ + df
		df = df*σ + f
		f = f*σ + o.C[i]
	}
	d2f *= 2
	return
}

// String returns the function in the L(x) token notation
func (o *Poly) String() string {
	k := 0
	tokens := make([]string, 0, len(o.C)+len(o.Breaks))
	for i, c := range o.C {
		if k < len(o.Starts) && o.Starts[k] == i {
			tokens = append(tokens, io.Sf("L(%g)", o.Breaks[k]))
			k++
		}
		tokens = append(tokens, io.Sf("%g", c))
	}
	return strings.Join(tokens, " ")
}
