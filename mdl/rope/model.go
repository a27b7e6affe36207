// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package rope implements the SYNCOM model for synthetic fibre ropes: a nonlinear
// viscoelastic law with Prony-series memory coupled to viscoplastic flow above a
// ratcheted yield stress. Each rope node is advanced independently in time.
package rope

import (
	"math"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"gonum.org/v1/gonum/floats"
)

// names of material functions
var FuncNames = []string{"a0", "g0", "g1", "g2", "Ep", "np", "H"}

// Model holds the material law shared by all nodes of a line
type Model struct {

	// parameters
	SigY0 float64 // initial yield stress
	MBL   float64 // minimum breaking load
	Do    float64 // instantaneous compliance
	Tol   float64 // tolerance for Newton-Raphson and for regime switches
	Limit int     // maximum number of Newton-Raphson iterations

	// Prony series
	Dn     []float64 // weights
	Lambda []float64 // decay rates λ_i = 10^-i
	SumDn  float64   // Σ Dn

	// material functions of stress
	A0  *Poly // time-shift factor
	G0  *Poly // nonlinear instantaneous compliance factor
	G1  *Poly // nonlinear transient compliance factor
	G2  *Poly // nonlinear stress factor inside the hereditary integral
	Ep  *Poly // plastic modulus
	Np  *Poly // viscoplastic rate exponent
	Hvp *Poly // viscoplastic hardening modulus
}

// Init initialises model with scalar parameters. Prony weights are given as Dn0, Dn1, ...
func (o *Model) Init(prms dbf.Params) (err error) {
	o.Tol = 1e-6
	o.Limit = 50
	dn := make(map[int]float64)
	for _, p := range prms {
		switch p.N {
		case "sigy0":
			o.SigY0 = p.V
		case "MBL":
			o.MBL = p.V
		case "Do":
			o.Do = p.V
		case "tol":
			o.Tol = p.V
		case "limit":
			o.Limit = int(p.V)
		default:
			if !strings.HasPrefix(p.N, "Dn") {
				return chk.Err("rope: parameter named %q is incorrect\n", p.N)
			}
			i, e := strconv.Atoi(p.N[2:])
			if e != nil || i < 0 {
				return chk.Err("rope: Prony weight %q must be named Dn0, Dn1, ...\n", p.N)
			}
			dn[i] = p.V
		}
	}
	weights := make([]float64, len(dn))
	for i := range weights {
		v, ok := dn[i]
		if !ok {
			return chk.Err("rope: Prony weight Dn%d is missing\n", i)
		}
		weights[i] = v
	}
	o.SetProny(weights)
	return o.check()
}

// SetProny sets the Prony weights and derives the decay rates and the sum of weights
func (o *Model) SetProny(dn []float64) {
	o.Dn = dn
	o.Lambda = make([]float64, len(dn))
	for i := range dn {
		o.Lambda[i] = math.Pow(10, -float64(i))
	}
	o.SumDn = floats.Sum(dn)
}

// SetFuncs sets the material functions; the keys are given by FuncNames
func (o *Model) SetFuncs(fcns map[string]*Poly) (err error) {
	for _, name := range FuncNames {
		f, ok := fcns[name]
		if !ok || f == nil {
			return chk.Err("rope: material function %q is missing\n", name)
		}
		switch name {
		case "a0":
			o.A0 = f
		case "g0":
			o.G0 = f
		case "g1":
			o.G1 = f
		case "g2":
			o.G2 = f
		case "Ep":
			o.Ep = f
		case "np":
			o.Np = f
		case "H":
			o.Hvp = f
		}
	}
	return
}

// Funcs returns the material functions keyed by name
func (o *Model) Funcs() map[string]*Poly {
	return map[string]*Poly{"a0": o.A0, "g0": o.G0, "g1": o.G1, "g2": o.G2, "Ep": o.Ep, "np": o.Np, "H": o.Hvp}
}

// check checks scalar parameters
func (o *Model) check() (err error) {
	if o.SigY0 < 0 {
		return chk.Err("rope: initial yield stress must be non-negative. sigy0 = %g is incorrect\n", o.SigY0)
	}
	if o.MBL <= 0 {
		return chk.Err("rope: breaking strength must be positive. MBL = %g is incorrect\n", o.MBL)
	}
	if o.Do <= 0 {
		return chk.Err("rope: instantaneous compliance must be positive. Do = %g is incorrect\n", o.Do)
	}
	if o.Tol < 0 {
		return chk.Err("rope: tolerance must be non-negative. tol = %g is incorrect\n", o.Tol)
	}
	if o.Limit <= 0 {
		return chk.Err("rope: iteration limit must be positive. limit = %d is incorrect\n", o.Limit)
	}
	for i, d := range o.Dn {
		if d < 0 || math.IsNaN(d) {
			return chk.Err("rope: Prony weights must be non-negative. Dn%d = %g is incorrect\n", i, d)
		}
	}
	return
}

// Validate checks parameters and material functions
func (o *Model) Validate() (err error) {
	if err = o.check(); err != nil {
		return
	}
	if len(o.Lambda) != len(o.Dn) {
		return chk.Err("rope: Prony rates and weights have different lengths: %d != %d\n", len(o.Lambda), len(o.Dn))
	}
	for name, f := range o.Funcs() {
		if f == nil {
			return chk.Err("rope: material function %q is missing\n", name)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o *Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "sigy0", V: 0.3},
			&dbf.P{N: "MBL", V: 1.0},
			&dbf.P{N: "Do", V: 0.05},
			&dbf.P{N: "tol", V: 1e-8},
			&dbf.P{N: "limit", V: 100},
			&dbf.P{N: "Dn0", V: 0.01},
			&dbf.P{N: "Dn1", V: 0.005},
			&dbf.P{N: "Dn2", V: 0.002},
		}
	}
	prms := dbf.Params{
		&dbf.P{N: "sigy0", V: o.SigY0},
		&dbf.P{N: "MBL", V: o.MBL},
		&dbf.P{N: "Do", V: o.Do},
		&dbf.P{N: "tol", V: o.Tol},
		&dbf.P{N: "limit", V: float64(o.Limit)},
	}
	for i, d := range o.Dn {
		prms = append(prms, &dbf.P{N: "Dn" + strconv.Itoa(i), V: d})
	}
	return prms
}

// Stiffness returns the axial stiffness MBL/(g0·Do) at stress σ
func (o *Model) Stiffness(σ float64) (k float64, err error) {
	g0, _, _, err := o.G0.Eval(σ)
	if err != nil {
		return
	}
	return o.MBL / (g0 * o.Do), nil
}

// NewExample returns a model with the example parameters and smooth material functions
func NewExample() (o *Model, err error) {
	o = new(Model)
	if err = o.Init(o.GetPrms(true)); err != nil {
		return nil, err
	}
	single := func(c ...float64) *Poly {
		p, _ := NewSingle(c)
		return p
	}
	err = o.SetFuncs(map[string]*Poly{
		"a0": single(1, -0.2),
		"g0": single(1, 0.1),
		"g1": single(1),
		"g2": single(1, 0.05),
		"Ep": single(200),
		"np": single(2),
		"H":  single(10),
	})
	if err != nil {
		return nil, err
	}
	return o, o.Validate()
}
