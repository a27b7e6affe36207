// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/jnvn7/SYNCOM/mdl/rope"
)

// FuncData holds the definition of one material function of stress
//  Coefs lists polynomial coefficients separated by spaces. A token L(x) starts a
//  new segment for stresses above x; e.g. "1 0.1 L(0.5) 1.05" is 1+0.1σ for σ ≤ 0.5
//  and 1.05 otherwise.
type FuncData struct {
	Name  string `json:"name"`  // name of function: a0, g0, g1, g2, Ep, np or H
	Coefs string `json:"coefs"` // coefficients with breakpoints
}

// FuncsData holds material functions
type FuncsData []*FuncData

// Get returns the function by name
func (o FuncsData) Get(name string) (fcn *rope.Poly, err error) {
	for _, f := range o {
		if f.Name == name {
			fcn, err = ParsePoly(f.Coefs)
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q\n", name)
	return
}

// Polys returns all material functions required by the rope model
func (o FuncsData) Polys() (fcns map[string]*rope.Poly, err error) {
	fcns = make(map[string]*rope.Poly)
	for _, name := range rope.FuncNames {
		fcns[name], err = o.Get(name)
		if err != nil {
			return nil, err
		}
	}
	return
}

// ParsePoly parses coefficients with L(x) breakpoint tokens
func ParsePoly(text string) (fcn *rope.Poly, err error) {
	var coefs, breaks []float64
	var starts []int
	for _, token := range strings.Fields(text) {
		if strings.HasPrefix(token, "L") {
			if !strings.HasPrefix(token, "L(") || !strings.HasSuffix(token, ")") {
				return nil, chk.Err("breakpoint token %q must be written as L(x)", token)
			}
			x, e := strconv.ParseFloat(token[2:len(token)-1], 64)
			if e != nil {
				return nil, chk.Err("breakpoint in %q is not a number", token)
			}
			breaks = append(breaks, x)
			starts = append(starts, len(coefs))
			continue
		}
		c, e := strconv.ParseFloat(token, 64)
		if e != nil {
			return nil, chk.Err("coefficient %q is not a number", token)
		}
		coefs = append(coefs, c)
	}
	fcn, err = rope.NewSegmented(coefs, breaks, starts)
	if err != nil {
		return nil, chk.Err("%v (coefficients = %q)", err, text)
	}
	return
}

// String prints one function
func (o FuncData) String() string {
	return io.Sf("    {\"name\":%q, \"coefs\":%q}", o.Name, o.Coefs)
}

// String prints functions
func (o FuncsData) String() string {
	if len(o) == 0 {
		return "  \"funcs\" : []"
	}
	l := "  \"funcs\" : [\n"
	for i, f := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", f)
	}
	l += "\n  ]"
	return l
}
