// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rope

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// single returns a single polynomial or fails the test
func single(tst *testing.T, c ...float64) *Poly {
	p, err := NewSingle(c)
	if err != nil {
		tst.Fatalf("NewSingle failed: %v\n", err)
	}
	return p
}

// linearModel returns a model with constant material functions
func linearModel(tst *testing.T, sigy0, Ep, np, H float64, Dn ...float64) *Model {
	prms := dbf.Params{
		&dbf.P{N: "sigy0", V: sigy0},
		&dbf.P{N: "MBL", V: 1},
		&dbf.P{N: "Do", V: 1},
		&dbf.P{N: "tol", V: 1e-10},
		&dbf.P{N: "limit", V: 50},
	}
	for i, d := range Dn {
		prms = append(prms, &dbf.P{N: io.Sf("Dn%d", i), V: d})
	}
	mdl := new(Model)
	if err := mdl.Init(prms); err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	err := mdl.SetFuncs(map[string]*Poly{
		"a0": single(tst, 1),
		"g0": single(tst, 1),
		"g1": single(tst, 1),
		"g2": single(tst, 1),
		"Ep": single(tst, Ep),
		"np": single(tst, np),
		"H":  single(tst, H),
	})
	if err != nil {
		tst.Fatalf("SetFuncs failed: %v\n", err)
	}
	return mdl
}

// example returns the example model
func example(tst *testing.T) *Model {
	mdl, err := NewExample()
	if err != nil {
		tst.Fatalf("NewExample failed: %v\n", err)
	}
	return mdl
}
