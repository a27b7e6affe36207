// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output handling of rope simulations: results tables,
// CSV files, summaries and log files
package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/jnvn7/SYNCOM/mdl/rope"
)

// Keys holds all keys of quantities that can be extracted from results
var Keys = []string{"t", "in", "sig", "eps", "eve", "evp", "sy", "te", "nit"}

// Results holds the committed results of one node
type Results struct {
	Direction string         // "stress" or "strain"
	Res       []*rope.Result // results
}

// NewResults returns results of a driver run
func NewResults(direction string, res []*rope.Result) (o *Results, err error) {
	if _, err = Module(direction); err != nil {
		return
	}
	return &Results{Direction: direction, Res: res}, nil
}

// Module returns the module number used in Setting.xml for direction:
// 1 computes strain from stress and 2 computes stress from strain
func Module(direction string) (mod int, err error) {
	switch direction {
	case "strain":
		return 1, nil
	case "stress":
		return 2, nil
	}
	return 0, chk.Err("direction %q is not available; options are \"stress\" and \"strain\"", direction)
}

// Get returns the series of one quantity by key
func (o *Results) Get(key string) (vals []float64, err error) {
	var f func(r *rope.Result) float64
	switch key {
	case "t":
		f = func(r *rope.Result) float64 { return r.Time }
	case "in":
		f = func(r *rope.Result) float64 { return r.Input }
	case "sig":
		f = func(r *rope.Result) float64 { return r.Stress }
	case "eps":
		f = func(r *rope.Result) float64 { return r.Strain }
	case "eve":
		f = func(r *rope.Result) float64 { return r.ElasticStrain }
	case "evp":
		f = func(r *rope.Result) float64 { return r.PlasticStrain }
	case "sy":
		f = func(r *rope.Result) float64 { return r.Yield }
	case "te":
		f = func(r *rope.Result) float64 { return r.Te }
	case "nit":
		f = func(r *rope.Result) float64 { return float64(r.Nit) }
	default:
		return nil, chk.Err("cannot get results with key %q", key)
	}
	vals = make([]float64, len(o.Res))
	for i, r := range o.Res {
		vals[i] = f(r)
	}
	return
}

// Columns returns the keys of the columns of the results table
func (o *Results) Columns() []string {
	return []string{"t", "sig", "eps", "eve", "evp"}
}
