// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/jnvn7/SYNCOM/mdl/rope"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material; e.g. the rope line type "polyester"
	Model string     `json:"model"` // name of model; only "syncom" is available
	Extra string     `json:"extra"` // extra information about this material
	Prms  dbf.Params `json:"prms"`  // scalar parameters: sigy0, MBL, Do, Dn0, Dn1, ..., tol, limit
	Funcs FuncsData  `json:"funcs"` // material functions: a0, g0, g1, g2, Ep, np, H

	// derived
	Rope *rope.Model // pointer to actual rope model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived
	byName map[string]*Material
}

// Init allocates and initialises the rope model of a material
func (o *Material) Init() (err error) {
	if o.Model != "syncom" {
		return chk.Err("model %q of material %q is not available; only \"syncom\" is", o.Model, o.Name)
	}
	fcns, err := o.Funcs.Polys()
	if err != nil {
		return chk.Err("material %q: %v", o.Name, err)
	}
	o.Rope = new(rope.Model)
	if err = o.Rope.SetFuncs(fcns); err != nil {
		return chk.Err("material %q: %v", o.Name, err)
	}
	if err = o.Rope.Init(o.Prms); err != nil {
		return chk.Err("material %q: %v", o.Name, err)
	}
	return
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read materials file %q:\n%v", fn, err)
	}

	// decode
	mdb = new(MatDb)
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot unmarshal materials file %q:\n%v", fn, err)
	}

	// models
	mdb.byName = make(map[string]*Material)
	for _, m := range mdb.Materials {
		if _, ok := mdb.byName[m.Name]; ok {
			return nil, chk.Err("material %q is defined more than once", m.Name)
		}
		if err = m.Init(); err != nil {
			return nil, err
		}
		mdb.byName[m.Name] = m
	}
	return
}

// Get returns a material by name
func (o *MatDb) Get(name string) (mat *Material, err error) {
	mat, ok := o.byName[name]
	if !ok {
		return nil, chk.Err("cannot find material named %q", name)
	}
	return
}

// NewMaterial returns a material built from a model; e.g. one read from MaterDef.xml
func NewMaterial(name string, mdl *rope.Model) *Material {
	funcs := make(FuncsData, 0, len(rope.FuncNames))
	polys := mdl.Funcs()
	for _, fn := range rope.FuncNames {
		funcs = append(funcs, &FuncData{Name: fn, Coefs: polys[fn].String()})
	}
	return &Material{
		Name:  name,
		Model: "syncom",
		Prms:  mdl.GetPrms(false),
		Funcs: funcs,
		Rope:  mdl,
	}
}

// String prints one material
func (o *Material) String() string {
	l := io.Sf("{\n  \"name\"  : %q,\n  \"model\" : %q,\n", o.Name, o.Model)
	if o.Extra != "" {
		l += io.Sf("  \"extra\" : %q,\n", o.Extra)
	}
	l += "  \"prms\"  : [\n"
	for i, p := range o.Prms {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    {\"n\":%q, \"v\":%v}", p.N, p.V)
	}
	l += "\n  ],\n"
	l += o.Funcs.String()
	l += "\n}"
	return l
}

// String prints materials
func (o MatDb) String() string {
	l := "{\n  \"materials\" : [\n"
	for i, m := range o.Materials {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]\n}"
	return l
}
