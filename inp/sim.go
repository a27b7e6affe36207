// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.sim) and (.mat) JSON files,
// from MaterDef.xml and Setting.xml files, and from single-column data series
package inp

import (
	"encoding/json"
	"fmt"
	goio "io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/jnvn7/SYNCOM/mdl/rope"
)

// Data holds global data for simulations
type Data struct {
	Desc      string  `json:"desc"`      // description of simulation
	Matfile   string  `json:"matfile"`   // materials file path; .mat (JSON) or .xml (MaterDef)
	DirOut    string  `json:"dirout"`    // directory for output; e.g. /tmp/syncom
	Material  string  `json:"material"`  // name of material (line type)
	Direction string  `json:"direction"` // "stress" computes stress from strain; "strain" computes strain from stress
	Dt        float64 `json:"dt"`        // time step
	Input     string  `json:"input"`     // path of data file with the input series
	Nnodes    int     `json:"nnodes"`    // number of nodes sharing the input series; 0 means 1
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data Data `json:"data"` // stores global simulation data

	// derived
	DirIn  string      // directory of .sim file
	Key    string      // simulation key; e.g. mysim01.sim => mysim01
	MatDb  *MatDb      // materials database
	Mat    *Material   // selected material
	Inputs []float64   // input series
	Model  *rope.Model // model of selected material
}

// ReadSim reads all simulation data from a .sim JSON file. The adjust functions may
// modify the global data before materials and series are loaded
func ReadSim(simfilepath string, adjust ...func(d *Data)) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// decode
	o = new(Simulation)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}
	o.DirIn, o.Key = filepath.Split(simfilepath)
	o.Key = io.FnKey(o.Key)
	if o.DirIn == "" {
		o.DirIn = "."
	}
	for _, f := range adjust {
		f(&o.Data)
	}
	err = o.Load()
	return
}

// Load reads the materials and the input series referenced by Data and checks the settings
func (o *Simulation) Load() (err error) {

	// settings
	if err = o.Check(); err != nil {
		return
	}

	// materials
	matpath := o.path(o.Data.Matfile)
	if strings.ToLower(filepath.Ext(matpath)) == ".xml" {
		var mdl *rope.Model
		mdl, err = ReadMaterDef(matpath, o.Data.Material)
		if err != nil {
			return
		}
		o.Mat = NewMaterial(o.Data.Material, mdl)
		o.MatDb = &MatDb{Materials: MatsData{o.Mat}, byName: map[string]*Material{o.Mat.Name: o.Mat}}
	} else {
		dir, fn := filepath.Split(matpath)
		o.MatDb, err = ReadMat(dir, fn)
		if err != nil {
			return
		}
		o.Mat, err = o.MatDb.Get(o.Data.Material)
		if err != nil {
			return
		}
	}
	o.Model = o.Mat.Rope

	// series
	o.Inputs, err = ReadSeries(o.path(o.Data.Input))
	return
}

// Check checks global settings and sets defaults
func (o *Simulation) Check() (err error) {
	if !(o.Data.Dt > 0) {
		return chk.Err("time step must be positive. dt = %g is incorrect", o.Data.Dt)
	}
	if _, err = rope.NewDirection(o.Data.Direction); err != nil {
		return
	}
	if o.Data.Matfile == "" {
		return chk.Err("materials file must be given")
	}
	if o.Data.Input == "" {
		return chk.Err("input data file must be given")
	}
	if o.Data.Nnodes < 0 {
		return chk.Err("number of nodes must be non-negative. nnodes = %d is incorrect", o.Data.Nnodes)
	}
	if o.Data.Nnodes == 0 {
		o.Data.Nnodes = 1
	}
	if o.Data.DirOut == "" {
		o.Data.DirOut = "/tmp/syncom"
	}
	return
}

// path returns fn relative to the directory of the .sim file unless fn is absolute
func (o *Simulation) path(fn string) string {
	if filepath.IsAbs(fn) || o.DirIn == "" {
		return fn
	}
	return filepath.Join(o.DirIn, fn)
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	fmt.Fprintf(w, "file: %s\n", filepath.Join(o.DirIn, o.Key+".sim"))
	fmt.Fprintf(w, "desc: %s\n", o.Data.Desc)
	fmt.Fprintf(w, "material: %s (%s)\n", o.Data.Material, o.Data.Matfile)
	fmt.Fprintf(w, "direction: %s\n", o.Data.Direction)
	fmt.Fprintf(w, "dt: %g\n", o.Data.Dt)
	fmt.Fprintf(w, "nnodes: %d\n", o.Data.Nnodes)
	fmt.Fprintf(w, "steps: %d\n", len(o.Inputs))
	return
}
