// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/jnvn7/SYNCOM/mdl/rope"
)

// xmlProps holds material properties as written in MaterDef.xml and Setting.xml
type xmlProps struct {
	SigY0 string `xml:"sigma_yield0"`
	MBL   string `xml:"MBL"`
	Do    string `xml:"Do"`
	Dn    string `xml:"Dn"`
	A0    string `xml:"a0"`
	G0    string `xml:"g0"`
	G1    string `xml:"g1"`
	G2    string `xml:"g2"`
	Ep    string `xml:"Ep"`
	Np    string `xml:"np"`
	H     string `xml:"H"`
}

// xmlNumerical holds numerical settings
type xmlNumerical struct {
	Dt    string `xml:"dt"`
	Limit string `xml:"limit"`
	Tol   string `xml:"tol"`
}

// xmlLine holds the properties of one line type; the element name is the line type
type xmlLine struct {
	XMLName xml.Name
	xmlProps
}

// xmlMaterDef holds the contents of MaterDef.xml
type xmlMaterDef struct {
	XMLName   xml.Name
	Numerical *xmlNumerical `xml:"numerical_setting"`
	Lines     []xmlLine     `xml:",any"`
}

// xmlSetting holds the contents of Setting.xml
type xmlSetting struct {
	XMLName   xml.Name
	DataInput string        `xml:"data_input_file"`
	Module    *string       `xml:"module"`
	Props     *xmlProps     `xml:"material_props"`
	Numerical *xmlNumerical `xml:"numerical_setting"`
}

// ReadMaterDef reads the properties of line type from a MaterDef.xml file
func ReadMaterDef(path, lineType string) (mdl *rope.Model, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("Cannot find MaterDef.xml file (%q).", path)
	}
	var doc xmlMaterDef
	if err = xml.Unmarshal(b, &doc); err != nil {
		return nil, chk.Err("Found xml parse error in MaterDef.xml:\n%v", err)
	}
	if doc.XMLName.Local != "MaterDef" {
		return nil, chk.Err("Root node of MaterDef.xml must be MaterDef.")
	}
	var props *xmlProps
	for i := range doc.Lines {
		if doc.Lines[i].XMLName.Local == lineType {
			props = &doc.Lines[i].xmlProps
			break
		}
	}
	if props == nil {
		return nil, chk.Err("Cannot find properties of line type %q in MaterDef.xml.", lineType)
	}
	if doc.Numerical == nil {
		return nil, chk.Err("Cannot find numerical_setting in MaterDef.xml.")
	}
	limit, tol, err := doc.Numerical.parse(false)
	if err != nil {
		return
	}
	return props.model(limit, tol)
}

// ReadSetting reads a Setting.xml file with material properties, numerical settings and
// the path of the input series. Module 1 computes strain from stress; module 2 computes
// stress from strain
func ReadSetting(path string) (o *Simulation, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("Cant find Setting.xml file (%q).", path)
	}
	var doc xmlSetting
	if err = xml.Unmarshal(b, &doc); err != nil {
		return nil, chk.Err("Found xml parse error in Setting.xml:\n%v", err)
	}
	if doc.XMLName.Local != "settings" {
		return nil, chk.Err("Root node of Setting.xml must be setting.")
	}
	datafile := strings.TrimSpace(doc.DataInput)
	if datafile == "" {
		return nil, chk.Err("Cant find input data (stress or strain) file.")
	}
	if doc.Module == nil {
		return nil, chk.Err("No module specified in Setting.xml file.")
	}
	var direction string
	switch strings.TrimSpace(*doc.Module) {
	case "1":
		direction = "strain"
	case "2":
		direction = "stress"
	default:
		return nil, chk.Err("Bad module specified in Setting.xml file.")
	}
	if doc.Props == nil || doc.Numerical == nil {
		return nil, chk.Err("Insufficient material property input.")
	}
	limit, tol, err := doc.Numerical.parse(true)
	if err != nil {
		return
	}
	dt, err := parseNumber(doc.Numerical.Dt)
	if err != nil {
		return
	}
	mdl, err := doc.Props.model(limit, tol)
	if err != nil {
		return
	}

	// simulation
	dir := filepath.Dir(path)
	input := datafile
	if !filepath.IsAbs(input) {
		input = filepath.Join(dir, input)
	}
	o = new(Simulation)
	o.Data = Data{
		Desc:      "Setting.xml",
		Matfile:   filepath.Base(path),
		DirOut:    filepath.Dir(input),
		Material:  "setting",
		Direction: direction,
		Dt:        dt,
		Input:     datafile,
	}
	if err = o.Check(); err != nil {
		return nil, err
	}
	o.DirIn = dir
	o.Key = "SYNCOM_Output"
	o.Mat = NewMaterial(o.Data.Material, mdl)
	o.MatDb = &MatDb{Materials: MatsData{o.Mat}, byName: map[string]*Material{o.Mat.Name: o.Mat}}
	o.Model = mdl
	o.Inputs, err = ReadSeries(input)
	if err != nil {
		return nil, err
	}
	return
}

// parse parses the iteration limit and the tolerance
func (o *xmlNumerical) parse(withDt bool) (limit int, tol float64, err error) {
	if strings.TrimSpace(o.Limit) == "" || strings.TrimSpace(o.Tol) == "" || (withDt && strings.TrimSpace(o.Dt) == "") {
		return 0, 0, chk.Err("Insufficient material property input.")
	}
	limit, err = strconv.Atoi(strings.TrimSpace(o.Limit))
	if err != nil {
		return 0, 0, chk.Err("Bad material property input.")
	}
	tol, err = parseNumber(o.Tol)
	if err != nil {
		return
	}
	if limit <= 0 || tol < 0 {
		return 0, 0, chk.Err("Check numerical setting input.")
	}
	return
}

// model builds a rope model from the properties
func (o *xmlProps) model(limit int, tol float64) (mdl *rope.Model, err error) {
	for _, s := range []string{o.SigY0, o.MBL, o.Do, o.Dn, o.A0, o.G0, o.G1, o.G2, o.Ep, o.Np, o.H} {
		if strings.TrimSpace(s) == "" {
			return nil, chk.Err("Insufficient material property input.")
		}
	}
	prms := make(dbf.Params, 0, 8)
	for _, p := range []struct {
		name, text string
	}{{"sigy0", o.SigY0}, {"MBL", o.MBL}, {"Do", o.Do}} {
		v, e := parseNumber(p.text)
		if e != nil {
			return nil, e
		}
		prms = append(prms, &dbf.P{N: p.name, V: v})
	}
	dn := strings.Fields(o.Dn)
	if len(dn) == 0 {
		return nil, chk.Err("Bad Dn's values input.")
	}
	for i, s := range dn {
		v, e := parseNumber(s)
		if e != nil {
			return nil, e
		}
		if v < 0 {
			return nil, chk.Err("Check material property inputs.")
		}
		prms = append(prms, &dbf.P{N: "Dn" + strconv.Itoa(i), V: v})
	}
	prms = append(prms, &dbf.P{N: "tol", V: tol}, &dbf.P{N: "limit", V: float64(limit)})

	// functions
	funcs := FuncsData{
		{Name: "a0", Coefs: o.A0},
		{Name: "g0", Coefs: o.G0},
		{Name: "g1", Coefs: o.G1},
		{Name: "g2", Coefs: o.G2},
		{Name: "Ep", Coefs: o.Ep},
		{Name: "np", Coefs: o.Np},
		{Name: "H", Coefs: o.H},
	}
	fcns, err := funcs.Polys()
	if err != nil {
		return nil, chk.Err("Check input coefficients' step function setup.\n%v", err)
	}
	mdl = new(rope.Model)
	if err = mdl.SetFuncs(fcns); err != nil {
		return nil, err
	}
	if err = mdl.Init(prms); err != nil {
		return nil, chk.Err("Check material property inputs.\n%v", err)
	}
	return
}

// parseNumber parses one number
func parseNumber(text string) (v float64, err error) {
	v, err = strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, chk.Err("Bad material property input.")
	}
	return
}
