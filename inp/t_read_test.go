// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/jnvn7/SYNCOM/mdl/rope"
	"github.com/stretchr/testify/require"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// firstStress returns the stress after one step from the virgin state
func firstStress(tst *testing.T, mdl *rope.Model, dt, ε float64) float64 {
	line, err := rope.NewLine(mdl, "stress", 1)
	require.NoError(tst, err)
	σ, err := line.Step(0, dt, ε)
	require.NoError(tst, err)
	return σ
}

func Test_func01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("func01. coefficients with breakpoints")

	p, err := ParsePoly("1 2 L(1) 3 -1 1 L(2) 5")
	require.NoError(tst, err)
	chk.Array(tst, "C", 1e-17, p.C, []float64{1, 2, 3, -1, 1, 5})
	chk.Array(tst, "Breaks", 1e-17, p.Breaks, []float64{1, 2})
	chk.Ints(tst, "Starts", p.Starts, []int{2, 5})
	require.Equal(tst, "1 2 L(1) 3 -1 1 L(2) 5", p.String())

	p, err = ParsePoly("  200 ")
	require.NoError(tst, err)
	require.False(tst, p.Segmented())
	f, _, _, err := p.Eval(0.7)
	require.NoError(tst, err)
	chk.Float64(tst, "f", 1e-17, f, 200)

	for _, text := range []string{"", "1 abc", "1 Lx 2", "1 L(a) 2", "L(1) 2", "1 L(2) 2 L(1) 3", "1 L(1)"} {
		_, err = ParsePoly(text)
		require.Error(tst, err, "coefficients %q", text)
		io.Pforan("%q: %v\n", text, err)
	}
}

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. materials database")

	mdb, err := ReadMat("data", "rope.mat")
	require.NoError(tst, err)
	require.Len(tst, mdb.Materials, 2)
	io.Pforan("rope.mat just read:\n%v\n", mdb)

	mat, err := mdb.Get("polyester")
	require.NoError(tst, err)
	mdl := mat.Rope
	chk.Float64(tst, "sigy0", 1e-17, mdl.SigY0, 0.3)
	chk.Float64(tst, "MBL", 1e-17, mdl.MBL, 1)
	chk.Float64(tst, "Do", 1e-17, mdl.Do, 0.05)
	chk.Float64(tst, "tol", 1e-17, mdl.Tol, 1e-8)
	chk.Int(tst, "limit", mdl.Limit, 100)
	chk.Array(tst, "Dn", 1e-17, mdl.Dn, []float64{0.01, 0.005, 0.002})
	chk.Array(tst, "λ", 1e-17, mdl.Lambda, []float64{1, 0.1, 0.01})
	chk.Float64(tst, "σ", 1e-12, firstStress(tst, mdl, 0.5, 0.003), 0.05706392784048934)

	nylon, err := mdb.Get("nylon")
	require.NoError(tst, err)
	require.True(tst, nylon.Rope.A0.Segmented())
	chk.Float64(tst, "tol (default)", 1e-17, nylon.Rope.Tol, 1e-6)
	chk.Int(tst, "limit (default)", nylon.Rope.Limit, 50)

	_, err = mdb.Get("steel")
	require.Error(tst, err)

	// write and read again
	dir := tst.TempDir()
	io.WriteStringToFileD(dir, "again.mat", mdb.String())
	again, err := ReadMat(dir, "again.mat")
	require.NoError(tst, err)
	mat2, err := again.Get("polyester")
	require.NoError(tst, err)
	chk.Float64(tst, "σ (again)", 1e-17, firstStress(tst, mat2.Rope, 0.5, 0.003), firstStress(tst, mdl, 0.5, 0.003))
	nylon2, err := again.Get("nylon")
	require.NoError(tst, err)
	require.Equal(tst, nylon.Rope.G0.String(), nylon2.Rope.G0.String())
}

func Test_mat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat02. materials with errors")

	dir := tst.TempDir()
	write := func(fn, prms, funcs string) {
		io.WriteStringToFileD(dir, fn, `{"materials":[{"name":"m","model":"syncom","prms":[`+prms+`],"funcs":[`+funcs+`]}]}`)
	}
	okPrms := `{"n":"sigy0","v":0.3},{"n":"MBL","v":1},{"n":"Do","v":0.05},{"n":"Dn0","v":0.01}`
	okFuncs := `{"name":"a0","coefs":"1"},{"name":"g0","coefs":"1"},{"name":"g1","coefs":"1"},{"name":"g2","coefs":"1"},{"name":"Ep","coefs":"200"},{"name":"np","coefs":"2"},{"name":"H","coefs":"10"}`

	write("ok.mat", okPrms, okFuncs)
	_, err := ReadMat(dir, "ok.mat")
	require.NoError(tst, err)

	write("missingfunc.mat", okPrms, `{"name":"a0","coefs":"1"}`)
	_, err = ReadMat(dir, "missingfunc.mat")
	require.ErrorContains(tst, err, "cannot find function named \"g0\"")

	write("badprm.mat", okPrms+`,{"n":"E","v":1}`, okFuncs)
	_, err = ReadMat(dir, "badprm.mat")
	require.ErrorContains(tst, err, "\"E\"")

	write("negdn.mat", `{"n":"sigy0","v":0.3},{"n":"MBL","v":1},{"n":"Do","v":0.05},{"n":"Dn0","v":-0.01}`, okFuncs)
	_, err = ReadMat(dir, "negdn.mat")
	require.Error(tst, err)

	write("gap.mat", okPrms+`,{"n":"Dn2","v":0.01}`, okFuncs)
	_, err = ReadMat(dir, "gap.mat")
	require.ErrorContains(tst, err, "Dn1")

	io.WriteStringToFileD(dir, "model.mat", `{"materials":[{"name":"m","model":"vm"}]}`)
	_, err = ReadMat(dir, "model.mat")
	require.ErrorContains(tst, err, "\"vm\"")

	_, err = ReadMat(dir, "nonexistent.mat")
	require.ErrorContains(tst, err, "cannot read materials file")
}

func Test_materdef01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("materdef01. MaterDef.xml")

	poly, err := ReadMaterDef(filepath.Join("data", "MaterDef.xml"), "polyester")
	require.NoError(tst, err)
	chk.Float64(tst, "sigy0", 1e-17, poly.SigY0, 0.3)
	chk.Array(tst, "Dn", 1e-17, poly.Dn, []float64{0.01, 0.005, 0.002})
	chk.Float64(tst, "tol", 1e-17, poly.Tol, 1e-8)
	chk.Int(tst, "limit", poly.Limit, 100)
	chk.Float64(tst, "σ", 1e-12, firstStress(tst, poly, 0.5, 0.003), 0.05706392784048934)

	nylon, err := ReadMaterDef(filepath.Join("data", "MaterDef.xml"), "nylon")
	require.NoError(tst, err)
	chk.Array(tst, "Breaks(a0)", 1e-17, nylon.A0.Breaks, []float64{0.5})
	chk.Ints(tst, "Starts(g0)", nylon.G0.Starts, []int{2})
	mdb, err := ReadMat("data", "rope.mat")
	require.NoError(tst, err)
	mat, err := mdb.Get("nylon")
	require.NoError(tst, err)
	chk.Float64(tst, "σ (xml = json)", 1e-17, firstStress(tst, nylon, 1, 0.02), firstStress(tst, mat.Rope, 1, 0.02))

	_, err = ReadMaterDef(filepath.Join("data", "MaterDef.xml"), "steel")
	require.ErrorContains(tst, err, "steel")
	_, err = ReadMaterDef(filepath.Join("data", "Setting.xml"), "polyester")
	require.ErrorContains(tst, err, "Root node of MaterDef.xml")
	_, err = ReadMaterDef(filepath.Join("data", "nonexistent.xml"), "polyester")
	require.Error(tst, err)
}

func Test_setting01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("setting01. Setting.xml")

	sim, err := ReadSetting(filepath.Join("data", "Setting.xml"))
	require.NoError(tst, err)
	require.Equal(tst, "stress", sim.Data.Direction)
	require.Equal(tst, "data", sim.Data.DirOut)
	require.Equal(tst, 1, sim.Data.Nnodes)
	chk.Float64(tst, "dt", 1e-17, sim.Data.Dt, 0.5)
	require.Len(tst, sim.Inputs, 22)
	chk.Float64(tst, "ε0", 1e-17, sim.Inputs[0], 0.004)
	chk.Float64(tst, "ε21", 1e-17, sim.Inputs[21], 0.048)
	chk.Float64(tst, "σ", 1e-12, firstStress(tst, sim.Model, sim.Data.Dt, 0.003), 0.05706392784048934)

	_, err = ReadSetting(filepath.Join("data", "badmodule.xml"))
	require.ErrorContains(tst, err, "Bad module specified in Setting.xml file.")
	_, err = ReadSetting(filepath.Join("data", "baddn.xml"))
	require.ErrorContains(tst, err, "Check material property inputs.")
	_, err = ReadSetting(filepath.Join("data", "MaterDef.xml"))
	require.ErrorContains(tst, err, "Root node of Setting.xml must be setting.")
}

func Test_series01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("series01. data files")

	series, err := ReadSeries(filepath.Join("data", "stress.dat"))
	require.NoError(tst, err)
	chk.Array(tst, "σ", 1e-17, series, []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.4})

	_, err = ReadSeries(filepath.Join("data", "twocols.dat"))
	require.ErrorContains(tst, err, "Only maximum of 1 columns are expected in the data file.")
	_, err = ReadSeries(filepath.Join("data", "nan.dat"))
	require.ErrorContains(tst, err, "NaN values found in input data.")
	_, err = ReadSeries(filepath.Join("data", "nonexistent.dat"))
	require.ErrorContains(tst, err, "Fail to open input file.")

	dir := tst.TempDir()
	WriteSeries(dir, "again.dat", "stress", series)
	again, err := ReadSeries(filepath.Join(dir, "again.dat"))
	require.NoError(tst, err)
	chk.Array(tst, "σ (again)", 1e-17, again, series)
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. simulation files")

	sim, err := ReadSim(filepath.Join("data", "polyester.sim"))
	require.NoError(tst, err)
	require.Equal(tst, "polyester", sim.Key)
	require.Equal(tst, "polyester", sim.Mat.Name)
	require.Equal(tst, "/tmp/syncom", sim.Data.DirOut)
	require.Len(tst, sim.Inputs, 22)
	chk.Float64(tst, "σ", 1e-12, firstStress(tst, sim.Model, sim.Data.Dt, 0.003), 0.05706392784048934)

	var buf bytes.Buffer
	require.NoError(tst, sim.GetInfo(&buf))
	io.Pforan("%s", buf.String())
	require.Contains(tst, buf.String(), "steps: 22")

	sim, err = ReadSim(filepath.Join("data", "nylon.sim"))
	require.NoError(tst, err)
	require.Equal(tst, "strain", sim.Data.Direction)
	require.Equal(tst, 3, sim.Data.Nnodes)
	require.Len(tst, sim.Inputs, 6)
	require.True(tst, sim.Model.G0.Segmented())

	// settings
	bad := Simulation{Data: Data{Matfile: "rope.mat", Input: "strain.dat", Direction: "stress"}}
	require.Error(tst, bad.Check())
	bad.Data.Dt = 1
	bad.Data.Direction = "torque"
	require.Error(tst, bad.Check())
	bad.Data.Direction = "strain"
	require.NoError(tst, bad.Check())
	require.Equal(tst, 1, bad.Data.Nnodes)

	// missing files are reported as errors
	require.NotPanics(tst, func() {
		_, err = ReadSim(filepath.Join("data", "nonexistent.sim"))
	})
	require.ErrorContains(tst, err, "cannot read simulation file")
	require.NotPanics(tst, func() {
		_, err = ReadSetting(filepath.Join("data", "nonexistent.xml"))
	})
	require.ErrorContains(tst, err, "Cant find Setting.xml file")
}
