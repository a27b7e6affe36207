// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/jnvn7/SYNCOM/mdl/rope"
	"github.com/stretchr/testify/require"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// loading runs the example rope through a loading path
func loading(tst *testing.T, direction string) *Results {
	mdl, err := rope.NewExample()
	require.NoError(tst, err)
	var drv rope.Driver
	require.NoError(tst, drv.Init(mdl, direction, 0.5))
	drv.Silent = true
	inputs := utl.LinSpace(0.004, 0.04, 10)
	if direction == "strain" {
		inputs = utl.LinSpace(0.05, 0.5, 10)
	}
	require.NoError(tst, drv.Run(inputs))
	res, err := NewResults(direction, drv.Res)
	require.NoError(tst, err)
	return res
}

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01. results and labels")

	res := loading(tst, "stress")
	for _, key := range Keys {
		vals, err := res.Get(key)
		require.NoError(tst, err)
		require.Len(tst, vals, 10)
	}
	_, err := res.Get("ux")
	require.Error(tst, err)

	t, _ := res.Get("t")
	chk.Array(tst, "t", 1e-15, t, utl.LinSpace(0.5, 5, 10))
	in, _ := res.Get("in")
	eps, _ := res.Get("eps")
	chk.Array(tst, "ε = input", 1e-15, eps, in)
	eve, _ := res.Get("eve")
	evp, _ := res.Get("evp")
	for i := range eps {
		chk.Float64(tst, io.Sf("ε%d = εve + εvp", i), 1e-15, eve[i]+evp[i], eps[i])
	}

	require.Equal(tst, []string{"Time(s)", "Stress(out)", "Total_Strain(in)", "Visco-elastic_Strain", "Visco-plastic_Strain"}, res.GetLabels())
	res2 := loading(tst, "strain")
	require.Equal(tst, []string{"Time(s)", "Stress(in)", "Total_Strain(out)", "Visco-elastic_Strain", "Visco-plastic_Strain"}, res2.GetLabels())

	mod, err := Module("strain")
	require.NoError(tst, err)
	require.Equal(tst, 1, mod)
	mod, err = Module("stress")
	require.NoError(tst, err)
	require.Equal(tst, 2, mod)
	_, err = NewResults("torque", nil)
	require.Error(tst, err)
}

func Test_out02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out02. tables and csv files")

	res := loading(tst, "stress")

	// table
	var buf bytes.Buffer
	require.NoError(tst, res.WriteTable(&buf))
	io.Pforan("%s", buf.String())
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(tst, lines, 11)
	require.True(tst, strings.HasPrefix(lines[0], "Time(s)"))
	require.True(tst, strings.HasPrefix(lines[1], " 5.00000E-01  "))
	require.Len(tst, strings.Fields(lines[10]), 5)

	// csv
	buf.Reset()
	require.NoError(tst, res.WriteCSV(&buf))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(tst, err)
	require.Len(tst, records, 11)
	require.Equal(tst, res.GetLabels(), records[0])
	sig, _ := res.Get("sig")
	for i, rec := range records[1:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		require.NoError(tst, err)
		chk.Float64(tst, io.Sf("σ%d", i), 1e-5*sig[i], v, sig[i])
	}

	// files
	dir := tst.TempDir()
	files, err := res.Save(dir, "SYNCOM_Output")
	require.NoError(tst, err)
	require.Equal(tst, []string{filepath.Join(dir, "SYNCOM_Output_mod2.csv"), filepath.Join(dir, "SYNCOM_Output_mod2.txt")}, files)
	for _, fn := range files {
		_, err = os.Stat(fn)
		require.NoError(tst, err)
	}
}

func Test_out03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out03. summary and log")

	res := loading(tst, "stress")
	sum := res.GetSummary()
	io.Pforan("%v", sum)
	require.Equal(tst, 10, sum.Nsteps)
	require.Greater(tst, sum.Nplastic, 0)
	require.Less(tst, sum.Nplastic, 10)
	chk.Float64(tst, "duration", 1e-15, sum.Duration, 5)
	chk.Float64(tst, "max σ", 1e-10, sum.MaxStress, 0.6074871891951626)
	chk.Float64(tst, "max ε", 1e-15, sum.MaxStrain, 0.04)
	chk.Float64(tst, "εvp", 1e-17, sum.FinalEpsVp, res.Res[9].PlasticStrain)
	require.Greater(tst, sum.FinalYield, 0.0)

	empty := Results{Direction: "stress"}
	require.Equal(tst, 0, empty.GetSummary().Nsteps)

	dir := tst.TempDir()
	stamp := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	fn, err := WriteLog(dir, "SYNCOM", stamp, nil)
	require.NoError(tst, err)
	_, err = WriteLog(dir, "SYNCOM", stamp, rope.NoConvergedSolution)
	require.NoError(tst, err)
	b, err := os.ReadFile(fn)
	require.NoError(tst, err)
	require.Contains(tst, string(b), "Simulation complete.")
	require.Contains(tst, string(b), "[7] Can't find converged solution.")
	require.Equal(tst, filepath.Join(dir, "SYNCOM_Log.txt"), fn)
}
