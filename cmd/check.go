// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	goio "io"
	"math"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/jnvn7/SYNCOM/inp"
	"github.com/jnvn7/SYNCOM/mdl/rope"
	"github.com/spf13/cobra"
)

// CheckData holds settings of the material check
type CheckData struct {
	EpsMax float64 // maximum strain of the ramp
	Nsteps int     // number of steps of the ramp
	Dt     float64 // time step
	Tol    float64 // tolerance for the difference between analytical and numerical tangents
	Step   float64 // step size for the numerical tangent
}

func newCheckCmd(cfg *Config) *cobra.Command {
	dat := CheckData{EpsMax: 0.04, Nsteps: 10, Dt: 0.5, Tol: 1e-6, Step: 1e-5}
	c := &cobra.Command{
		Use:   "check <file.mat | MaterDef.xml>",
		Short: "Check a material and its consistent tangents along a strain ramp",
		Long: `Check a material from a .mat JSON file or from a MaterDef.xml file.

The material is loaded and validated. A rope node is then loaded by a strain
ramp from 0 to epsmax and the analytical derivative of the residual is compared
with a numerical one at every step.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return CheckMat(cmd.OutOrStdout(), args[0], cfg.LineType, dat, cfg.Verbose)
		},
	}
	c.Flags().Float64Var(&dat.EpsMax, "epsmax", dat.EpsMax, "maximum strain of the ramp")
	c.Flags().IntVar(&dat.Nsteps, "nsteps", dat.Nsteps, "number of steps of the ramp")
	c.Flags().Float64Var(&dat.Dt, "dt", dat.Dt, "time step")
	c.Flags().Float64Var(&dat.Tol, "tol", dat.Tol, "tolerance for the tangent check")
	return c
}

// LoadModel reads a material by name from a .mat JSON file or from a MaterDef.xml file.
// The first material of a .mat file is selected if name is empty
func LoadModel(path, name string) (mdl *rope.Model, err error) {
	if strings.ToLower(filepath.Ext(path)) == ".xml" {
		if name == "" {
			return nil, chk.Err("line type must be given to read %q", path)
		}
		return inp.ReadMaterDef(path, name)
	}
	dir, fn := filepath.Split(path)
	mdb, err := inp.ReadMat(dir, fn)
	if err != nil {
		return
	}
	if name == "" {
		if len(mdb.Materials) == 0 {
			return nil, chk.Err("there are no materials in %q", path)
		}
		return mdb.Materials[0].Rope, nil
	}
	mat, err := mdb.Get(name)
	if err != nil {
		return
	}
	return mat.Rope, nil
}

// CheckMat checks a material along a strain ramp and prints a table to w
func CheckMat(w goio.Writer, path, name string, dat CheckData, verbose bool) (err error) {
	if dat.Nsteps < 1 || !(dat.EpsMax > 0) || !(dat.Dt > 0) {
		return chk.Err("ramp settings are incorrect: nsteps = %d, epsmax = %g, dt = %g", dat.Nsteps, dat.EpsMax, dat.Dt)
	}
	mdl, err := LoadModel(path, name)
	if err != nil {
		return
	}
	line, err := rope.NewLine(mdl, "stress", 1)
	if err != nil {
		return
	}
	if verbose {
		fmt.Fprintf(w, "%6s%14s%14s%14s%14s%14s%6s\n", "step", "ε", "σ", "dF(ana)", "dF(num)", "k", "vp")
	}
	strains := utl.LinSpace(0, dat.EpsMax, dat.Nsteps+1)[1:]
	maxdiff := 0.0
	for i, ε := range strains {
		σ, e := line.Step(0, dat.Dt, ε)
		if e != nil {
			return fmt.Errorf("step %d with ε = %g failed: %w", i, ε, e)
		}
		ana, num, e := line.Tangent(0, dat.Step)
		if e != nil {
			return e
		}
		maxdiff = math.Max(maxdiff, math.Abs(ana-num))
		plastic := line.Plastic(0)
		line.Advance(dat.Dt)
		if verbose {
			fmt.Fprintf(w, "%6d%14.6e%14.6e%14.6e%14.6e%14.6e%6v\n", i, ε, σ, ana, num, line.Stiffness(0), plastic)
		}
	}
	if verbose {
		fmt.Fprintf(w, "max |dF(ana) - dF(num)| = %g\n", maxdiff)
	}
	if maxdiff > dat.Tol {
		return chk.Err("analytical and numerical tangents differ by %g > %g", maxdiff, dat.Tol)
	}
	io.Pfgreen("material %q is OK\n", name)
	return
}
