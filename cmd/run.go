// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	goio "io"
	"path/filepath"
	"strings"
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/jnvn7/SYNCOM/inp"
	"github.com/jnvn7/SYNCOM/mdl/rope"
	"github.com/jnvn7/SYNCOM/out"
	"github.com/spf13/cobra"
)

func newRunCmd(cfg *Config) *cobra.Command {
	c := &cobra.Command{
		Use:   "run <file.sim | Setting.xml>",
		Short: "Run a rope simulation",
		Long: `Run a rope simulation defined in a .sim JSON file or in a Setting.xml file.

Results are written to <dirout>/<key>_mod<N>.csv and <dirout>/<key>_mod<N>.txt
where N is 1 when strain is computed from stress and 2 when stress is
computed from strain. The outcome is appended to <dirout>/<key>_Log.txt.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := RunSim(cmd.OutOrStdout(), args[0], *cfg)
			return err
		},
	}
	c.Flags().Float64Var(&cfg.Dt, "dt", cfg.Dt, "time step; overrides the input file")
	c.Flags().StringVarP(&cfg.Direction, "direction", "d", cfg.Direction, `"stress" or "strain"; overrides the input file`)
	c.Flags().StringVarP(&cfg.DirOut, "out", "o", cfg.DirOut, "directory for output; overrides the input file")
	c.Flags().IntVarP(&cfg.Nnodes, "nnodes", "n", cfg.Nnodes, "number of nodes; overrides the input file")
	return c
}

// ReadInput reads a .sim JSON file or a Setting.xml file and applies the options
func ReadInput(path string, cfg Config) (sim *inp.Simulation, err error) {
	adjust := func(d *inp.Data) {
		if cfg.Dt != 0 {
			d.Dt = cfg.Dt
		}
		if cfg.Direction != "" {
			d.Direction = cfg.Direction
		}
		if cfg.DirOut != "" {
			d.DirOut = cfg.DirOut
		}
		if cfg.LineType != "" {
			d.Material = cfg.LineType
		}
		if cfg.Nnodes != 0 {
			d.Nnodes = cfg.Nnodes
		}
	}
	if strings.ToLower(filepath.Ext(path)) != ".xml" {
		return inp.ReadSim(path, adjust)
	}
	sim, err = inp.ReadSetting(path)
	if err != nil {
		return
	}
	material := sim.Data.Material
	adjust(&sim.Data)
	sim.Data.Material = material
	if err = sim.Check(); err != nil {
		return nil, err
	}
	return
}

// RunSim runs the simulation in path, saves results and prints a summary to w
func RunSim(w goio.Writer, path string, cfg Config) (res *out.Results, err error) {

	// input
	sim, err := ReadInput(path, cfg)
	if err != nil {
		return
	}
	if cfg.Verbose {
		fmt.Fprintf(w, "\n%v\n", io.ArgsTable("INPUT DATA",
			"input file", "path", path,
			"material (line type)", "material", sim.Data.Material,
			"direction", "direction", sim.Data.Direction,
			"time step", "dt", sim.Data.Dt,
			"number of nodes", "nnodes", sim.Data.Nnodes,
			"number of steps", "nsteps", len(sim.Inputs),
			"directory for output", "dirout", sim.Data.DirOut,
		))
	}

	// run
	var drv rope.Driver
	if err = drv.InitNodes(sim.Model, sim.Data.Direction, sim.Data.Dt, sim.Data.Nnodes); err != nil {
		return
	}
	drv.Silent = !cfg.Verbose
	simErr := drv.Run(sim.Inputs)

	// output
	res, err = out.NewResults(sim.Data.Direction, drv.Res)
	if err != nil {
		return
	}
	files, err := res.Save(sim.Data.DirOut, sim.Key)
	if err != nil {
		return
	}
	logfn, err := out.WriteLog(sim.Data.DirOut, sim.Key, time.Now(), simErr)
	if err != nil {
		return
	}
	if cfg.Verbose {
		fmt.Fprintf(w, "%v", res.GetSummary())
		for _, fn := range append(files, logfn) {
			fmt.Fprintf(w, "file <%s> written\n", fn)
		}
	}
	if simErr != nil {
		return res, fmt.Errorf("simulation stopped after %d of %d steps: %w", len(drv.Res), len(sim.Inputs), simErr)
	}
	return
}
