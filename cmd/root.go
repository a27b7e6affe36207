// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the syncom command line interface
package cmd

import (
	"github.com/caarlos0/env/v11"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

// Version of syncom
var Version = "1.0.0"

// Config holds options of the command line interface. Defaults are read from the environment
type Config struct {
	Dt        float64 `env:"SYNCOM_DT"`                        // time step; 0 means use the input file
	Direction string  `env:"SYNCOM_DIRECTION"`                 // "stress" or "strain"; empty means use the input file
	DirOut    string  `env:"SYNCOM_OUT"`                       // directory for output; empty means use the input file
	Verbose   bool    `env:"SYNCOM_VERBOSE" envDefault:"true"` // show messages
	LineType  string  `env:"SYNCOM_LINE_TYPE"`                 // material name (line type)
	Nnodes    int     `env:"SYNCOM_NNODES"`                    // number of nodes; 0 means use the input file
}

// ParseConfig reads options from the environment
func ParseConfig() (cfg Config, err error) {
	if err = env.Parse(&cfg); err != nil {
		return cfg, chk.Err("cannot parse environment:\n%v", err)
	}
	return
}

// NewRootCmd returns the root command with all subcommands
func NewRootCmd(cfg Config) *cobra.Command {
	c := &cfg
	root := &cobra.Command{
		Use:   "syncom",
		Short: "Nonlinear viscoelastic-viscoplastic model for synthetic fibre ropes",
		Long: `syncom computes the response of synthetic fibre ropes with a nonlinear
viscoelastic law with Prony-series memory coupled to viscoplastic flow.

Given a strain history, the stress is computed (direction "stress");
given a stress history, the strain is computed (direction "strain").

Options may also be set with the environment variables
SYNCOM_DT, SYNCOM_DIRECTION, SYNCOM_OUT, SYNCOM_VERBOSE,
SYNCOM_LINE_TYPE and SYNCOM_NNODES.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			io.Verbose = c.Verbose
		},
	}
	root.PersistentFlags().BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "show messages")
	root.PersistentFlags().StringVarP(&c.LineType, "line-type", "l", c.LineType, "material name (line type)")
	root.AddCommand(newRunCmd(c), newCheckCmd(c), newVersionCmd())
	return root
}

// Execute reads the environment and runs the root command
func Execute() error {
	cfg, err := ParseConfig()
	if err != nil {
		return err
	}
	return NewRootCmd(cfg).Execute()
}
