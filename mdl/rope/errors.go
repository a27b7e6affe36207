// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rope

import "errors"

// ErrorCode holds the outcome of a time step. Codes other than Success are returned as errors
type ErrorCode int

// error codes
const (
	Success                         ErrorCode = iota // step accepted
	BadDt                                            // dt ≤ 0
	NegativeStrain                                   // compression (strain input)
	NegativeStress                                   // compression (stress input)
	NonLogicalCoefficients                           // stress outside all polynomial segments
	NanViscoElastic                                  // NaN in the viscoelastic solve
	NanViscoElasticPlastic                           // NaN in the combined solve
	NoConvergedSolution                              // viscoelastic solve did not converge
	NoConvergedSolutionViscoplastic                  // combined solve did not converge
	Complete                                         // end of input series
)

var messages = map[ErrorCode]string{
	Success:                         "Successful.",
	BadDt:                           "Negative dt detected.",
	NegativeStrain:                  "Negative strain input - No compression allowed.",
	NegativeStress:                  "Negative stress input - No compression allowed.",
	NonLogicalCoefficients:          "Check input coefficients' step function setup.",
	NanViscoElastic:                 "Visco-elastic Solver encounters NaN output.",
	NanViscoElasticPlastic:          "Visco-elastic and Visco-plastic Solver encounters NaN output.",
	NoConvergedSolution:             "Can't find converged solution.",
	NoConvergedSolutionViscoplastic: "Can't find converged solution (visco-plastic).",
	Complete:                        "Simulation complete.",
}

// Error implements the error interface
func (o ErrorCode) Error() string {
	if msg, ok := messages[o]; ok {
		return msg
	}
	return "unknown error code"
}

// CodeOf returns the ErrorCode carried by err. nil maps to Success and errors without a code map to -1
func CodeOf(err error) ErrorCode {
	if err == nil {
		return Success
	}
	var code ErrorCode
	if errors.As(err, &code) {
		return code
	}
	return -1
}
