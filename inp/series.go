// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// number of header lines in data files
const nHeaderLines = 1

// ReadSeries reads a data file with one header line followed by one column of
// stresses or strains. Blank lines are skipped
func ReadSeries(path string) (series []float64, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("Fail to open input file. Check input for data file (%q).", path)
	}
	lines := strings.Split(strings.ReplaceAll(string(b), "\r\n", "\n"), "\n")
	for i, line := range lines {
		if i < nHeaderLines {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) > 1 {
			return nil, chk.Err("Only maximum of 1 columns are expected in the data file. Line %d has %d.", i+1, len(fields))
		}
		v, e := strconv.ParseFloat(fields[0], 64)
		if e != nil || math.IsInf(v, 0) {
			return nil, chk.Err("NaN values found in input data. Line %d: %q.", i+1, fields[0])
		}
		series = append(series, v)
	}
	if floats.HasNaN(series) {
		return nil, chk.Err("NaN values found in input data.")
	}
	if len(series) == 0 {
		return nil, chk.Err("input data file %q has no data", path)
	}
	return
}

// WriteSeries writes a data file with a header line and one column
func WriteSeries(dir, fn, header string, series []float64) {
	var sb strings.Builder
	sb.WriteString(header + "\n")
	for _, v := range series {
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64) + "\n")
	}
	io.WriteStringToFileD(dir, fn, sb.String())
}
