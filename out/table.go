// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"encoding/csv"
	"fmt"
	goio "io"
	"os"
	"path/filepath"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/jnvn7/SYNCOM/mdl/rope"
)

// NumFmt is the format of numbers in results files
var NumFmt = "% .5E"

// rows returns the values of the results table row by row
func (o *Results) rows() (rows [][]float64, err error) {
	cols := o.Columns()
	vals := make([][]float64, len(cols))
	for j, key := range cols {
		vals[j], err = o.Get(key)
		if err != nil {
			return
		}
	}
	rows = make([][]float64, len(o.Res))
	for i := range o.Res {
		rows[i] = make([]float64, len(cols))
		for j := range cols {
			rows[i][j] = vals[j][i]
		}
	}
	return
}

// WriteTable writes the results table with space separated columns
func (o *Results) WriteTable(w goio.Writer) (err error) {
	rows, err := o.rows()
	if err != nil {
		return
	}
	var buf bytes.Buffer
	for _, l := range o.GetLabels() {
		buf.WriteString(io.Sf("%-22s", l))
	}
	buf.WriteString("\n")
	for _, row := range rows {
		for _, v := range row {
			buf.WriteString(io.Sf(NumFmt+" ", v))
		}
		buf.WriteString("\n")
	}
	_, err = w.Write(buf.Bytes())
	return
}

// WriteCSV writes the results table as comma separated values
func (o *Results) WriteCSV(w goio.Writer) (err error) {
	rows, err := o.rows()
	if err != nil {
		return
	}
	cw := csv.NewWriter(w)
	if err = cw.Write(o.GetLabels()); err != nil {
		return
	}
	record := make([]string, len(o.Columns()))
	for _, row := range rows {
		for j, v := range row {
			record[j] = io.Sf(NumFmt, v)
		}
		if err = cw.Write(record); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}

// Save writes key_modN.csv and key_modN.txt to dirout and returns the file paths
func (o *Results) Save(dirout, key string) (files []string, err error) {
	mod, err := Module(o.Direction)
	if err != nil {
		return
	}
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return nil, chk.Err("cannot create directory for output %q:\n%v", dirout, err)
	}
	for _, w := range []struct {
		ext   string
		write func(goio.Writer) error
	}{{".csv", o.WriteCSV}, {".txt", o.WriteTable}} {
		var buf bytes.Buffer
		if err = w.write(&buf); err != nil {
			return
		}
		fn := filepath.Join(dirout, io.Sf("%s_mod%d%s", key, mod, w.ext))
		if err = os.WriteFile(fn, buf.Bytes(), 0644); err != nil {
			return nil, chk.Err("cannot write results file %q:\n%v", fn, err)
		}
		files = append(files, fn)
	}
	return
}

// WriteLog appends the outcome of a simulation to key_Log.txt in dirout
func WriteLog(dirout, key string, stamp time.Time, simErr error) (fn string, err error) {
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return "", chk.Err("cannot create directory for output %q:\n%v", dirout, err)
	}
	fn = filepath.Join(dirout, key+"_Log.txt")
	f, err := os.OpenFile(fn, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return "", chk.Err("cannot open log file %q:\n%v", fn, err)
	}
	defer f.Close()
	code, msg := rope.Complete, rope.Complete.Error()
	if simErr != nil {
		code, msg = rope.CodeOf(simErr), simErr.Error()
	}
	_, err = fmt.Fprintf(f, "%s  [%d] %s\n\n", stamp.Format(time.RFC1123), code, msg)
	return
}
