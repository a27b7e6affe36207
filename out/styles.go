// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

// GetLabel returns the column label of a quantity; the given quantity is marked
// with (in) and the computed one with (out)
func GetLabel(key, direction string) string {
	switch key {
	case "t":
		return "Time(s)"
	case "sig":
		if direction == "strain" {
			return "Stress(in)"
		}
		return "Stress(out)"
	case "eps":
		if direction == "strain" {
			return "Total_Strain(out)"
		}
		return "Total_Strain(in)"
	case "eve":
		return "Visco-elastic_Strain"
	case "evp":
		return "Visco-plastic_Strain"
	case "sy":
		return "Yield_Stress"
	case "te":
		return "Effective_Time"
	case "in":
		return "Input"
	case "nit":
		return "Iterations"
	}
	return key
}

// GetLabels returns the labels of the columns of the results table
func (o *Results) GetLabels() []string {
	cols := o.Columns()
	l := make([]string, len(cols))
	for i, key := range cols {
		l[i] = GetLabel(key, o.Direction)
	}
	return l
}
