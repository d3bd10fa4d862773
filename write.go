/*
Copyright © 2026 the mat2nc authors.
This file is part of mat2nc.

mat2nc is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

mat2nc is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with mat2nc.  If not, see <http://www.gnu.org/licenses/>.
*/

package mat2nc

import (
	"fmt"
	"os"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
)

// WriteNetCDF writes the aggregated data to rw as a NetCDF dataset with
// four float32 variables: the lat, lon and time coordinate variables and
// the cfg.VarName data variable with shape (time, lat, lon). The whole
// schema is defined before any data is written; the classic format lays
// out the header first.
func WriteNetCDF(cfg *Config, grid Grid, data *sparse.DenseArray, rw cdf.ReaderWriterAt) error {
	switch cfg.VarName {
	case "lat", "lon", "time":
		return &OutputError{Step: "defining dataset schema",
			Err: fmt.Errorf("variable name %q collides with a coordinate variable", cfg.VarName)}
	}

	ntot := cfg.Ntot()
	h := cdf.NewHeader([]string{"time", "lat", "lon"}, []int{ntot, grid.Nlat, grid.Nlon})
	h.AddVariable("lat", []string{"lat"}, []float32{0})
	h.AddAttribute("lat", "units", "degrees_north")
	h.AddVariable("lon", []string{"lon"}, []float32{0})
	h.AddAttribute("lon", "units", "degrees_east")
	h.AddVariable("time", []string{"time"}, []float32{0})
	h.AddAttribute("time", "units", cfg.TimeUnit)
	h.AddVariable(cfg.VarName, []string{"time", "lat", "lon"}, []float32{0})
	h.AddAttribute(cfg.VarName, "units", cfg.VarUnit)
	h.Define()
	for _, err := range h.Check() {
		return &OutputError{Step: "defining dataset schema", Err: err}
	}

	f, err := cdf.Create(rw, h)
	if err != nil {
		return &OutputError{Step: "writing dataset header", Err: err}
	}

	if err := putFloats(f, "lat", grid.LatCoords()); err != nil {
		return err
	}
	if err := putFloats(f, "lon", grid.LonCoords()); err != nil {
		return err
	}
	times := make([]float32, ntot)
	for i := range times {
		times[i] = float32(cfg.TimeStart + float64(i)*cfg.TimeInc)
	}
	if err := putFloats(f, "time", times); err != nil {
		return err
	}
	vals := make([]float32, len(data.Elements))
	for i, v := range data.Elements {
		vals[i] = float32(v)
	}
	return putFloats(f, cfg.VarName, vals)
}

func putFloats(f *cdf.File, v string, vals []float32) error {
	// The writer's end bound must be one element past the data; a nil
	// bound stops at the last byte and reports a complete write as EOF.
	end := f.Header.Lengths(v)
	start := make([]int, len(end))
	w := f.Writer(v, start, end)
	if _, err := w.Write(vals); err != nil {
		return &OutputError{Step: fmt.Sprintf("writing variable %s", v), Err: err}
	}
	return nil
}

// CreateNetCDF creates cfg.Outfile, overwriting any existing file, and
// writes the dataset to it. On error the file may exist but must not be
// treated as a valid dataset.
func CreateNetCDF(cfg *Config, grid Grid, data *sparse.DenseArray) error {
	ff, err := os.Create(cfg.Outfile)
	if err != nil {
		return &OutputError{Step: "creating output file", Err: err}
	}
	if err := WriteNetCDF(cfg, grid, data, ff); err != nil {
		ff.Close()
		return err
	}
	// Replace the streaming marker in the header with the real record
	// count so that other NetCDF libraries accept the file.
	if err := cdf.UpdateNumRecs(ff); err != nil {
		ff.Close()
		return &OutputError{Step: "finalizing output file", Err: err}
	}
	if err := ff.Close(); err != nil {
		return &OutputError{Step: "closing output file", Err: err}
	}
	return nil
}
