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

// Package mat2nc converts flat binary time series of global spatial grids
// into self-describing NetCDF datasets, aggregating groups of consecutive
// time slices and reordering each slice from longitude-major storage to the
// (time, lat, lon) output layout.
package mat2nc

// Grid holds the spatial dimensions of the data being converted. Every raw
// input slice and every plane of the output grid has Nlat × Nlon cells.
type Grid struct {
	Nlat int // number of latitude cells
	Nlon int // number of longitude cells
}

// DefaultGrid is the global half-degree grid the raw input files are
// produced on.
var DefaultGrid = Grid{Nlat: 360, Nlon: 720}

// Size returns the number of cells in one time slice.
func (g Grid) Size() int { return g.Nlat * g.Nlon }

// LatCoords returns the latitude cell centers in degrees north, ascending.
// For the default grid these run from -89.75° to 89.75° at 0.5° spacing.
func (g Grid) LatCoords() []float32 { return cellCenters(g.Nlat, 180) }

// LonCoords returns the longitude cell centers in degrees east, ascending.
// For the default grid these run from -179.75° to 179.75° at 0.5° spacing.
func (g Grid) LonCoords() []float32 { return cellCenters(g.Nlon, 360) }

func cellCenters(n int, span float64) []float32 {
	d := span / float64(n)
	c := make([]float32, n)
	for i := range c {
		c[i] = float32(-span/2 + d/2 + float64(i)*d)
	}
	return c
}
