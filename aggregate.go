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
	"encoding/binary"
	"io"
	"math"

	"github.com/ctessum/sparse"
)

// MaxGridCells is the largest output grid element count the converter will
// allocate. Beyond this the run is refused rather than letting the process
// die trying.
const MaxGridCells = 1 << 30

// NewOutputGrid allocates the (time, lat, lon) output array for cfg.
func NewOutputGrid(cfg *Config, grid Grid) (*sparse.DenseArray, error) {
	cells := cfg.Ntot() * grid.Size()
	if cells <= 0 || cells > MaxGridCells {
		return nil, &ResourceError{Cells: cells}
	}
	return sparse.ZerosDense(cfg.Ntot(), grid.Nlat, grid.Nlon), nil
}

// Aggregate reads cfg.Ntot() chunks of cfg.Ntavg raw slices each from r,
// sums the slices of each chunk element-wise, and stores the sums in out,
// transposed from the input's longitude-major layout to (time, lat, lon).
//
// The raw input is a headerless sequence of 32-bit floats in host byte
// order, one [lon][lat] slice per time step. Raw slices beyond
// Ntot()×Ntavg are never read. The chunk sums are not divided by Ntavg:
// each output step holds the plain sum of its slices, which downstream
// consumers rely on.
//
// Truncation partway through a chunk is fatal; out must not be used after
// an error.
func Aggregate(cfg *Config, grid Grid, r io.Reader, out *sparse.DenseArray) error {
	size := grid.Size()
	buf := make([]byte, 4*cfg.Ntavg*size)
	acc := make([]float32, size)
	for ichunk := 0; ichunk < cfg.Ntot(); ichunk++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return &InputError{Chunk: ichunk, Err: err}
		}

		// Sum the chunk's slices. The accumulator stays in single
		// precision to reproduce the input data's own arithmetic.
		for i := range acc {
			acc[i] = 0
		}
		for islice := 0; islice < cfg.Ntavg; islice++ {
			s := buf[4*islice*size:]
			for i := 0; i < size; i++ {
				acc[i] += math.Float32frombits(binary.NativeEndian.Uint32(s[4*i:]))
			}
		}

		// The accumulator is longitude-major; transpose into the
		// (time, lat, lon) plane for this output step.
		for j := 0; j < grid.Nlon; j++ {
			for i := 0; i < grid.Nlat; i++ {
				out.Set(float64(acc[grid.Nlat*j+i]), ichunk, i, j)
			}
		}
	}
	return nil
}
