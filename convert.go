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

import "os"

// Convert runs one full conversion: open the raw input, aggregate it into
// the output grid, and write the NetCDF dataset to cfg.Outfile. Each phase
// runs to completion before the next begins, and the first error from any
// phase aborts the run.
func Convert(cfg *Config, grid Grid) error {
	in, err := os.Open(cfg.Infile)
	if err != nil {
		return &InputError{Chunk: -1, Err: err}
	}
	defer in.Close()

	data, err := NewOutputGrid(cfg, grid)
	if err != nil {
		return err
	}
	if err := Aggregate(cfg, grid, in, data); err != nil {
		return err
	}
	return CreateNetCDF(cfg, grid, data)
}
