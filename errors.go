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

import "fmt"

// The error types below partition every failure the converter can hit into
// the categories callers key exit codes off of: configuration, resource,
// input, and output. Library code wraps and returns them; it never exits.

// ConfigError indicates the run configuration file could not be read or one
// of its fields could not be parsed.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("mat2nc: reading configuration %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ResourceError indicates the output grid was refused because its element
// count is outside the range the converter is willing to allocate.
type ResourceError struct {
	Cells int
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("mat2nc: refusing to allocate output grid of %d cells", e.Cells)
}

// InputError indicates the raw input file could not be opened or ran out of
// data partway through a chunk. Chunk is the output step being read when the
// failure occurred, or -1 if the file could not be opened at all.
type InputError struct {
	Chunk int
	Err   error
}

func (e *InputError) Error() string {
	if e.Chunk < 0 {
		return fmt.Sprintf("mat2nc: opening raw input: %v", e.Err)
	}
	return fmt.Sprintf("mat2nc: reading raw input at chunk %d: %v", e.Chunk, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// OutputError indicates a failure while defining or writing the output
// dataset. Step names the operation that failed. The output file must not be
// treated as valid after an OutputError.
type OutputError struct {
	Step string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("mat2nc: %s: %v", e.Step, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }
