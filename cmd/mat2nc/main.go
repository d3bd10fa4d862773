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

// Command mat2nc is a command-line interface for packaging raw gridded
// time series as NetCDF datasets.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gridtools/mat2nc"
	"github.com/gridtools/mat2nc/mat2ncutil"
)

// Exit codes, stable for callers: 0 success, 1 usage, 2 configuration,
// 3 resource, 4 input, 5 output.
func exitCode(err error) int {
	var (
		cfgErr *mat2nc.ConfigError
		resErr *mat2nc.ResourceError
		inErr  *mat2nc.InputError
		outErr *mat2nc.OutputError
	)
	switch {
	case errors.As(err, &cfgErr):
		return 2
	case errors.As(err, &resErr):
		return 3
	case errors.As(err, &inErr):
		return 4
	case errors.As(err, &outErr):
		return 5
	}
	return 1
}

func main() {
	if err := mat2ncutil.Root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
