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

package mat2ncutil

import (
	"fmt"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/sirupsen/logrus"
)

// describe opens the dataset at path and logs one line per variable.
func describe(path string) error {
	nc, err := netcdf.Open(path)
	if err != nil {
		return fmt.Errorf("mat2nc: opening dataset %s: %w", path, err)
	}
	defer nc.Close()

	for _, name := range nc.ListVariables() {
		vg, err := nc.GetVarGetter(name)
		if err != nil {
			return fmt.Errorf("mat2nc: describing variable %s: %w", name, err)
		}
		entry := logger.WithFields(logrus.Fields{
			"dims": vg.Dimensions(),
			"type": vg.Type(),
			"len":  vg.Len(),
		})
		if units, ok := vg.Attributes().Get("units"); ok {
			entry = entry.WithField("units", units)
		}
		entry.Info(name)
	}
	return nil
}
