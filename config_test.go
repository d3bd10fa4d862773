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
	"errors"
	"reflect"
	"strings"
	"testing"
)

const sampleConfig = `streamflow.dat
streamflow.nc
natural_streamflow
km^3
year
2006
1
1140
12
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Infile:    "streamflow.dat",
		Outfile:   "streamflow.nc",
		VarName:   "natural_streamflow",
		VarUnit:   "km^3",
		TimeUnit:  "year",
		TimeStart: 2006,
		TimeInc:   1,
		Ntin:      1140,
		Ntavg:     12,
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("want %+v, got %+v", want, cfg)
	}
	if got := cfg.Ntot(); got != 95 {
		t.Errorf("Ntot: want 95, got %d", got)
	}
}

func TestNtotFloorDivision(t *testing.T) {
	tests := []struct {
		ntin, ntavg, want int
	}{
		{10, 3, 3},
		{12, 12, 1},
		{13, 12, 1},
		{7, 1, 7},
		{7, 0, 0}, // hand-built config; must not divide by zero
	}
	for _, test := range tests {
		c := Config{Ntin: test.ntin, Ntavg: test.ntavg}
		if got := c.Ntot(); got != test.want {
			t.Errorf("Ntot(%d/%d): want %d, got %d",
				test.ntin, test.ntavg, test.want, got)
		}
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		field string
	}{
		{
			name:  "empty",
			text:  "",
			field: "input file",
		},
		{
			name:  "truncated",
			text:  "a.dat a.nc flow km^3 year 2006",
			field: "time increment",
		},
		{
			name:  "bad time start",
			text:  "a.dat a.nc flow km^3 year x 1 12 3",
			field: "time start",
		},
		{
			name:  "bad slice count",
			text:  "a.dat a.nc flow km^3 year 2006 1 twelve 3",
			field: "slice count",
		},
		{
			name:  "zero averaging factor",
			text:  "a.dat a.nc flow km^3 year 2006 1 12 0",
			field: "averaging factor",
		},
		{
			name:  "averaging factor exceeds slices",
			text:  "a.dat a.nc flow km^3 year 2006 1 3 12",
			field: "averaging factor",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseConfig(strings.NewReader(test.text))
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("want ConfigError, got %v", err)
			}
			if cfgErr.Field != test.field {
				t.Errorf("field: want %q, got %q", test.field, cfgErr.Field)
			}
		})
	}
}
