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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Config describes one conversion run. The fields appear in the
// configuration file in declaration order, one whitespace-delimited token
// each. For example, to package monthly data into yearly slices starting
// in 2006:
//
//	streamflow.dat
//	streamflow.nc
//	natural_streamflow
//	km^3
//	year
//	2006
//	1
//	1140
//	12
type Config struct {
	Infile    string  // path to the raw binary input
	Outfile   string  // path to the NetCDF output (overwritten if present)
	VarName   string  // name of the data variable in the output
	VarUnit   string  // units attribute for the data variable
	TimeUnit  string  // units attribute for the time axis
	TimeStart float64 // time coordinate of the first output step
	TimeInc   float64 // time coordinate increment per output step
	Ntin      int     // number of time slices in the raw input
	Ntavg     int     // raw slices combined into one output step
}

// Ntot returns the number of output time steps. Integer division: raw
// slices left over from an incomplete final chunk are dropped, not read.
// A config with Ntavg < 1 (which ParseConfig never produces) has no
// output steps.
func (c *Config) Ntot() int {
	if c.Ntavg < 1 {
		return 0
	}
	return c.Ntin / c.Ntavg
}

// ReadConfig reads a conversion configuration from the file at path.
func ReadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigError{Field: "file", Err: err}
	}
	defer f.Close()
	return ParseConfig(f)
}

// ParseConfig parses the nine configuration tokens from r. There is no
// quoting or escaping; paths and names therefore cannot contain whitespace.
func ParseConfig(r io.Reader) (*Config, error) {
	p := &configParser{scan: bufio.NewScanner(r)}
	p.scan.Split(bufio.ScanWords)

	c := new(Config)
	c.Infile = p.nextString("input file")
	c.Outfile = p.nextString("output file")
	c.VarName = p.nextString("variable name")
	c.VarUnit = p.nextString("variable unit")
	c.TimeUnit = p.nextString("time unit")
	c.TimeStart = p.nextFloat("time start")
	c.TimeInc = p.nextFloat("time increment")
	c.Ntin = p.nextInt("slice count")
	c.Ntavg = p.nextInt("averaging factor")
	if p.err != nil {
		return nil, p.err
	}

	if c.Ntin < 1 {
		return nil, &ConfigError{Field: "slice count",
			Err: fmt.Errorf("must be positive; got %d", c.Ntin)}
	}
	if c.Ntavg < 1 {
		return nil, &ConfigError{Field: "averaging factor",
			Err: fmt.Errorf("must be positive; got %d", c.Ntavg)}
	}
	// A zero-length time dimension would become a record dimension in the
	// classic NetCDF format, so refuse configurations that produce no
	// output steps at all.
	if c.Ntavg > c.Ntin {
		return nil, &ConfigError{Field: "averaging factor",
			Err: fmt.Errorf("%d exceeds the slice count %d", c.Ntavg, c.Ntin)}
	}
	return c, nil
}

// configParser reads whitespace-delimited scalars, remembering the first
// failure so the field reads can be written straight through.
type configParser struct {
	scan *bufio.Scanner
	err  error
}

func (p *configParser) nextString(field string) string {
	if p.err != nil {
		return ""
	}
	if !p.scan.Scan() {
		err := p.scan.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		p.err = &ConfigError{Field: field, Err: err}
		return ""
	}
	return p.scan.Text()
}

func (p *configParser) nextFloat(field string) float64 {
	tok := p.nextString(field)
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		p.err = &ConfigError{Field: field, Err: err}
		return 0
	}
	return v
}

func (p *configParser) nextInt(field string) int {
	tok := p.nextString(field)
	if p.err != nil {
		return 0
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		p.err = &ConfigError{Field: field, Err: err}
		return 0
	}
	return v
}
