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

// Package mat2ncutil wires the mat2nc library into a command-line tool.
package mat2ncutil

import (
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gridtools/mat2nc"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger *logrus.Logger

var options []struct {
	name, usage string
	defaultVal  interface{}
	flagsets    []*pflag.FlagSet
}

func init() {
	logger = logrus.StandardLogger()

	options = []struct {
		name, usage string
		defaultVal  interface{}
		flagsets    []*pflag.FlagSet
	}{
		{
			name: "nlat",
			usage: `
              nlat specifies the number of latitude cells in the input and
              output grids.`,
			defaultVal: mat2nc.DefaultGrid.Nlat,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "nlon",
			usage: `
              nlon specifies the number of longitude cells in the input and
              output grids.`,
			defaultVal: mat2nc.DefaultGrid.Nlon,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "loglevel",
			usage: `
              loglevel sets the verbosity of progress logging
              (debug, info, warn, or error).`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
	}

	Cfg = viper.New()
	Cfg.SetEnvPrefix("MAT2NC")
	Cfg.AutomaticEnv()
	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				set.String(option.name, option.defaultVal.(string), option.usage)
			case int:
				set.Int(option.name, option.defaultVal.(int), option.usage)
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}

	Root.AddCommand(convertCmd)
	Root.AddCommand(describeCmd)
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "mat2nc CONFIGFILE",
	Short: "Package raw gridded time series as NetCDF datasets.",
	Long: `mat2nc reads a flat binary time series of global spatial grids,
combines groups of consecutive time slices, and writes the result as a
NetCDF dataset with latitude, longitude, and time coordinate axes.

Configuration can be changed by using command-line arguments or by setting
environment variables in the format 'MAT2NC_var' where 'var' is the name of
the variable to be set.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	SilenceErrors:     true,
	Args:              cobra.ExactArgs(1),
	PersistentPreRunE: func(*cobra.Command, []string) error { return setLogLevel() },
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args[0])
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert CONFIGFILE",
	Short: "Convert a raw binary time series to NetCDF.",
	Long: `convert reads the conversion configuration from CONFIGFILE, aggregates
the raw input it names, and writes the output dataset. CONFIGFILE holds nine
whitespace-delimited fields: input path, output path, variable name,
variable unit, time unit, time start, time increment, raw slice count, and
the number of raw slices combined into each output step.`,
	DisableAutoGenTag: true,
	Args:              cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args[0])
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe DATASET",
	Short: "Print the dimensions and variables of a NetCDF dataset.",
	Long: `describe opens an existing NetCDF dataset and logs each variable with
its dimensions, type, length, and units. It is intended for checking
conversion output without a separate NetCDF toolchain.`,
	DisableAutoGenTag: true,
	Args:              cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return describe(args[0])
	},
}

func setLogLevel() error {
	level, err := logrus.ParseLevel(cast.ToString(Cfg.Get("loglevel")))
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	return nil
}

func gridFromConfig() mat2nc.Grid {
	return mat2nc.Grid{
		Nlat: cast.ToInt(Cfg.Get("nlat")),
		Nlon: cast.ToInt(Cfg.Get("nlon")),
	}
}

func runConvert(configFile string) error {
	cfg, err := mat2nc.ReadConfig(configFile)
	if err != nil {
		return err
	}
	grid := gridFromConfig()
	logger.WithFields(logrus.Fields{
		"input":  cfg.Infile,
		"output": cfg.Outfile,
		"nlat":   grid.Nlat,
		"nlon":   grid.Nlon,
		"chunks": cfg.Ntot(),
	}).Info("converting")
	if err := mat2nc.Convert(cfg, grid); err != nil {
		return err
	}
	logger.WithField("file", cfg.Outfile).Info("wrote dataset")
	return nil
}
