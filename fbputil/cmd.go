/*
Copyright © 2026 the fbp authors.
This file is part of fbp.

fbp is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

fbp is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with fbp.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package fbputil provides the command-line interface around the fbp fire
// behavior model: configuration handling, the observation file reader and
// result writer, and batch summary reporting.
package fbputil

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/wildfiremodel/fbp"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to fbp.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "observations",
			usage: `
              observations specifies the CSV file holding the station
              observations to evaluate. Azimuths are in degrees.`,
			shorthand:  "o",
			defaultVal: "observations.csv",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "output",
			usage: `
              output specifies the CSV file the primary fire behavior
              outputs are written to.`,
			defaultVal: "fbp_out.csv",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "summary",
			usage: `
              summary specifies whether to log distribution statistics of
              the computed spread rates and intensities after a run.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "loglevel",
			usage: `
              loglevel sets the logging verbosity (debug, info, warn, error).`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("FBP")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, v, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, v, option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, v, option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, v, option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, v, option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, v, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
}

// setConfig finds and reads in the configuration file, if there is one, and
// applies the requested log level.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("fbp: problem reading configuration file: %v", err)
		}
	}
	level, err := log.ParseLevel(Cfg.GetString("loglevel"))
	if err != nil {
		return fmt.Errorf("fbp: %v", err)
	}
	log.SetLevel(level)
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "fbp",
	Short: "A wildland fire behavior prediction model.",
	Long: `fbp predicts wildland fire spread rate, crown involvement, fuel
consumption, and fire intensity from Fire Weather Index System codes and a
fuel type description, following the Canadian Forest Fire Behavior
Prediction System.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format 'FBP_var'
where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of fbp.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("fbp v%s\n", fbp.Version)
	},
	DisableAutoGenTag: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evaluate fire behavior for a file of observations",
	Long: `run reads station observations from the CSV file given by the
observations option, evaluates the FBP primary outputs for each of them in
parallel, and writes the results to the output CSV file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		obsPath := Cfg.GetString("observations")
		outPath := Cfg.GetString("output")

		f, err := os.Open(obsPath)
		if err != nil {
			return fmt.Errorf("fbp: opening observations: %v", err)
		}
		defer f.Close()
		obs, err := ReadObservations(f)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"observations": len(obs),
			"file":         obsPath,
		}).Info("evaluating fire behavior")

		results := fbp.EvaluateBatch(obs)

		w, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("fbp: creating output: %v", err)
		}
		defer w.Close()
		if err := WriteResults(w, obs, results); err != nil {
			return err
		}
		if Cfg.GetBool("summary") {
			LogSummary(results)
		}
		log.WithField("file", outPath).Info("finished")
		return nil
	},
	DisableAutoGenTag: true,
}
