/*
 * This file is part of Go Charge Analysis.
 *
 * Go Charge Analysis is free software: you can redistribute it and/or modify it under
 * the terms of the GNU General Public License as published by the Free Software Foundation,
 * either version 2 of the License, or (at your option) any later version.
 * Go Charge Analysis is distributed in the hope that it will be useful, but WITHOUT ANY
 * WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR A
 * PARTICULAR PURPOSE. See the GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License along
 * with Go Charge Analysis. If not, see <https://www.gnu.org/licenses/>.
 */

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/millikan-lab/gochargeanalysis/analysis"
	"github.com/millikan-lab/gochargeanalysis/config"
	"github.com/millikan-lab/gochargeanalysis/dataset"
	"github.com/millikan-lab/gochargeanalysis/prompt"
)

var (
	// Variables to hold command line arguments.
	configPath = flag.String(
		"config",
		"",
		"path to an optional YAML configuration file.",
	)
	keepGoing = flag.Bool(
		"keep-going",
		false,
		"continue with the remaining files when one cannot be opened.",
	)
	logLevel = flag.String(
		"log-level",
		"",
		"diagnostic log level (debug, info, warn, error).",
	)
	quiet = flag.Bool(
		"quiet",
		false,
		"suppress the welcome banner.",
	)
)

func flagWasPassed(name string) bool {
	passed := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			passed = true
		}
	})
	return passed
}

// gatherFiles asks the user for filenames until they decline to add
// another. An empty answer selects the configured default data file.
// Exhausted input or an unanswerable yes/no question ends the collection
// with whatever was gathered so far.
func gatherFiles(c *config.Config) []string {
	prompter := prompt.NewPrompter(os.Stdin, os.Stdout, c.PromptAttempts)
	files := make([]string, 0)
	for {
		name, err := prompter.Line(
			"Please enter the name of the file you wish to load:",
		)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				slog.Warn("Could not read from the console", "error", err)
			}
			break
		}
		if name == "" {
			name = c.DefaultDataFile
		}
		files = append(files, name)

		more, err := prompter.Bool(
			"Is there another file you'd like to load? [y/n]",
		)
		if err != nil {
			if !errors.Is(err, io.EOF) &&
				!errors.Is(err, prompt.ErrTooManyAttempts) {
				slog.Warn("Could not read from the console", "error", err)
			}
			break
		}
		if !more {
			break
		}
	}
	return files
}

// analyzeFiles loads and reports on every file in turn, writing the
// console output to out. It returns false when a file could not be read
// and the configuration does not allow continuing without it.
func analyzeFiles(c *config.Config, out io.Writer, paths []string) bool {
	for _, path := range paths {
		ds, err := dataset.Load(path)
		if err != nil {
			var oe *dataset.OpenError
			if errors.As(err, &oe) {
				fmt.Fprintf(out, "Could not open file: %s.\n", path)
			} else {
				fmt.Fprintf(out, "Could not read file: %s.\n", path)
			}
			if c.KeepGoing {
				slog.Warn(
					"Skipping a file that could not be read",
					"path", path,
					"error", err,
				)
				continue
			}
			fmt.Fprintln(out, "Exiting...")
			return false
		}

		slog.Debug("Loaded a measurement file", "dataset", ds.String())
		for i := 0; i < ds.Skipped(); i++ {
			fmt.Fprintf(out, "File: %s has a corrupt data point.\n", path)
			fmt.Fprintln(out, "Skipping that data point.")
		}

		report, err := analysis.Analyze(ds, c.Unit)
		if err != nil {
			fmt.Fprintf(
				out,
				"File: %s does not have enough valid data points to analyze.\n",
				path,
			)
			slog.Warn(
				"Not enough valid readings to analyze",
				"path", path,
				"error", err,
			)
			continue
		}
		fmt.Fprint(out, report.String())
	}
	return true
}

func main() {
	flag.Parse()

	c, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if flagWasPassed("keep-going") {
		c.KeepGoing = *keepGoing
	}
	if flagWasPassed("log-level") {
		c.LogLevel = *logLevel
		if err := c.IsValid(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: c.SlogLevel(),
		})),
	)
	slog.Debug("Resolved the configuration", "configuration", c.String())

	if !*quiet {
		fmt.Println("Welcome to the impetuous charge calculator!")
	}

	files := flag.Args()
	if len(files) == 0 {
		files = gatherFiles(c)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "Error: No measurement files to analyze.\n")
		os.Exit(2)
	}

	if !analyzeFiles(c, os.Stdout, files) {
		os.Exit(1)
	}
}
