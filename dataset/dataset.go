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

package dataset

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// OpenError describes a measurement file that could not be opened. The
// caller decides whether that ends the whole run or only skips the file.
type OpenError struct {
	Path string
	Err  error
}

func (oe *OpenError) Error() string {
	return fmt.Sprintf("could not open %s: %v", oe.Path, oe.Err)
}

func (oe *OpenError) Unwrap() error {
	return oe.Err
}

// Dataset is the ordered collection of valid charge readings taken from a
// single measurement file, together with a count of the lines that were
// rejected along the way.
type Dataset struct {
	path    string
	values  []float64
	skipped int
}

func (ds *Dataset) Path() string {
	return ds.path
}

// Values returns a copy of the readings so callers cannot disturb the
// loaded dataset.
func (ds *Dataset) Values() []float64 {
	return slices.Clone(ds.values)
}

func (ds *Dataset) Len() int {
	return len(ds.values)
}

// Skipped returns the number of lines that did not survive validation.
func (ds *Dataset) Skipped() int {
	return ds.skipped
}

func (ds *Dataset) String() string {
	return fmt.Sprintf(
		"%d valid readings (%d skipped) from %s",
		len(ds.values),
		ds.skipped,
		ds.path,
	)
}

// Load reads the measurement file at path one line at a time. A line is a
// valid reading when, after trimming surrounding whitespace, it parses as a
// finite floating-point number that is not negative. Invalid lines are
// counted and skipped; they never abort the load. Order of the surviving
// readings matches their order in the file.
func Load(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	defer file.Close()

	capacity, err := countLines(file)
	if err != nil {
		return nil, fmt.Errorf("could not presize the dataset for %s: %w", path, err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("could not rewind %s after counting its lines: %w", path, err)
	}

	ds := &Dataset{
		path:    path,
		values:  make([]float64, 0, capacity),
		skipped: 0,
	}

	// ReadString tolerates lines of any length; a fixed scanner buffer
	// would turn one oversized corrupt line into a failed load.
	reader := bufio.NewReader(file)
	lineNumber := 0
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("could not read %s: %w", path, readErr)
		}
		if line != "" {
			lineNumber++
			trimmed := strings.TrimSpace(line)
			value, err := strconv.ParseFloat(trimmed, 64)
			if err != nil || value < 0.0 || math.IsNaN(value) || math.IsInf(value, 0) {
				ds.skipped++
				slog.Debug(
					"Skipping a corrupt data point",
					"path", path,
					"line", lineNumber,
					"contents", trimmed,
				)
			} else {
				ds.values = append(ds.values, value)
			}
		}
		if readErr != nil {
			break
		}
	}
	return ds, nil
}

// countLines counts the newlines in r. The count is only a capacity hint
// for the dataset, so a final line without a terminator may be undercounted.
func countLines(r io.Reader) (int, error) {
	buffer := make([]byte, 64*1024)
	count := 0
	for {
		n, err := r.Read(buffer)
		count += bytes.Count(buffer[:n], []byte{'\n'})
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return 0, err
		}
	}
}
