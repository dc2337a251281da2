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

package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/millikan-lab/gochargeanalysis/dataset"
	"github.com/millikan-lab/gochargeanalysis/utilities"
)

var (
	// ErrEmptyDataset means a statistic was requested over zero readings.
	ErrEmptyDataset = errors.New("dataset contains no valid readings")
	// ErrInsufficientData means a sample statistic was requested over fewer
	// than two readings.
	ErrInsufficientData = errors.New("dataset contains too few valid readings")
)

// Mean returns the arithmetic mean of values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyDataset
	}
	return utilities.CalculateAverage(values), nil
}

// StandardDeviation returns the sample standard deviation of values around
// the supplied mean. The sum of squared differences is divided by n-1, so at
// least two values are required.
func StandardDeviation(values []float64, mean float64) (float64, error) {
	if len(values) < 2 {
		return 0, ErrInsufficientData
	}
	total := float64(0)
	for _, value := range values {
		total += math.Pow(value-mean, 2)
	}
	return math.Sqrt(total / float64(len(values)-1)), nil
}

// StandardErrorOfMean returns the uncertainty reported next to the mean:
// the mean scaled down by the square root of the number of readings.
func StandardErrorOfMean(mean float64, count int) (float64, error) {
	if count < 1 {
		return 0, ErrEmptyDataset
	}
	return mean / math.Sqrt(float64(count)), nil
}

// Report holds every statistic computed over a single dataset, ready to be
// rendered for the console.
type Report struct {
	SourcePath          string
	Mean                float64
	StandardDeviation   float64
	StandardErrorOfMean float64
	SampleCount         int
	Unit                string
}

// Analyze computes the full set of statistics for ds. The dataset must hold
// at least two valid readings; with fewer there is no sample standard
// deviation to report.
func Analyze(ds *dataset.Dataset, unit string) (*Report, error) {
	values := ds.Values()

	mean, err := Mean(values)
	if err != nil {
		return nil, fmt.Errorf("could not analyze %s: %w", ds.Path(), err)
	}
	stddev, err := StandardDeviation(values, mean)
	if err != nil {
		return nil, fmt.Errorf("could not analyze %s: %w", ds.Path(), err)
	}
	sem, err := StandardErrorOfMean(mean, ds.Len())
	if err != nil {
		return nil, fmt.Errorf("could not analyze %s: %w", ds.Path(), err)
	}

	return &Report{
		SourcePath:          ds.Path(),
		Mean:                mean,
		StandardDeviation:   stddev,
		StandardErrorOfMean: sem,
		SampleCount:         ds.Len(),
		Unit:                unit,
	}, nil
}

func (report *Report) String() string {
	return fmt.Sprintf(
		`File read from: %s
    The computed mean is:
        (%.6g +/- %.6g)%s
    The computed standard deviation is:
        %.6g%s
    Valid data points: %d
`,
		report.SourcePath,
		report.Mean,
		report.StandardErrorOfMean,
		report.Unit,
		report.StandardDeviation,
		report.Unit,
		report.SampleCount,
	)
}
