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
package utilities

import (
	"testing"
)

func TestCalculateAverageOfFloats(t *testing.T) {
	elements := []float64{1.0, 2.0, 3.0}
	if average := CalculateAverage(elements); average != 2.0 {
		t.Fatalf("Average of %v was %v and not 2.0.", elements, average)
	}
}

func TestCalculateAverageOfInts(t *testing.T) {
	elements := []int{2, 3, 4, 5}
	if average := CalculateAverage(elements); average != 3.5 {
		t.Fatalf("Average of %v was %v and not 3.5.", elements, average)
	}
}

func TestApproximatelyEqualWithinTolerance(t *testing.T) {
	if !ApproximatelyEqual(1.1547, 1.1547005, 0.001) {
		t.Fatalf("1.1547005 should be within 0.001 of 1.1547.")
	}
}

func TestApproximatelyEqualOutsideTolerance(t *testing.T) {
	if ApproximatelyEqual(1.0, 1.5, 0.1) {
		t.Fatalf("1.5 should not be within 0.1 of 1.0.")
	}
}

func TestConditional(t *testing.T) {
	if Conditional(true, "t", "f") != "t" {
		t.Fatalf("Conditional failed to select the first alternative.")
	}
	if Conditional(false, "t", "f") != "f" {
		t.Fatalf("Conditional failed to select the second alternative.")
	}
}
