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

package constants

var (
	// The measurement file consulted when the user gives an empty answer
	// at the interactive filename prompt.
	DefaultDataFile string = "millikan.dat"

	// The unit label appended to every reported statistic.
	DefaultUnit string = "C"

	// Whether a file that cannot be opened aborts the entire run or only
	// skips that file.
	DefaultKeepGoing bool = false

	// The number of times an unrecognized interactive answer is re-asked
	// before the prompt gives up.
	DefaultPromptAttempts int = 3

	// The default level for diagnostic logging.
	DefaultLogLevel string = "warn"
)
