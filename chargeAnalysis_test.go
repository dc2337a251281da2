package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millikan-lab/gochargeanalysis/config"
)

func writeMeasurementFile(t *testing.T, name string, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestAnalyzeFilesStopsAtUnreadableFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.dat")
	valid := writeMeasurementFile(t, "valid.dat", "1.0\n2.0\n3.0\n")
	output := &strings.Builder{}

	ok := analyzeFiles(config.Default(), output, []string{missing, valid})

	assert.False(t, ok)
	assert.Contains(t, output.String(), "Could not open file: "+missing+".")
	assert.Contains(t, output.String(), "Exiting...")
	assert.NotContains(t, output.String(), "File read from:")
}

func TestAnalyzeFilesKeepsGoingWhenConfigured(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.dat")
	valid := writeMeasurementFile(t, "valid.dat", "1.0\n2.0\n3.0\n")
	output := &strings.Builder{}

	c := config.Default()
	c.KeepGoing = true
	ok := analyzeFiles(c, output, []string{missing, valid})

	assert.True(t, ok)
	assert.Contains(t, output.String(), "Could not open file: "+missing+".")
	assert.NotContains(t, output.String(), "Exiting...")
	assert.Contains(t, output.String(), "File read from: "+valid)
	assert.Contains(t, output.String(), "(2 +/- 1.1547)C")
}

func TestAnalyzeFilesReportsCorruptDataPoints(t *testing.T) {
	path := writeMeasurementFile(t, "readings.dat", "1.0\nfoo\n3.0\n")
	output := &strings.Builder{}

	ok := analyzeFiles(config.Default(), output, []string{path})

	assert.True(t, ok)
	assert.Equal(t, 1, strings.Count(output.String(), "File: "+path+" has a corrupt data point."))
	assert.Contains(t, output.String(), "Skipping that data point.")
	assert.Contains(t, output.String(), "File read from: "+path)
}

func TestAnalyzeFilesContinuesPastTooSmallDataset(t *testing.T) {
	small := writeMeasurementFile(t, "small.dat", "1.0\n")
	valid := writeMeasurementFile(t, "valid.dat", "4.0\n6.0\n")
	output := &strings.Builder{}

	ok := analyzeFiles(config.Default(), output, []string{small, valid})

	assert.True(t, ok)
	assert.Contains(t, output.String(), "File: "+small+" does not have enough valid data points to analyze.")
	assert.Contains(t, output.String(), "File read from: "+valid)
}
