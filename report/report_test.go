package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnegrid/maxclique-bench/report"
)

func TestWriteCSV_HeaderAndRow(t *testing.T) {
	rows := []report.Row{
		{
			Dataset:     "triangle",
			Algorithm:   "tomita",
			Elapsed:     1500 * time.Microsecond,
			CliqueSize:  3,
			NumVertices: 3,
			NumEdges:    3,
			Density:     1.0,
			Proven:      true,
			Valid:       true,
		},
	}

	var buf bytes.Buffer
	err := report.WriteCSV(&buf, rows)
	require.NoError(t, err)

	lines := buf.String()
	assert.Contains(t, lines, "dataset,algorithm,time_us,time_ms,clique_size,num_vertices,num_edges,density,proven,valid")
	assert.Contains(t, lines, "triangle,tomita,1500,1.500,3,3,3,1.000000,true,true")
}

func TestWriteCSV_EmptyRows(t *testing.T) {
	var buf bytes.Buffer
	err := report.WriteCSV(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, "dataset,algorithm,time_us,time_ms,clique_size,num_vertices,num_edges,density,proven,valid\n", buf.String())
}

func TestWriteCSV_MultipleRows(t *testing.T) {
	rows := []report.Row{
		{Dataset: "a", Algorithm: "bk-basic", CliqueSize: 2, Valid: true},
		{Dataset: "a", Algorithm: "bbmc", CliqueSize: 2, Valid: true, Proven: true},
	}
	var buf bytes.Buffer
	err := report.WriteCSV(&buf, rows)
	require.NoError(t, err)

	recordCount := 0
	for _, line := range []byte(buf.String()) {
		if line == '\n' {
			recordCount++
		}
	}
	assert.Equal(t, 3, recordCount) // header + 2 rows
}
