package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// header is the fixed column order every CSV this package writes uses.
var header = []string{
	"dataset", "algorithm", "time_us", "time_ms",
	"clique_size", "num_vertices", "num_edges", "density", "proven", "valid",
}

// Row is one benchmark measurement: one solver variant run against one
// dataset.
type Row struct {
	Dataset     string
	Algorithm   string
	Elapsed     time.Duration
	CliqueSize  int
	NumVertices int
	NumEdges    int
	Density     float64
	Proven      bool
	Valid       bool
}

// WriteCSV writes rows to w as CSV with the fixed header above, one
// record per row, in the order given.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("report: writing header: %w", err)
	}

	for i, r := range rows {
		if err := cw.Write(r.record()); err != nil {
			return fmt.Errorf("report: writing row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: flushing: %w", err)
	}

	return nil
}

// record renders one Row in the column order of header.
func (r Row) record() []string {
	us := r.Elapsed.Microseconds()
	ms := float64(r.Elapsed.Microseconds()) / 1000.0

	return []string{
		r.Dataset,
		r.Algorithm,
		strconv.FormatInt(us, 10),
		strconv.FormatFloat(ms, 'f', 3, 64),
		strconv.Itoa(r.CliqueSize),
		strconv.Itoa(r.NumVertices),
		strconv.Itoa(r.NumEdges),
		strconv.FormatFloat(r.Density, 'f', 6, 64),
		strconv.FormatBool(r.Proven),
		strconv.FormatBool(r.Valid),
	}
}
