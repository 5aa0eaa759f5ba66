package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arnegrid/maxclique-bench/core"
)

// LoadGraph reads every non-comment, non-blank line of r and builds a
// core.Graph from the edges found. Two input formats are recognized,
// detected per line rather than by any header or file extension:
//
//   - SNAP-like: two whitespace-separated non-negative integers, "u v",
//     optionally prefixed by "#" comment lines.
//   - DIMACS clique format: "c ..." comment lines, one "p edge N M"
//     problem-size line (skipped without being parsed; the graph size
//     comes from the edges actually present), and "e u v" edge lines.
//     Any line starting with "c" or "p" is skipped.
//
// Vertex ids are passed through untouched (1-indexed DIMACS ids remap
// to a dense range exactly like any other external id; core.Build does
// not require a contiguous or zero-based input range).
//
// Stage 1 (Scan): read every line, classify it, and accumulate edges.
// Stage 2 (Finalize): hand the accumulated edges to core.Build.
func LoadGraph(r io.Reader) (*core.Graph, *core.IDMap, error) {
	edges := make([]core.EdgePair, 0, 1024)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		edge, isEdge, skip, err := classifyLine(line)
		if err != nil {
			return nil, nil, fmt.Errorf("%w at line %d: %q", ErrMalformedLine, lineNo, line)
		}
		if skip {
			continue
		}
		if isEdge {
			edges = append(edges, edge)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("loader: reading input: %w", err)
	}

	return core.Build(edges)
}

// classifyLine parses one already-trimmed, non-blank line, reporting
// whether it is an edge, should be skipped (comment or DIMACS problem
// line), or is malformed.
func classifyLine(line string) (edge core.EdgePair, isEdge, skip bool, err error) {
	switch {
	case strings.HasPrefix(line, "#"):
		return core.EdgePair{}, false, true, nil
	case strings.HasPrefix(line, "c"):
		return core.EdgePair{}, false, true, nil
	case strings.HasPrefix(line, "p"):
		return core.EdgePair{}, false, true, nil
	case strings.HasPrefix(line, "e"):
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return core.EdgePair{}, false, false, fmt.Errorf("%w: expected \"e u v\"", ErrMalformedLine)
		}
		u, v, perr := parsePair(fields[1], fields[2])
		if perr != nil {
			return core.EdgePair{}, false, false, perr
		}

		return core.EdgePair{U: u, V: v}, true, false, nil
	default:
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return core.EdgePair{}, false, false, fmt.Errorf("%w: expected \"u v\"", ErrMalformedLine)
		}
		u, v, perr := parsePair(fields[0], fields[1])
		if perr != nil {
			return core.EdgePair{}, false, false, perr
		}

		return core.EdgePair{U: u, V: v}, true, false, nil
	}
}

func parsePair(a, b string) (int64, int64, error) {
	u, err := strconv.ParseInt(a, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	v, err := strconv.ParseInt(b, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}

	return u, v, nil
}
