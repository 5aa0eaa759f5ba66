package loader

import (
	"fmt"

	"github.com/arnegrid/maxclique-bench/core"
)

// ErrMalformedLine is wrapped with the offending line number and text
// whenever a non-comment, non-blank line cannot be parsed as an edge
// under either supported format. It wraps core.ErrInvalidInput.
var ErrMalformedLine = fmt.Errorf("loader: malformed line: %w", core.ErrInvalidInput)
