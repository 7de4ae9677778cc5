package search

import (
	"context"

	"github.com/FrankX3M/check-positions/core"
)

// RowSource performs one external ranking-search lookup per query.
// Implementations must be safe for concurrent use: each batch run calls
// Lookup sequentially, but independent batches may run at the same time.
type RowSource interface {
	// Lookup issues a single lookup for query and returns the structured
	// result. Any transport, API or parse failure is returned as an error;
	// callers treat all lookup errors as opaque per-query failures.
	Lookup(ctx context.Context, query string) (*core.Row, error)
}
