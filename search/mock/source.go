package mock

import (
	"context"
	"errors"

	"github.com/FrankX3M/check-positions/core"
	"github.com/FrankX3M/check-positions/search"
)

// MockRowSource is a test double for search.RowSource.
// It allows custom behavior injection via function fields.
type MockRowSource struct {
	// LookupFunc is called by Lookup if set.
	// If nil, uses default deterministic behavior.
	LookupFunc func(ctx context.Context, query string) (*core.Row, error)

	// FailOn lists queries whose lookups fail with an opaque error.
	// Only consulted when LookupFunc is nil.
	FailOn map[string]bool

	callCount int
	queries   []string
}

var _ search.RowSource = (*MockRowSource)(nil)

// NewMockRowSource creates a mock row source with default deterministic behavior.
func NewMockRowSource() *MockRowSource {
	return &MockRowSource{}
}

// Lookup records the call and returns a deterministic row for the query.
func (m *MockRowSource) Lookup(ctx context.Context, query string) (*core.Row, error) {
	m.callCount++
	m.queries = append(m.queries, query)

	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, query)
	}
	if m.FailOn[query] {
		return nil, errors.New("lookup failed")
	}

	return core.NewRow([]string{"query", "position"}, map[string]string{
		"query":    query,
		"position": "1",
	})
}

// CallCount returns the number of times Lookup was called.
func (m *MockRowSource) CallCount() int {
	return m.callCount
}

// Queries returns the queries Lookup was called with, in order.
func (m *MockRowSource) Queries() []string {
	return m.queries
}

// Reset clears recorded calls and injected behavior.
func (m *MockRowSource) Reset() {
	m.callCount = 0
	m.queries = nil
	m.LookupFunc = nil
	m.FailOn = nil
}
