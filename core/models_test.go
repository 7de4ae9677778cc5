package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		id1 := IDFromContent([]byte("query,position\nfoo,1\n"))
		id2 := IDFromContent([]byte("query,position\nfoo,1\n"))
		assert.Equal(t, id1, id2)
	})

	t.Run("different content produces different IDs", func(t *testing.T) {
		id1 := IDFromContent([]byte("foo"))
		id2 := IDFromContent([]byte("bar"))
		assert.NotEqual(t, id1, id2)
	})
}

func TestNewRow(t *testing.T) {
	t.Run("valid row", func(t *testing.T) {
		row, err := NewRow([]string{"query", "position"}, map[string]string{
			"query":    "foo",
			"position": "3",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"query", "position"}, row.Columns())
		assert.Equal(t, "foo", row.Value("query"))
	})

	t.Run("no columns", func(t *testing.T) {
		_, err := NewRow(nil, nil)
		assert.ErrorIs(t, err, ErrNoColumns)
	})

	t.Run("duplicate column", func(t *testing.T) {
		_, err := NewRow([]string{"query", "query"}, nil)
		assert.ErrorIs(t, err, ErrDuplicateColumn)
	})

	t.Run("value for undeclared column", func(t *testing.T) {
		_, err := NewRow([]string{"query"}, map[string]string{"position": "1"})
		assert.ErrorIs(t, err, ErrUnknownColumn)
	})
}

func TestRowValues(t *testing.T) {
	row, err := NewRow([]string{"query", "position", "url"}, map[string]string{
		"query":    "foo",
		"position": "1",
		"url":      "https://example.com",
	})
	require.NoError(t, err)

	t.Run("follows the given header order", func(t *testing.T) {
		values := row.Values([]string{"url", "query"})
		assert.Equal(t, []string{"https://example.com", "foo"}, values)
	})

	t.Run("missing columns resolve to empty strings", func(t *testing.T) {
		values := row.Values([]string{"query", "found"})
		assert.Equal(t, []string{"foo", ""}, values)
	})
}

func TestReportValidate(t *testing.T) {
	valid := func() *Report {
		return &Report{
			Id:        1,
			Name:      "search_results_2_queries.csv",
			Processed: 2,
			Total:     3,
			Payload:   []byte("query,position\n"),
			CreatedAt: time.Now().UTC(),
		}
	}

	t.Run("valid report", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("empty name", func(t *testing.T) {
		r := valid()
		r.Name = ""
		assert.ErrorIs(t, r.Validate(), ErrEmptyReportName)
	})

	t.Run("empty payload", func(t *testing.T) {
		r := valid()
		r.Payload = nil
		assert.ErrorIs(t, r.Validate(), ErrEmptyPayload)
	})

	t.Run("processed exceeds total", func(t *testing.T) {
		r := valid()
		r.Processed = 4
		assert.ErrorIs(t, r.Validate(), ErrInvalidCounts)
	})

	t.Run("future timestamp", func(t *testing.T) {
		r := valid()
		r.CreatedAt = time.Now().Add(48 * time.Hour)
		assert.ErrorIs(t, r.Validate(), ErrInvalidTimestamp)
	})
}

func TestReportMUSRoundTrip(t *testing.T) {
	report := Report{
		Id:        IDFromContent([]byte("payload")),
		Name:      "search_results_5_queries.csv",
		Processed: 5,
		Total:     7,
		Payload:   []byte{0xEF, 0xBB, 0xBF, 'a', ',', 'b', '\n'},
		CreatedAt: time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
	}

	buf := make([]byte, ReportMUS.Size(report))
	n := ReportMUS.Marshal(report, buf)
	require.Equal(t, len(buf), n)

	decoded, n, err := ReportMUS.Unmarshal(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
	assert.Equal(t, report, decoded)

	skipped, err := ReportMUS.Skip(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), skipped)
}
