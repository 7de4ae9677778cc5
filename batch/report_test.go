package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrankX3M/check-positions/core"
)

func TestReportBuilderFinalize(t *testing.T) {
	t.Run("nothing written yields no payload", func(t *testing.T) {
		b := newReportBuilder()
		payload, err := b.finalize()
		require.NoError(t, err)
		assert.Nil(t, payload)
	})

	t.Run("payload starts with a UTF-8 BOM", func(t *testing.T) {
		b := newReportBuilder()
		require.NoError(t, b.writeHeader([]string{"query", "position"}))

		row, err := core.NewRow([]string{"query", "position"}, map[string]string{
			"query":    "foo",
			"position": "1",
		})
		require.NoError(t, err)
		require.NoError(t, b.writeRow(row))

		payload, err := b.finalize()
		require.NoError(t, err)
		require.True(t, len(payload) > 3)
		assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, payload[:3])
		assert.Equal(t, "query,position\nfoo,1\n", string(payload[3:]))
	})
}

func TestReportFilename(t *testing.T) {
	assert.Equal(t, "search_results_42_queries.csv", ReportFilename(42))
}
