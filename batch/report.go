package batch

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/FrankX3M/check-positions/core"
)

// utf8BOM is prepended to finalized reports so spreadsheet tools that
// default to a legacy encoding detect UTF-8 correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// reportBuilder accumulates CSV rows for one batch run.
// The header is written exactly once, from the first successful record;
// every later row is serialized against that header.
type reportBuilder struct {
	buf    bytes.Buffer
	writer *csv.Writer
	header []string
}

func newReportBuilder() *reportBuilder {
	b := &reportBuilder{}
	b.writer = csv.NewWriter(&b.buf)
	return b
}

func (b *reportBuilder) headerWritten() bool {
	return b.header != nil
}

func (b *reportBuilder) writeHeader(columns []string) error {
	if err := b.writer.Write(columns); err != nil {
		return err
	}
	b.header = columns
	return nil
}

func (b *reportBuilder) writeRow(row *core.Row) error {
	return b.writer.Write(row.Values(b.header))
}

// finalize flushes the writer and returns the BOM-prefixed CSV payload.
// It returns nil when no rows were written.
func (b *reportBuilder) finalize() ([]byte, error) {
	b.writer.Flush()
	if err := b.writer.Error(); err != nil {
		return nil, err
	}
	if b.buf.Len() == 0 {
		return nil, nil
	}

	out := make([]byte, 0, len(utf8BOM)+b.buf.Len())
	out = append(out, utf8BOM...)
	out = append(out, b.buf.Bytes()...)
	return out, nil
}

// ReportFilename suggests an attachment name carrying the processed-query count.
func ReportFilename(processed int) string {
	return fmt.Sprintf("search_results_%d_queries.csv", processed)
}
