package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for stored reports.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from raw content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(data []byte) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write(data)
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Row is the structured answer of one ranking-search lookup.
// Its column order is fixed at construction; the batch pipeline derives the
// CSV header from the first successful row and reads every later row against
// that same header.
type Row struct {
	columns []string
	values  map[string]string
}

// NewRow creates a row with the given column order and values.
// Every key in values must appear in columns; columns without a value
// resolve to the empty string.
func NewRow(columns []string, values map[string]string) (*Row, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}

	seen := make(map[string]bool, len(columns))
	for _, column := range columns {
		if seen[column] {
			return nil, ErrDuplicateColumn
		}
		seen[column] = true
	}
	for column := range values {
		if !seen[column] {
			return nil, ErrUnknownColumn
		}
	}

	row := &Row{
		columns: append([]string(nil), columns...),
		values:  make(map[string]string, len(values)),
	}
	for column, value := range values {
		row.values[column] = value
	}
	return row, nil
}

// Columns returns the row's column names in order.
func (r *Row) Columns() []string {
	return append([]string(nil), r.columns...)
}

// Values returns the row's values in the order of the given header.
// Columns the row does not carry resolve to the empty string.
func (r *Row) Values(header []string) []string {
	values := make([]string, len(header))
	for i, column := range header {
		values[i] = r.values[column]
	}
	return values
}

// Value returns the value for a single column, or the empty string.
func (r *Row) Value(column string) string {
	return r.values[column]
}

// Report is the finalized artifact of one batch run.
type Report struct {
	Id        ID
	Name      string // suggested attachment filename
	Processed int    // queries that produced a row
	Total     int    // queries submitted
	Payload   []byte // UTF-8 with BOM encoded CSV
	CreatedAt time.Time
}
