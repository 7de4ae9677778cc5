package archive

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/FrankX3M/check-positions/core"
)

// Key prefixes for different data types
const (
	reportPrefix     = "report"
	reportDatePrefix = "reportd"
)

// makeReportKey generates a key for a report by ID.
func makeReportKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", reportPrefix, id))
}

// makeReportDateKey generates a composite key for the date index.
// Format: prefix:timestamp:id
func makeReportDateKey(createdAt time.Time, id core.ID) []byte {
	prefix := reportDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for timestamp + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(createdAt.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}
