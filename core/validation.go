package core

import (
	"fmt"
	"time"
)

// Validate checks a Report before it is persisted.
func (r *Report) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: report %d", ErrEmptyReportName, r.Id)
	}
	if len(r.Payload) == 0 {
		return fmt.Errorf("%w: report %q", ErrEmptyPayload, r.Name)
	}
	if r.Processed <= 0 || r.Processed > r.Total {
		return fmt.Errorf("%w: processed %d, total %d", ErrInvalidCounts, r.Processed, r.Total)
	}
	if r.CreatedAt.After(time.Now().Add(time.Minute)) {
		return fmt.Errorf("%w: %v", ErrInvalidTimestamp, r.CreatedAt)
	}
	return nil
}
