package archive

import "errors"

var (
	// ErrNilReport is returned when SaveReport is called without a report.
	ErrNilReport = errors.New("report required")
)
