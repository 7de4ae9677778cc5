// Copyright 2025 FrankX3M
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "errors"

// Domain validation errors
var (
	// ErrNoColumns indicates a Row was constructed without columns.
	ErrNoColumns = errors.New("row must have at least one column")

	// ErrDuplicateColumn indicates a Row declares the same column twice.
	ErrDuplicateColumn = errors.New("duplicate column name")

	// ErrUnknownColumn indicates a Row value references an undeclared column.
	ErrUnknownColumn = errors.New("value for unknown column")

	// ErrEmptyReportName indicates the report Name field is empty.
	ErrEmptyReportName = errors.New("report name cannot be empty")

	// ErrEmptyPayload indicates the report Payload field is empty.
	ErrEmptyPayload = errors.New("report payload cannot be empty")

	// ErrInvalidCounts indicates inconsistent processed/total counts.
	ErrInvalidCounts = errors.New("processed count cannot exceed total")

	// ErrInvalidTimestamp indicates a timestamp is in the future.
	ErrInvalidTimestamp = errors.New("timestamp cannot be in the future")
)
