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


package batch

import "errors"

var (
	// ErrRowSourceRequired is returned when a row source is not provided.
	ErrRowSourceRequired = errors.New("row source required")

	// ErrTooManyQueries is returned when a batch exceeds MaxQueries.
	// It is reported before any lookup is performed.
	ErrTooManyQueries = errors.New("too many queries in batch")

	// ErrNothingProcessed is returned when a batch ran to completion but no
	// query succeeded. It is distinct from a hard failure.
	ErrNothingProcessed = errors.New("no queries processed")

	// ErrUnchangedMessage is returned by ProgressSink implementations when
	// the new status text is identical to the one already displayed.
	// The processor swallows exactly this error; any other sink failure is
	// logged as a warning.
	ErrUnchangedMessage = errors.New("progress message unchanged")
)
