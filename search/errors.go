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


package search

import "errors"

var (
	// ErrCredentialsRequired is returned when the XMLRiver user or key is missing.
	ErrCredentialsRequired = errors.New("xmlriver user and key required")

	// ErrTargetDomainRequired is returned when no target domain is configured.
	ErrTargetDomainRequired = errors.New("target domain required")

	// ErrEmptyQuery is returned for a lookup with an empty query string.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrRequestFailed indicates the endpoint answered with a non-success HTTP status.
	ErrRequestFailed = errors.New("search request failed")

	// ErrAPIError indicates the endpoint answered with an error element.
	ErrAPIError = errors.New("search API error")

	// ErrMalformedResponse indicates the response body could not be parsed.
	ErrMalformedResponse = errors.New("malformed search response")
)
