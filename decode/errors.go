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


package decode

import "errors"

var (
	// ErrFileTooLarge is returned when the declared size exceeds MaxFileSize.
	ErrFileTooLarge = errors.New("file too large")

	// ErrUnsupportedType is returned for MIME types other than plain text
	// or an unspecified octet stream.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrUndecodableContent is returned when no candidate encoding yields
	// clean text.
	ErrUndecodableContent = errors.New("undecodable file content")
)
