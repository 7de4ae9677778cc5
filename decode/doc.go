// Package decode turns uploaded file bytes into query text.
//
// Uploads carry a declared size and MIME type which are validated before any
// content inspection. Content is then decoded against an ordered list of
// candidate encodings, accepting the first one that yields clean text.
package decode
