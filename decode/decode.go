package decode

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// MaxFileSize caps uploaded query files.
const MaxFileSize = 10 << 20 // 10 MiB

// candidates are tried in order: UTF-8 first, then its BOM variant, then the
// Cyrillic legacy encodings common for query lists exported on Windows/DOS.
var candidates = []struct {
	name string
	enc  encoding.Encoding
}{
	{"utf-8", unicode.UTF8},
	{"utf-8-sig", unicode.UTF8BOM},
	{"windows-1251", charmap.Windows1251},
	{"cp866", charmap.CodePage866},
}

// Decode validates the declared size and MIME type, then decodes data with
// the first candidate encoding that yields clean text.
func Decode(data []byte, declaredSize int64, mimeType string) (string, error) {
	if declaredSize > MaxFileSize {
		return "", fmt.Errorf("%w: limit %d bytes, declared %d", ErrFileTooLarge, int64(MaxFileSize), declaredSize)
	}
	if !supportedType(mimeType) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, mimeType)
	}

	for _, candidate := range candidates {
		if text, ok := tryDecode(candidate.enc, data); ok {
			return text, nil
		}
	}

	return "", ErrUndecodableContent
}

// supportedType accepts plain text and the unspecified octet stream many
// clients attach to .txt uploads. MIME parameters are ignored.
func supportedType(mimeType string) bool {
	base, _, _ := strings.Cut(mimeType, ";")
	switch strings.TrimSpace(strings.ToLower(base)) {
	case "text/plain", "application/octet-stream":
		return true
	}
	return false
}

// tryDecode decodes data with enc and checks the result is clean text:
// no replacement characters (the decoders substitute them for bytes they
// cannot map), no control characters beyond tab, CR and LF, and no leading
// byte order mark. A BOM-prefixed file decodes fine as plain UTF-8 but
// keeps the mark glued to the first line; rejecting it here hands the file
// to the BOM-stripping candidate instead.
func tryDecode(enc encoding.Encoding, data []byte) (string, bool) {
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}

	text := string(decoded)
	if strings.HasPrefix(text, "\ufeff") {
		return "", false
	}
	for _, r := range text {
		if r == utf8.RuneError {
			return "", false
		}
		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' {
			return "", false
		}
	}
	return text, true
}
