// Package content classifies files as text, binary, or image by MIME type.
//
// Resolution is layered. A small extension table answers first for common
// source and config formats, then magic-byte sniffing runs on a prefix of
// the file, and a printable-byte heuristic decides anything the sniffer
// leaves inconclusive.
package content

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// sniffLen is how many leading bytes feed the magic-byte sniffer. It mirrors
// the sniffer's own read limit so a single read serves both layers.
const sniffLen = 3072

// heuristicLen caps the prefix inspected by the printable-byte fallback.
const heuristicLen = 1024

// printableThreshold is the minimum ratio of printable bytes for the
// heuristic to call a file text.
const printableThreshold = 0.8

const octetStream = "application/octet-stream"

// extensionTypes short-circuits sniffing for extensions whose content is
// text by convention even when the bytes alone would not prove it.
var extensionTypes = map[string]string{
	"txt":  "text/plain",
	"md":   "text/plain",
	"rs":   "text/plain",
	"toml": "text/plain",
	"yml":  "text/plain",
	"yaml": "text/plain",
	"json": "text/plain",
	"py":   "text/x-python",
	"js":   "text/javascript",
	"html": "text/html",
	"css":  "text/css",
}

// Type is a resolved content classification.
type Type struct {
	// MIME is the media type without parameters, e.g. "text/plain".
	MIME string
}

// IsText reports whether the type belongs to the text family.
func (t Type) IsText() bool {
	return strings.HasPrefix(t.MIME, "text/")
}

// IsImage reports whether the type belongs to the image family.
func (t Type) IsImage() bool {
	return strings.HasPrefix(t.MIME, "image/")
}

// Detect classifies a file from its name and leading bytes. head may be
// shorter than the real file; only the first sniffLen bytes are considered.
func Detect(path string, head []byte) Type {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if mime, ok := extensionTypes[ext]; ok {
		return Type{MIME: mime}
	}

	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	mtype := mimetype.Detect(head)
	if !mtype.Is(octetStream) {
		return Type{MIME: bareMIME(mtype.String())}
	}

	// The sniffer's root type means "no signature matched", not a
	// positive binary identification. Fall through to the heuristic.
	if looksPrintable(head) {
		return Type{MIME: "text/plain"}
	}
	return Type{MIME: octetStream}
}

// DetectFile classifies the file at path, reading only as much of it as
// classification needs.
func DetectFile(path string) (Type, error) {
	f, err := os.Open(path)
	if err != nil {
		return Type{}, fmt.Errorf("failed to open %s for type detection: %w", path, err)
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return Type{}, fmt.Errorf("failed to read %s for type detection: %w", path, err)
	}
	return Detect(path, head[:n]), nil
}

// looksPrintable reports whether the prefix is mostly printable ASCII plus
// the usual text whitespace. Empty input counts as text.
func looksPrintable(head []byte) bool {
	if len(head) > heuristicLen {
		head = head[:heuristicLen]
	}
	if len(head) == 0 {
		return true
	}

	printable := 0
	for _, b := range head {
		if b == '\n' || b == '\r' || b == '\t' || (b >= 32 && b <= 126) {
			printable++
		}
	}
	return float64(printable)/float64(len(head)) > printableThreshold
}

// bareMIME strips any parameters from a media type string, leaving only
// the type/subtype pair.
func bareMIME(s string) string {
	if i := strings.IndexByte(s, ';'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
