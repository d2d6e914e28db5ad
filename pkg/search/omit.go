package search

import (
	"strings"
	"unicode/utf8"
)

// omitMarker flags a truncated edge in an omitted match line.
const omitMarker = "<omit>"

// omitContent truncates a matched line to at most keep characters before
// the first match span and after the last one. The spans themselves and
// everything between them stay intact; each cut edge is flagged with the
// omit marker. The second return reports whether anything was cut.
func omitContent(line string, spans []Span, keep int) (string, bool) {
	if len(spans) == 0 {
		return line, false
	}

	from := spans[0].Start
	for i := 0; i < keep && from > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(line[:from])
		from -= size
	}

	to := spans[len(spans)-1].End
	for i := 0; i < keep && to < len(line); i++ {
		_, size := utf8.DecodeRuneInString(line[to:])
		to += size
	}

	if from == 0 && to == len(line) {
		return line, false
	}

	var b strings.Builder
	if from > 0 {
		b.WriteString(omitMarker)
	}
	b.WriteString(line[from:to])
	if to < len(line) {
		b.WriteString(omitMarker)
	}
	return b.String(), true
}
