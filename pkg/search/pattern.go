package search

import (
	"fmt"
	"regexp"
	"time"

	"github.com/dlclark/regexp2"
)

// matchTimeout bounds regexp2 backtracking on a single line.
const matchTimeout = 5 * time.Second

// Pattern is a compiled search pattern backed by one of two engines: the
// standard library for anything its RE2 syntax accepts, regexp2 for
// Perl-style constructs (lookarounds, backreferences) RE2 rejects.
type Pattern struct {
	re  *regexp.Regexp
	re2 *regexp2.Regexp
}

// Span is one match occurrence within a line, in byte offsets.
type Span struct {
	Start int
	End   int
}

// Compile builds a Pattern, prefixing the case-insensitivity flag when
// caseSensitive is false. A pattern neither engine accepts fails here,
// before any file is opened.
func Compile(pattern string, caseSensitive bool) (*Pattern, error) {
	if !caseSensitive {
		pattern = "(?i)" + pattern
	}

	re, err := regexp.Compile(pattern)
	if err == nil {
		return &Pattern{re: re}, nil
	}

	re2, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("invalid search pattern %q: %w", pattern, err)
	}
	re2.MatchTimeout = matchTimeout
	return &Pattern{re2: re2}, nil
}

// FindSpans returns every non-overlapping match in the line, left to
// right. An empty result means the line does not match.
func (p *Pattern) FindSpans(line string) ([]Span, error) {
	if p.re != nil {
		pairs := p.re.FindAllStringIndex(line, -1)
		if len(pairs) == 0 {
			return nil, nil
		}
		spans := make([]Span, 0, len(pairs))
		for _, pair := range pairs {
			spans = append(spans, Span{Start: pair[0], End: pair[1]})
		}
		return spans, nil
	}

	var spans []Span
	m, err := p.re2.FindStringMatch(line)
	if err != nil {
		return nil, fmt.Errorf("pattern match failed: %w", err)
	}
	for m != nil {
		spans = append(spans, Span{Start: m.Index, End: m.Index + m.Length})
		m, err = p.re2.FindNextMatch(m)
		if err != nil {
			return nil, fmt.Errorf("pattern match failed: %w", err)
		}
	}
	if len(spans) > 0 {
		spans = runeSpansToByteSpans(line, spans)
	}
	return spans, nil
}

// runeSpansToByteSpans converts regexp2's rune-indexed spans into byte
// offsets so they can slice the line directly.
func runeSpansToByteSpans(line string, spans []Span) []Span {
	offsets := make([]int, 0, len(line)+1)
	for i := range line {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(line))

	out := make([]Span, len(spans))
	for i, s := range spans {
		out[i] = Span{Start: offsets[s.Start], End: offsets[s.End]}
	}
	return out
}
