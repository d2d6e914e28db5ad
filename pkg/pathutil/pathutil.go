// Package pathutil classifies paths and patterns for the traversal layers.
package pathutil

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// PatternMode distinguishes glob patterns from plain substring patterns.
type PatternMode int

const (
	// ModeGlob matches with glob syntax (*, ?, [], {}).
	ModeGlob PatternMode = iota
	// ModeSubstring matches anywhere in the path string.
	ModeSubstring
)

// globMeta is the set of characters that promote a pattern to glob mode.
const globMeta = "*?[]{}"

// DetectMode returns ModeGlob if the pattern contains glob metacharacters,
// ModeSubstring otherwise.
func DetectMode(pattern string) PatternMode {
	if strings.ContainsAny(pattern, globMeta) {
		return ModeGlob
	}
	return ModeSubstring
}

// IsHidden reports whether a path is hidden: its final segment starts with
// a dot, or any segment on the way does. The special segments "." and ".."
// are not hidden, so walking "." does not hide an entire tree.
func IsHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "." || part == ".." || part == "" {
			continue
		}
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// Matcher matches candidate paths against a compiled pattern.
// Paths are matched in slash form, relative to the traversal root for
// glob patterns.
type Matcher interface {
	Match(path string) bool
}

type globMatcher struct {
	pattern       string
	caseSensitive bool
}

func (g globMatcher) Match(path string) bool {
	p := filepath.ToSlash(path)
	if !g.caseSensitive {
		p = strings.ToLower(p)
	}
	ok, err := doublestar.Match(g.pattern, p)
	return err == nil && ok
}

type substringMatcher struct {
	pattern       string
	caseSensitive bool
}

func (s substringMatcher) Match(path string) bool {
	p := filepath.ToSlash(path)
	if !s.caseSensitive {
		p = strings.ToLower(p)
	}
	return strings.Contains(p, s.pattern)
}

// NewMatcher compiles a pattern in the given mode. Glob patterns are
// validated up front so malformed syntax fails before any traversal.
func NewMatcher(pattern string, mode PatternMode, caseSensitive bool) (Matcher, error) {
	switch mode {
	case ModeGlob:
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
		if !caseSensitive {
			pattern = strings.ToLower(pattern)
		}
		return globMatcher{pattern: pattern, caseSensitive: caseSensitive}, nil
	default:
		if !caseSensitive {
			pattern = strings.ToLower(pattern)
		}
		return substringMatcher{pattern: pattern, caseSensitive: caseSensitive}, nil
	}
}

// NewAutoMatcher compiles a pattern with its mode detected by DetectMode.
func NewAutoMatcher(pattern string, caseSensitive bool) (Matcher, error) {
	return NewMatcher(pattern, DetectMode(pattern), caseSensitive)
}

// RemovePrefix strips prefix from path when path is inside it, respecting
// segment boundaries. Paths outside the prefix come back unchanged.
func RemovePrefix(path, prefix string) string {
	if prefix == "" {
		return path
	}
	p := filepath.ToSlash(path)
	pre := strings.TrimSuffix(filepath.ToSlash(prefix), "/")
	if p == pre {
		return ""
	}
	if strings.HasPrefix(p, pre+"/") {
		return path[len(pre)+1:]
	}
	return path
}
