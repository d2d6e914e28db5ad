// Package traverse produces a flat, sorted listing of the files under a
// root, with an optional name filter that is auto-detected as either a
// glob or a plain substring.
package traverse

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/tacogips/lumin/pkg/enum"
	"github.com/tacogips/lumin/pkg/pathutil"
)

// Options configure a traversal.
type Options struct {
	// CaseSensitive controls pattern matching.
	CaseSensitive bool

	// RespectGitignore applies the layered ignore rules. Disabling it
	// surfaces gitignored, excluded, and hidden entries alike.
	RespectGitignore bool

	// OnlyTextFiles keeps only files whose resolved content type is
	// text.
	OnlyTextFiles bool

	// Pattern optionally filters the listing. A pattern containing glob
	// metacharacters matches the path relative to the root; anything
	// else matches as a substring anywhere in the full path.
	Pattern string

	// MaxDepth limits traversal depth below the root (0 = no limit).
	MaxDepth int

	// OmitPathPrefix, when set, is stripped from every listed path.
	OmitPathPrefix string
}

// Result is one listed file.
type Result struct {
	FilePath string `json:"file_path"`
	FileType string `json:"file_type"`
}

// IsHidden reports whether any segment of the listed path starts with a
// dot. Hidden entries appear only when ignore rules are bypassed.
func (r Result) IsHidden() bool {
	return pathutil.IsHidden(r.FilePath)
}

// TraverseDir lists the files under root that survive the ignore rules
// and the optional pattern, sorted by path.
func TraverseDir(root string, opts Options) ([]Result, error) {
	filter, err := newPatternFilter(root, opts)
	if err != nil {
		return nil, err
	}

	enumOpts := enum.Options{
		CaseSensitive:    opts.CaseSensitive,
		RespectGitignore: opts.RespectGitignore,
		MaxDepth:         opts.MaxDepth,
		TextOnly:         opts.OnlyTextFiles,
	}

	results, err := enum.Fold(root, enumOpts, []Result(nil), func(acc []Result, v enum.FileVisit) ([]Result, error) {
		if v.IsDir {
			return acc, nil
		}
		if !filter.keep(v.Path) {
			return acc, nil
		}
		path := v.Path
		if opts.OmitPathPrefix != "" {
			path = pathutil.RemovePrefix(path, opts.OmitPathPrefix)
		}
		return append(acc, Result{FilePath: path, FileType: fileTypeOf(v.Path)}), nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].FilePath < results[j].FilePath
	})
	return results, nil
}

// patternFilter holds the compiled optional pattern. Glob patterns match
// root-relative paths; substrings match the full path string.
type patternFilter struct {
	root    string
	mode    pathutil.PatternMode
	matcher pathutil.Matcher
}

func newPatternFilter(root string, opts Options) (*patternFilter, error) {
	if opts.Pattern == "" {
		return &patternFilter{}, nil
	}
	mode := pathutil.DetectMode(opts.Pattern)
	m, err := pathutil.NewMatcher(opts.Pattern, mode, opts.CaseSensitive)
	if err != nil {
		return nil, err
	}
	return &patternFilter{root: root, mode: mode, matcher: m}, nil
}

func (f *patternFilter) keep(path string) bool {
	if f.matcher == nil {
		return true
	}
	if f.mode == pathutil.ModeGlob {
		rel, err := filepath.Rel(f.root, path)
		if err != nil || rel == "." {
			rel = filepath.Base(path)
		}
		return f.matcher.Match(filepath.ToSlash(rel))
	}
	return f.matcher.Match(filepath.ToSlash(path))
}

// fileTypeOf reports the lowercased extension, or "unknown" for files
// without one. A leading dot alone (dotfiles) is not an extension.
func fileTypeOf(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return "unknown"
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return "unknown"
	}
	return ext
}
