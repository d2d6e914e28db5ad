package enum

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/tacogips/lumin/pkg/content"
	"github.com/tacogips/lumin/pkg/ignore"
	"github.com/tacogips/lumin/pkg/pathutil"
	"github.com/tacogips/lumin/pkg/telemetry"
)

// Walk visits the tree rooted at root in deterministic lexical order,
// calling visit for each surviving entry. Directory visits are emitted
// before their children; the root itself is never visited.
//
// Per-entry I/O errors are logged and skipped so one unreadable entry
// cannot abort the rest of the walk. Errors returned by visit do abort it.
func Walk(root string, opts Options, visit func(FileVisit) error) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("failed to access %s: %w", root, err)
	}

	globs, err := newGlobFilter(opts)
	if err != nil {
		return err
	}

	// An explicit file root bypasses the ignore layers: the caller named
	// the file directly. Glob and text filters still apply.
	if !info.IsDir() {
		if !globs.keep(filepath.Base(root)) {
			return nil
		}
		if opts.TextOnly && !isTextFile(root) {
			return nil
		}
		return visit(FileVisit{Path: root, Hidden: pathutil.IsHidden(root)})
	}

	layers := ignore.Policy{RespectGitignore: opts.RespectGitignore}.Resolve()
	matcher := ignore.NewMatcher(root, layers, opts.CaseSensitive)

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			telemetry.L().Debug("skipping unreadable entry",
				zap.String("path", path),
				zap.Error(walkErr))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if path == root {
			matcher.LoadDir(path)
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			telemetry.L().Debug("skipping entry outside the root",
				zap.String("path", path),
				zap.Error(relErr))
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if layers.HiddenSuppression && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			if matcher.Ignored(path, true) {
				return fs.SkipDir
			}
			if err := visit(FileVisit{Path: path, IsDir: true, Hidden: pathutil.IsHidden(rel)}); err != nil {
				return err
			}
			if opts.MaxDepth > 0 && depthOf(rel) >= opts.MaxDepth {
				return fs.SkipDir
			}
			matcher.LoadDir(path)
			return nil
		}

		// Symlinks and other irregular entries are never followed.
		if !d.Type().IsRegular() {
			return nil
		}
		if layers.HiddenSuppression && strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if matcher.Ignored(path, false) {
			return nil
		}
		if !globs.keep(rel) {
			return nil
		}
		if opts.TextOnly && !isTextFile(path) {
			return nil
		}

		return visit(FileVisit{Path: path, Hidden: pathutil.IsHidden(rel)})
	})
}

// globFilter applies the include/exclude glob lists to root-relative paths.
// The include list distinguishes nil (unrestricted) from empty (matches
// nothing), so it carries its own restriction flag.
type globFilter struct {
	restricted bool
	include    []pathutil.Matcher
	exclude    []pathutil.Matcher
}

func newGlobFilter(opts Options) (*globFilter, error) {
	f := &globFilter{restricted: opts.IncludeGlobs != nil}
	for _, pattern := range opts.IncludeGlobs {
		m, err := pathutil.NewMatcher(pattern, pathutil.ModeGlob, opts.CaseSensitive)
		if err != nil {
			return nil, err
		}
		f.include = append(f.include, m)
	}
	for _, pattern := range opts.ExcludeGlobs {
		m, err := pathutil.NewMatcher(pattern, pathutil.ModeGlob, opts.CaseSensitive)
		if err != nil {
			return nil, err
		}
		f.exclude = append(f.exclude, m)
	}
	return f, nil
}

func (f *globFilter) keep(rel string) bool {
	for _, m := range f.exclude {
		if m.Match(rel) {
			return false
		}
	}
	if !f.restricted {
		return true
	}
	for _, m := range f.include {
		if m.Match(rel) {
			return true
		}
	}
	return false
}

// depthOf counts path segments below the root for a slash-separated
// relative path.
func depthOf(rel string) int {
	return strings.Count(rel, "/") + 1
}

func isTextFile(path string) bool {
	ctype, err := content.DetectFile(path)
	if err != nil {
		telemetry.L().Debug("skipping unclassifiable file",
			zap.String("file_path", path),
			zap.Error(err))
		return false
	}
	return ctype.IsText()
}
