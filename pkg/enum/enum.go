// Package enum walks a directory tree and yields the files and directories
// that survive ignore rules, glob filters, and depth limits.
//
// The walk is sequential and stateless between calls. Search, traverse, and
// tree all build on the same Fold primitive so filtering behavior cannot
// drift between them.
package enum

// Options control a filesystem walk.
type Options struct {
	// CaseSensitive applies to include/exclude glob matching.
	CaseSensitive bool

	// RespectGitignore enables the layered ignore rules (per-directory
	// .gitignore, git exclude files, global git excludes) together with
	// hidden-entry suppression. Disabling it bypasses every layer at once.
	RespectGitignore bool

	// IncludeGlobs restricts the walk to files whose root-relative path
	// matches at least one glob. A nil slice means unrestricted; an empty
	// non-nil slice matches nothing.
	IncludeGlobs []string

	// ExcludeGlobs removes files whose root-relative path matches any
	// glob. Exclusion wins over inclusion.
	ExcludeGlobs []string

	// MaxDepth limits how many directory levels below the root are
	// entered (0 = no limit). Direct children of the root sit at depth 1.
	MaxDepth int

	// TextOnly keeps only files whose resolved content type is text.
	// Files that cannot be classified are skipped.
	TextOnly bool
}

// FileVisit is one entry yielded by a walk.
type FileVisit struct {
	// Path is the entry's path, rooted the same way the walk root was.
	Path string

	// IsDir distinguishes directory visits from file visits. Directory
	// visits are emitted before any of the directory's children.
	IsDir bool

	// Hidden reports whether any segment of the root-relative path
	// starts with a dot. It can only be true when ignore rules are
	// bypassed, since hidden entries are pruned otherwise.
	Hidden bool
}

// Fold walks the tree rooted at root and threads an accumulator through
// every visit. The walk stops at the first error step returns.
func Fold[T any](root string, opts Options, seed T, step func(T, FileVisit) (T, error)) (T, error) {
	acc := seed
	err := Walk(root, opts, func(v FileVisit) error {
		var stepErr error
		acc, stepErr = step(acc, v)
		return stepErr
	})
	return acc, err
}

// Enumerate collects every file visit in walk order, dropping directory
// visits.
func Enumerate(root string, opts Options) ([]FileVisit, error) {
	return Fold(root, opts, []FileVisit(nil), func(acc []FileVisit, v FileVisit) ([]FileVisit, error) {
		if v.IsDir {
			return acc, nil
		}
		return append(acc, v), nil
	})
}
