// Package tree renders the contents of a directory as one group of named
// entries per directory, suitable for JSON output.
package tree

import (
	"path/filepath"
	"sort"

	"github.com/tacogips/lumin/pkg/enum"
	"github.com/tacogips/lumin/pkg/pathutil"
)

// Options configure tree generation.
type Options struct {
	// CaseSensitive is reserved for pattern-based filtering; the walk
	// itself is unaffected.
	CaseSensitive bool

	// RespectGitignore applies the layered ignore rules; hidden entries
	// are suppressed with it.
	RespectGitignore bool

	// MaxDepth limits traversal depth below the root (0 = no limit).
	MaxDepth int

	// OmitPathPrefix, when set, is stripped from every directory key.
	OmitPathPrefix string
}

// EntryType tags a tree entry as a file or a directory.
type EntryType string

const (
	EntryFile      EntryType = "file"
	EntryDirectory EntryType = "directory"
)

// Entry is one named child of a directory.
type Entry struct {
	Type EntryType `json:"type"`
	Name string    `json:"name"`
}

// DirectoryTree lists one directory's children in traversal order.
type DirectoryTree struct {
	Dir     string  `json:"dir"`
	Entries []Entry `json:"entries"`
}

// GenerateTree walks root and groups every surviving entry under its
// parent directory. Directories with no surviving children are listed as
// entries of their parent but get no group of their own. When nothing
// survives at all, a single placeholder group for the root is returned.
// Groups are sorted by directory path.
func GenerateTree(root string, opts Options) ([]DirectoryTree, error) {
	enumOpts := enum.Options{
		CaseSensitive:    opts.CaseSensitive,
		RespectGitignore: opts.RespectGitignore,
		MaxDepth:         opts.MaxDepth,
	}

	groups, err := enum.Fold(root, enumOpts, map[string][]Entry{}, func(acc map[string][]Entry, v enum.FileVisit) (map[string][]Entry, error) {
		if v.Path == root {
			return acc, nil
		}
		parent := filepath.Dir(v.Path)
		name := filepath.Base(v.Path)
		if v.IsDir {
			acc[parent] = append(acc[parent], Entry{Type: EntryDirectory, Name: name})
			if _, ok := acc[v.Path]; !ok {
				acc[v.Path] = nil
			}
		} else {
			acc[parent] = append(acc[parent], Entry{Type: EntryFile, Name: name})
		}
		return acc, nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]DirectoryTree, 0, len(groups))
	for dir, entries := range groups {
		if len(entries) == 0 {
			continue
		}
		out = append(out, DirectoryTree{Dir: stripPrefix(dir, opts), Entries: entries})
	}
	if len(out) == 0 {
		out = append(out, DirectoryTree{
			Dir:     stripPrefix(root, opts),
			Entries: []Entry{{Type: EntryDirectory, Name: "."}},
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Dir < out[j].Dir
	})
	return out, nil
}

func stripPrefix(dir string, opts Options) string {
	if opts.OmitPathPrefix == "" {
		return dir
	}
	return pathutil.RemovePrefix(dir, opts.OmitPathPrefix)
}
