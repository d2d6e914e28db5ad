// Package lumin searches, lists, and views files under local directory
// trees.
//
// Four operations share one traversal pipeline: Search scans text files
// for a regex pattern, Traverse lists files with their content types,
// Tree maps the directory structure, and View loads a single file as
// numbered lines or typed metadata. All of them apply layered gitignore
// semantics (per-directory .gitignore files, the repository's exclude
// file, the global git excludes, and hidden-entry suppression) unless
// told to bypass them.
//
// # Searching
//
// Search compiles the pattern once and scans every text file under the
// root:
//
//	result, err := lumin.Search("TODO", "./src", lumin.SearchOptions{
//	    BeforeContext: 1,
//	    AfterContext:  1,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, line := range result.Lines {
//	    fmt.Printf("%s:%d: %s\n", line.FilePath, line.LineNumber, line.Content)
//	}
//
// Patterns use Go regexp syntax; constructs Go rejects, such as
// lookarounds and backreferences, transparently fall back to a second
// engine that supports them.
//
// # Traversing
//
//	files, err := lumin.Traverse(".", lumin.TraverseOptions{
//	    Pattern:       "**/*.go",
//	    OnlyTextFiles: true,
//	})
//
// # Viewing
//
// View returns text files as numbered lines and binary or image files as
// descriptive metadata without their bytes:
//
//	fv, err := lumin.View("README.md", lumin.ViewOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if text, ok := fv.Contents.(*lumin.TextContents); ok {
//	    for _, lc := range text.Content.LineContents {
//	        fmt.Printf("%d: %s\n", lc.LineNumber, lc.Line)
//	    }
//	}
package lumin

import (
	"github.com/tacogips/lumin/pkg/search"
	"github.com/tacogips/lumin/pkg/traverse"
	"github.com/tacogips/lumin/pkg/tree"
	"github.com/tacogips/lumin/pkg/view"
)

// Re-export the option and result types of every operation so callers
// can import just "github.com/tacogips/lumin" without subpackages.
type (
	// SearchOptions configure Search: case handling, ignore rules,
	// include/exclude globs, context lines, truncation, and pagination.
	SearchOptions = search.Options

	// SearchResult is the sorted, paginated outcome of a search.
	SearchResult = search.Result

	// SearchLine is one matched or context line.
	SearchLine = search.Line

	// TraverseOptions configure Traverse.
	TraverseOptions = traverse.Options

	// TraverseResult is one listed file with its resolved type.
	TraverseResult = traverse.Result

	// TreeOptions configure Tree.
	TreeOptions = tree.Options

	// DirectoryTree lists one directory's children.
	DirectoryTree = tree.DirectoryTree

	// TreeEntry is one named child within a DirectoryTree.
	TreeEntry = tree.Entry

	// ViewOptions configure View: size limit and line range.
	ViewOptions = view.Options

	// FileView is the typed result of viewing one file.
	FileView = view.FileView

	// FileContents is the closed union over text, binary, and image
	// content variants.
	FileContents = view.FileContents

	// TextContents is the text variant of FileContents.
	TextContents = view.Text

	// BinaryContents is the binary variant of FileContents.
	BinaryContents = view.Binary

	// ImageContents is the image variant of FileContents.
	ImageContents = view.Image

	// SizeError reports a view that exceeded its size limit.
	SizeError = view.SizeError
)

// Search scans text files under root for the regex pattern and returns
// matched lines with any requested context, sorted by file path and line
// number.
func Search(pattern, root string, opts SearchOptions) (*SearchResult, error) {
	return search.Search(pattern, root, opts)
}

// Traverse lists the files under root that survive the ignore rules and
// the optional pattern filter, sorted by path.
func Traverse(root string, opts TraverseOptions) ([]TraverseResult, error) {
	return traverse.TraverseDir(root, opts)
}

// Tree maps the directory structure under root, grouping each surviving
// entry under its parent directory.
func Tree(root string, opts TreeOptions) ([]DirectoryTree, error) {
	return tree.GenerateTree(root, opts)
}

// View loads the single file at path as numbered text lines or, for
// binary and image files, as descriptive metadata.
func View(path string, opts ViewOptions) (*FileView, error) {
	return view.View(path, opts)
}
