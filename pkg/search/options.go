package search

// Options configure a search run.
type Options struct {
	// CaseSensitive controls both pattern matching and glob matching.
	// When false the pattern is compiled with a case-insensitivity flag.
	CaseSensitive bool

	// RespectGitignore applies the layered ignore rules during file
	// collection. Disabling it is a complete bypass of every layer.
	RespectGitignore bool

	// IncludeGlobs restricts the search to files whose root-relative
	// path matches at least one glob. A nil slice means unrestricted;
	// an empty non-nil slice matches nothing.
	IncludeGlobs []string

	// ExcludeGlobs removes files whose root-relative path matches any
	// glob. Exclusion wins over inclusion.
	ExcludeGlobs []string

	// BeforeContext and AfterContext pull that many surrounding lines
	// into the result around every match.
	BeforeContext int
	AfterContext  int

	// OmitChars truncates each match line to at most this many
	// characters on either side of the matched spans. The spans
	// themselves are never cut. Nil disables truncation; context lines
	// are never truncated.
	OmitChars *int

	// Skip and Take select a page of the sorted result sequence. Skip
	// is a 0-based offset (nil = 0); Take caps the record count after
	// the offset (nil = all remaining).
	Skip *int
	Take *int

	// MaxDepth limits traversal depth below the root (0 = no limit).
	MaxDepth int

	// OmitPathPrefix, when set, is stripped from every record's file
	// path before sorting.
	OmitPathPrefix string
}
