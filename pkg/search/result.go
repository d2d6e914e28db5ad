package search

import "sort"

// Line is one emitted record: a literal match or one of the context lines
// pulled in around it.
type Line struct {
	FilePath   string `json:"file_path"`
	LineNumber uint64 `json:"line_number"`
	Content    string `json:"line_content"`

	// ContentOmitted reports that Content was truncated by OmitChars.
	ContentOmitted bool `json:"content_omitted"`

	// IsContext is false for a literal match, true for a surrounding
	// context line.
	IsContext bool `json:"is_context"`
}

// Result is one search outcome: the requested page of records plus the
// total number of literal matches found before pagination.
type Result struct {
	TotalCount int    `json:"total_number"`
	Lines      []Line `json:"lines"`
}

// sortLines orders records by file path (byte order) then line number.
// The order is a result invariant, independent of walk order.
func sortLines(lines []Line) {
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].FilePath != lines[j].FilePath {
			return lines[i].FilePath < lines[j].FilePath
		}
		return lines[i].LineNumber < lines[j].LineNumber
	})
}

// paginate slices the sorted records. A skip beyond the end of the
// sequence yields an empty page, never an error.
func paginate(lines []Line, skip, take *int) []Line {
	offset := 0
	if skip != nil && *skip > 0 {
		offset = *skip
	}
	if offset >= len(lines) {
		return []Line{}
	}

	page := lines[offset:]
	if take != nil {
		limit := *take
		if limit < 0 {
			limit = 0
		}
		if limit < len(page) {
			page = page[:limit]
		}
	}
	return page
}
