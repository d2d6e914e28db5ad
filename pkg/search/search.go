// Package search runs a regex pattern over the text files under a root and
// returns deterministically ordered, context-annotated match records.
//
// Collection order never leaks into results: records from every file are
// gathered, sorted by (file path, line number), and only then paginated.
package search

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/tacogips/lumin/pkg/enum"
	"github.com/tacogips/lumin/pkg/pathutil"
	"github.com/tacogips/lumin/pkg/telemetry"
)

// Search compiles pattern and runs it over the text files under root.
// A malformed pattern fails fast, before any traversal begins. Root may
// name a single file, in which case exactly that file is searched.
//
// Per-file read failures are logged and skipped; they never abort the
// rest of the run.
func Search(pattern, root string, opts Options) (*Result, error) {
	compiled, err := Compile(pattern, opts.CaseSensitive)
	if err != nil {
		return nil, err
	}

	enumOpts := enum.Options{
		CaseSensitive:    opts.CaseSensitive,
		RespectGitignore: opts.RespectGitignore,
		IncludeGlobs:     opts.IncludeGlobs,
		ExcludeGlobs:     opts.ExcludeGlobs,
		MaxDepth:         opts.MaxDepth,
		TextOnly:         true,
	}

	total := 0
	records, err := enum.Fold(root, enumOpts, []Line(nil), func(acc []Line, v enum.FileVisit) ([]Line, error) {
		if v.IsDir {
			return acc, nil
		}
		fileRecords, matches, err := searchFile(compiled, v.Path, opts)
		if err != nil {
			telemetry.L().Warn("failed to search file",
				zap.String("file_path", v.Path),
				zap.Error(err))
			return acc, nil
		}
		total += matches
		return append(acc, fileRecords...), nil
	})
	if err != nil {
		return nil, err
	}

	if opts.OmitPathPrefix != "" {
		for i := range records {
			records[i].FilePath = pathutil.RemovePrefix(records[i].FilePath, opts.OmitPathPrefix)
		}
	}
	sortLines(records)

	return &Result{
		TotalCount: total,
		Lines:      paginate(records, opts.Skip, opts.Take),
	}, nil
}

// searchFile scans one file and returns its emitted records together with
// its literal match count. Binary content is skipped without error.
func searchFile(pattern *Pattern, path string, opts Options) ([]Line, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read file: %w", err)
	}
	if isBinary(data) {
		return nil, 0, nil
	}

	lines := splitLines(data)

	// spansByLine keys are 1-based line numbers of literal matches.
	spansByLine := make(map[int][]Span)
	for i, line := range lines {
		spans, err := pattern.FindSpans(line)
		if err != nil {
			return nil, 0, err
		}
		if len(spans) > 0 {
			spansByLine[i+1] = spans
		}
	}
	if len(spansByLine) == 0 {
		return nil, 0, nil
	}

	records := make([]Line, 0, len(spansByLine))
	for _, n := range emittedLines(spansByLine, len(lines), opts.BeforeContext, opts.AfterContext) {
		content := lines[n-1]
		spans, isMatch := spansByLine[n]
		record := Line{
			FilePath:   path,
			LineNumber: uint64(n),
			Content:    content,
			IsContext:  !isMatch,
		}
		if isMatch && opts.OmitChars != nil {
			record.Content, record.ContentOmitted = omitContent(content, spans, *opts.OmitChars)
		}
		records = append(records, record)
	}
	return records, len(spansByLine), nil
}

// emittedLines expands every match into its context window, clips the
// windows to the file, and merges them: overlapping or adjacent windows
// become one contiguous range, and a line shared by several windows is
// emitted exactly once.
func emittedLines(spansByLine map[int][]Span, lineCount, before, after int) []int {
	emit := make(map[int]struct{})
	for n := range spansByLine {
		from := n - before
		if from < 1 {
			from = 1
		}
		to := n + after
		if to > lineCount {
			to = lineCount
		}
		for l := from; l <= to; l++ {
			emit[l] = struct{}{}
		}
	}

	nums := make([]int, 0, len(emit))
	for n := range emit {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// splitLines splits file content the way line-oriented tools do: a
// trailing newline produces no final empty line, and a \r preceding the
// newline is stripped.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	lines := strings.Split(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// isBinary detects binary content by checking the first 8KB for NUL bytes.
func isBinary(content []byte) bool {
	checkSize := len(content)
	if checkSize > 8192 {
		checkSize = 8192
	}
	return bytes.IndexByte(content[:checkSize], 0) != -1
}
