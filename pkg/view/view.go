// Package view loads a single file and produces a typed representation of
// its contents: text as numbered lines, binary and image files as
// descriptive metadata without their bytes.
//
// Size limits guard memory, and they interact with line filtering: a
// bounded slice of an otherwise oversized text file is still viewable,
// because the limit is enforced against the filtered content only.
package view

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/tacogips/lumin/pkg/content"
)

// Options configure a view operation.
type Options struct {
	// MaxSize caps how many bytes may be returned (nil = no limit).
	// Without line filters it applies to the whole file; with them, to
	// the filtered text content only. Binary and image files are always
	// checked against their full size.
	MaxSize *int

	// LineFrom and LineTo select an inclusive 1-based line range of a
	// text file. A window outside the file yields empty content, not an
	// error. They have no effect on binary or image files beyond the
	// size-check interaction above.
	LineFrom *int
	LineTo   *int
}

// View classifies the file at path and returns its typed contents.
// Unlike the multi-file operations, a view is all-or-nothing: any
// failure aborts it.
func View(path string, opts Options) (*FileView, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("not a file: %s", path)
	}

	usingLineFilters := opts.LineFrom != nil || opts.LineTo != nil

	// With line filters only a slice of the file is returned, so the
	// whole-file check is deferred to the per-variant paths below.
	if opts.MaxSize != nil && !usingLineFilters && info.Size() > int64(*opts.MaxSize) {
		return nil, errFileTooLarge(path, info.Size(), *opts.MaxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	ctype := content.Detect(path, data)
	result := &FileView{FilePath: path, FileType: ctype.MIME}

	switch {
	case ctype.IsText():
		if !utf8.Valid(data) {
			// The claimed text type was wrong; treat as binary with an
			// unknown MIME type.
			result.Contents = &Binary{
				Message: fmt.Sprintf("Binary file detected, size: %d bytes", info.Size()),
				Metadata: BinaryMetadata{
					Binary:    true,
					SizeBytes: info.Size(),
				},
			}
			return result, nil
		}
		contents, totalLines, err := textContents(path, string(data), opts, usingLineFilters)
		if err != nil {
			return nil, err
		}
		result.Contents = contents
		result.TotalLineNum = &totalLines
		return result, nil

	case ctype.IsImage():
		if usingLineFilters && opts.MaxSize != nil && info.Size() > int64(*opts.MaxSize) {
			return nil, errImageTooLarge(path, info.Size(), *opts.MaxSize)
		}
		result.Contents = &Image{
			Message: fmt.Sprintf("Image file detected: %s", ctype.MIME),
			Metadata: ImageMetadata{
				Binary:    true,
				SizeBytes: info.Size(),
				MediaType: "image",
			},
		}
		return result, nil

	default:
		if usingLineFilters && opts.MaxSize != nil && info.Size() > int64(*opts.MaxSize) {
			return nil, errBinaryTooLarge(path, info.Size(), *opts.MaxSize)
		}
		mime := ctype.MIME
		result.Contents = &Binary{
			Message: fmt.Sprintf("Binary file detected, size: %d bytes, type: %s", info.Size(), ctype.MIME),
			Metadata: BinaryMetadata{
				Binary:    true,
				SizeBytes: info.Size(),
				MimeType:  &mime,
			},
		}
		return result, nil
	}
}

// textContents builds the numbered, optionally line-filtered text variant
// and enforces the size limit against the filtered content.
func textContents(path, text string, opts Options, usingLineFilters bool) (*Text, int, error) {
	lines := textLines(text)
	lineCount := len(lines)

	from := 1
	if opts.LineFrom != nil && *opts.LineFrom > 1 {
		from = *opts.LineFrom
	}
	to := lineCount
	if opts.LineTo != nil && *opts.LineTo < lineCount {
		to = *opts.LineTo
	}
	// A window past the end or inverted bounds mean an empty selection,
	// never an error.
	if from > lineCount || from > to {
		from, to = 1, 0
	}

	selected := make([]LineContent, 0, to-from+1)
	for n := from; n <= to; n++ {
		selected = append(selected, LineContent{LineNumber: n, Line: lines[n-1]})
	}

	if usingLineFilters && opts.MaxSize != nil {
		filteredSize := 0
		for _, lc := range selected {
			filteredSize += len(lc.Line) + 1
		}
		if filteredSize > *opts.MaxSize {
			return nil, 0, errFilteredTooLarge(path, int64(filteredSize), *opts.MaxSize)
		}
	}

	return &Text{
		Content: TextContent{LineContents: selected},
		Metadata: TextMetadata{
			LineCount: lineCount,
			CharCount: utf8.RuneCountInString(text),
		},
	}, lineCount, nil
}

// textLines splits text into lines: a trailing newline produces no final
// empty line, and a \r preceding the newline is stripped.
func textLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
