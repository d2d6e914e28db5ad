package view

import "fmt"

// SizeError reports content that exceeds the configured size limit. Size
// is the offending byte count: the whole file, or just the selected lines
// when line filters were active.
type SizeError struct {
	Path  string
	Size  int64
	Limit int

	message string
}

func (e *SizeError) Error() string { return e.message }

func errFileTooLarge(path string, size int64, limit int) *SizeError {
	return &SizeError{
		Path: path, Size: size, Limit: limit,
		message: fmt.Sprintf("file is too large: %s (size: %d, limit: %d)", path, size, limit),
	}
}

func errFilteredTooLarge(path string, size int64, limit int) *SizeError {
	return &SizeError{
		Path: path, Size: size, Limit: limit,
		message: fmt.Sprintf("filtered content is too large: %s (filtered size: %d, limit: %d)", path, size, limit),
	}
}

func errBinaryTooLarge(path string, size int64, limit int) *SizeError {
	return &SizeError{
		Path: path, Size: size, Limit: limit,
		message: fmt.Sprintf("binary file is too large when using line filters: %s (size: %d, limit: %d)", path, size, limit),
	}
}

func errImageTooLarge(path string, size int64, limit int) *SizeError {
	return &SizeError{
		Path: path, Size: size, Limit: limit,
		message: fmt.Sprintf("image file is too large when using line filters: %s (size: %d, limit: %d)", path, size, limit),
	}
}
