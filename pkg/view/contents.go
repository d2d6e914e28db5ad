package view

import "encoding/json"

// FileView is the result of viewing one file.
type FileView struct {
	FilePath string `json:"file_path"`

	// FileType is the resolved MIME type, kept even when the contents
	// turn out to be a different variant than the type suggested.
	FileType string `json:"file_type"`

	// Contents is exactly one of Text, Binary, or Image.
	Contents FileContents `json:"contents"`

	// TotalLineNum is the file's true line count, populated only for
	// text contents.
	TotalLineNum *int `json:"total_line_num"`
}

// FileContents is a closed union over the three content variants. The
// JSON form carries a "type" discriminator: "text", "binary", or "image".
type FileContents interface {
	fileContents()
}

// Text holds line-structured content and whole-file metadata.
type Text struct {
	Content  TextContent  `json:"content"`
	Metadata TextMetadata `json:"metadata"`
}

// Binary describes a file whose bytes are not returned.
type Binary struct {
	Message  string         `json:"message"`
	Metadata BinaryMetadata `json:"metadata"`
}

// Image describes an image file; like Binary, no bytes are returned.
type Image struct {
	Message  string        `json:"message"`
	Metadata ImageMetadata `json:"metadata"`
}

func (*Text) fileContents()   {}
func (*Binary) fileContents() {}
func (*Image) fileContents()  {}

// TextContent is the selected lines of a text file.
type TextContent struct {
	LineContents []LineContent `json:"line_contents"`
}

// LineContent is a single line without its trailing newline.
type LineContent struct {
	LineNumber int    `json:"line_number"`
	Line       string `json:"line"`
}

// TextMetadata always describes the whole file, regardless of any line
// filtering applied to the content.
type TextMetadata struct {
	LineCount int `json:"line_count"`
	CharCount int `json:"char_count"`
}

// BinaryMetadata describes a binary file. MimeType is nil when the bytes
// defeated the type the file claimed.
type BinaryMetadata struct {
	Binary    bool    `json:"binary"`
	SizeBytes int64   `json:"size_bytes"`
	MimeType  *string `json:"mime_type"`
}

// ImageMetadata describes an image file.
type ImageMetadata struct {
	Binary    bool   `json:"binary"`
	SizeBytes int64  `json:"size_bytes"`
	MediaType string `json:"media_type"`
}

func (t *Text) MarshalJSON() ([]byte, error) {
	type alias Text
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{Type: "text", alias: (*alias)(t)})
}

func (b *Binary) MarshalJSON() ([]byte, error) {
	type alias Binary
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{Type: "binary", alias: (*alias)(b)})
}

func (i *Image) MarshalJSON() ([]byte, error) {
	type alias Image
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{Type: "image", alias: (*alias)(i)})
}
