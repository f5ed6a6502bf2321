package model

// Document is one uploaded text file awaiting a spell check.
// Content holds the raw bytes as received; decoding (UTF-8 with a
// Windows-1252 fallback) happens during processing, not here.
type Document struct {
	Name    string `json:"name"`
	Content []byte `json:"content"`
}

// IsEmpty reports whether the document has no content at all.
func (d Document) IsEmpty() bool {
	return len(d.Content) == 0
}
