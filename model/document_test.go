package model

import "testing"

func TestDocumentIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want bool
	}{
		{"no content", Document{Name: "blank.txt"}, true},
		{"zero-length content", Document{Name: "blank.txt", Content: []byte{}}, true},
		{"with content", Document{Name: "note.txt", Content: []byte("hi")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.doc.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}
