package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "theft of movable property",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "Whoever, intending to take dishonestly any movable property out of the possession of any person without that person's consent, moves that property",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("theft")
	id2 := IDFromContent("murder")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestSource_String(t *testing.T) {
	tests := []struct {
		name   string
		source Source
		want   string
	}{
		{
			name:   "penal code",
			source: SourceIPC,
			want:   "IPC",
		},
		{
			name:   "procedure code",
			source: SourceCrPC,
			want:   "CrPC",
		},
		{
			name:   "zero value",
			source: Source(0),
			want:   "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.source.String(); got != tt.want {
				t.Errorf("Source.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLegalSection_SearchID(t *testing.T) {
	a := &LegalSection{Code: "IPC 379", SearchText: "theft of movable property"}
	b := &LegalSection{Code: "IPC 380", SearchText: "theft of movable property"}
	c := &LegalSection{Code: "IPC 379", SearchText: "theft in a dwelling house"}

	if a.SearchID() != b.SearchID() {
		t.Errorf("SearchID() differs for identical search text")
	}
	if a.SearchID() == c.SearchID() {
		t.Errorf("SearchID() identical for different search text")
	}
	if a.SearchID() != IDFromContent(a.SearchText) {
		t.Errorf("SearchID() does not match IDFromContent of search text")
	}
}
