package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs, which lets cached
// embeddings invalidate naturally when a section's search text changes.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Source identifies the statute book a legal section came from.
type Source int

const (
	// SourceIPC is the Indian Penal Code (substantive offences).
	SourceIPC Source = iota + 1
	// SourceCrPC is the Code of Criminal Procedure (procedural sections).
	SourceCrPC
)

// String returns the conventional abbreviation for the source.
func (s Source) String() string {
	switch s {
	case SourceIPC:
		return "IPC"
	case SourceCrPC:
		return "CrPC"
	default:
		return "Unknown"
	}
}

// LegalSection is a fully normalized statutory section.
// It is built once at startup by the corpus loader and is immutable afterwards;
// every field is total (missing source data is resolved to documented defaults
// at load time, never left for downstream code to handle).
type LegalSection struct {
	Code                  string // "IPC 302", "CrPC 41"
	Source                Source
	SectionNumber         string // prefix markers stripped, may be empty
	Title                 string // never empty after normalization
	Description           string // verbatim legal text, may be empty
	SimplifiedDescription string // curated plain-language text, "" when absent
	Punishment            string
	Bailability           string
	Cognizability         string
	Court                 string
	SearchText            string // embedding input only, never shown to callers
}

// SearchID returns the content-based ID of the section's search text.
// It is used as the key for cached embeddings.
func (s *LegalSection) SearchID() ID {
	return IDFromContent(s.SearchText)
}

// MatchResult pairs a matched section with its similarity score.
// Results are transient: created per query and discarded with the response.
type MatchResult struct {
	Section *LegalSection
	Score   float32
}

// SectionReport is the fully shaped answer for one matched section,
// ready for the transport layer to serialize.
type SectionReport struct {
	Code                  string
	Title                 string
	Description           string
	SimplifiedExplanation string
	Punishment            string
	Bailability           string
	Cognizability         string
	Court                 string
	Guidance              []string
	Score                 float32
}
