// Package model holds the shared structs of the pattern index pipeline
// and the search API.
package model

// Occurrence is one indexed pattern window: the file it came from and the
// structural address of the window's first sounding note.
type Occurrence struct {
	FileNum         uint32
	Part            uint8
	Staff           uint8
	Voice           uint8
	Measure         uint16
	Index           uint16
	FileHasMetadata bool
}

// Pair is a byte range within a chunk's data section.
type Pair struct {
	Start uint32
	End   uint32
}

// ChunkIndex maps a pattern key to its byte range in a chunk.
type ChunkIndex = map[string]Pair

// ChunkOverview locates the key range stored in one chunk file.
type ChunkOverview struct {
	Start    string
	End      string
	Filename string
}

// FileNumToPath maps indexed file numbers to their media paths.
type FileNumToPath = map[uint32]string

// ScoreMetadata is catalog information about an indexed file.
type ScoreMetadata struct {
	Title    string `json:"title"`
	Composer string `json:"composer"`
	Year     uint   `json:"year,omitempty"`
}

// SearchRequestBody is the POST /search payload. Exactly one of Pitches
// (exact chromatic pitch numbers) or Intervals (successive semitone
// steps, transposition-invariant) should be set.
type SearchRequestBody struct {
	Pitches   []int `json:"pitches,omitempty"`
	Intervals []int `json:"intervals,omitempty"`
}

// SearchResult is one match of a search.
type SearchResult struct {
	FileId   uint32         `json:"file_id"`
	Measure  uint16         `json:"measure"`
	Voice    uint8          `json:"voice"`
	Index    uint16         `json:"index"`
	Metadata *ScoreMetadata `json:"metadata,omitempty"`
}

// SearchResponse is the POST /search reply.
type SearchResponse struct {
	NumMatches int            `json:"num_matches"`
	Results    []SearchResult `json:"results"`
}

// ErrorResponse is the JSON error body of the search server.
type ErrorResponse struct {
	Error string `json:"detail"`
}
