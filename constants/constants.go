package constants

import (
	"os"
	"path/filepath"
)

// GetIndexDir returns the directory holding bucket and chunk files.
func GetIndexDir() string {
	if path := os.Getenv("INDEX_PATH"); path != "" {
		return path
	}
	return "./out"
}

// GetMediaDir returns the directory holding the MIDI files to index.
func GetMediaDir() string {
	if path := os.Getenv("MEDIA_PATH"); path != "" {
		return path
	}
	panic("MEDIA_PATH environment variable is not set!")
}

// AllChunksPath returns the location of the chunk overview file.
func AllChunksPath() string {
	return filepath.Join(GetIndexDir(), "allChunks.dat")
}

// FileNumMapPath returns the location of the file number map.
func FileNumMapPath() string {
	return filepath.Join(GetIndexDir(), "fileNumToPath.dat")
}

// MetadataEnabled reports whether catalog metadata lookups against
// DynamoDB are switched on.
func MetadataEnabled() bool {
	return os.Getenv("METADATA_DB") != ""
}

// PatternLength is the number of sounding pitches per indexed window.
const PatternLength = 5

// OccurrenceSize is the packed size of one occurrence record:
// 4 for fileNum, 1+1+1 for part/staff/voice, 2+2 for measure/index,
// 1 for flags.
const OccurrenceSize = 12

// BucketCount is the number of bucket files keys are spread over.
const BucketCount = 128

// PreferredChunkSize bounds the data section of a chunk file.
const PreferredChunkSize = 64 * 1024 * 1024
