// Package chunk merges bucketed occurrences into sorted, self-indexed
// chunk files. A chunk file is a 4-byte index length, a gob-encoded
// key index, and a packed data section of fixed-size occurrence records.
package chunk

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"github.com/tmakinen/partwise/bucket"
	"github.com/tmakinen/partwise/constants"
	"github.com/tmakinen/partwise/model"
	"github.com/tmakinen/partwise/occurrence"
)

type keyToOccurrences = map[string][]model.Occurrence

func getKeysSorted(m keyToOccurrences) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func makeChunkOverview(sortedKeys []string) model.ChunkOverview {
	var c model.ChunkOverview
	c.Filename = uuid.New().String() + ".dat"
	c.Start = sortedKeys[0]
	c.End = sortedKeys[len(sortedKeys)-1]
	return c
}

func makeChunk(m keyToOccurrences, sortedKeys []string) model.ChunkOverview {
	c := makeChunkOverview(sortedKeys)
	chunkIndex := make(model.ChunkIndex)

	dataBuf := new(bytes.Buffer)
	dataOffset := 0
	for _, key := range sortedKeys {
		start := dataOffset
		for _, occ := range m[key] {
			packed := occurrence.Serialize(occ)
			dataBuf.Write(packed[:])
			dataOffset += constants.OccurrenceSize
		}
		chunkIndex[key] = model.Pair{Start: uint32(start), End: uint32(dataOffset)}
	}

	indexBuf := new(bytes.Buffer)
	if err := gob.NewEncoder(indexBuf).Encode(chunkIndex); err != nil {
		panic("error making chunk, couldn't encode index: " + err.Error())
	}

	sizeBuf := new(bytes.Buffer)
	binary.Write(sizeBuf, binary.LittleEndian, uint32(indexBuf.Len()))

	var finalBytes []byte
	finalBytes = append(finalBytes, sizeBuf.Bytes()...)
	finalBytes = append(finalBytes, indexBuf.Bytes()...)
	finalBytes = append(finalBytes, dataBuf.Bytes()...)

	filename := filepath.Join(constants.GetIndexDir(), c.Filename)
	if err := os.WriteFile(filename, finalBytes, 0777); err != nil {
		panic("Write failed for chunk file: " + err.Error())
	}
	return c
}

func makeChunks(m keyToOccurrences) []model.ChunkOverview {
	sortedKeys := getKeysSorted(m)
	var created []model.ChunkOverview
	var currKeys []string
	var size int

	for i, key := range sortedKeys {
		currKeys = append(currKeys, key)
		size += len(m[key]) * constants.OccurrenceSize
		size += len(key) + 8

		isLast := i == len(sortedKeys)-1
		if size > constants.PreferredChunkSize || isLast {
			created = append(created, makeChunk(m, currKeys))
			size = 0
			currKeys = currKeys[:0]
		}
	}
	return created
}

func getBucketPaths() []string {
	outDir := constants.GetIndexDir()
	files, err := os.ReadDir(outDir)
	if err != nil {
		panic("Could not make chunks because out dir not read: " + err.Error())
	}
	var res []string
	for _, file := range files {
		if bucket.IsBucketFile(file.Name()) {
			res = append(res, filepath.Join(outDir, file.Name()))
		}
	}
	return res
}

// CreateAll reads every bucket and writes sorted chunk files. Keys are
// hashed over buckets, so all buckets are gathered before cutting
// chunks; that keeps the chunk key ranges globally disjoint.
func CreateAll() []model.ChunkOverview {
	m := make(keyToOccurrences)
	buckets := getBucketPaths()
	for i, bucketPath := range buckets {
		fmt.Printf("Reading %v of %v buckets\n", i+1, len(buckets))
		for _, k := range bucket.ReadOccurrences(bucketPath) {
			m[k.Key] = append(m[k.Key], k.Occ)
		}
	}
	if len(m) == 0 {
		return nil
	}
	return makeChunks(m)
}

// ReadIndexOrPanic reads the index section of an opened chunk file,
// leaving the file positioned at the start of the data section. It also
// returns the encoded index length.
func ReadIndexOrPanic(f *os.File) (model.ChunkIndex, uint32) {
	buf := make([]byte, 4)
	if _, err := io.ReadFull(f, buf); err != nil {
		panic("Could not read chunk index length: " + err.Error())
	}
	indexLength := binary.LittleEndian.Uint32(buf)

	buf = make([]byte, indexLength)
	if _, err := io.ReadFull(f, buf); err != nil {
		panic("Could not read chunk index: " + err.Error())
	}

	var index model.ChunkIndex
	if err := gob.NewDecoder(bytes.NewReader(buf)).Decode(&index); err != nil {
		panic("Could not decode chunk index: " + err.Error())
	}
	return index, indexLength
}

// FindOccurrences returns the occurrences stored for a key in the chunk
// file, or nil when the key is absent.
func FindOccurrences(path, key string) []model.Occurrence {
	f, err := os.Open(path)
	if err != nil {
		panic("Could not open chunk file: " + err.Error())
	}
	defer f.Close()

	index, _ := ReadIndexOrPanic(f)
	val, ok := index[key]
	if !ok {
		return nil
	}

	if _, err := f.Seek(int64(val.Start), io.SeekCurrent); err != nil {
		panic("Could not seek in chunk file: " + err.Error())
	}
	buf := make([]byte, val.End-val.Start)
	if _, err := io.ReadFull(f, buf); err != nil {
		panic("Could not read from seeked position: " + err.Error())
	}

	var res []model.Occurrence
	for i := 0; i+constants.OccurrenceSize <= len(buf); i += constants.OccurrenceSize {
		res = append(res, occurrence.Deserialize(buf[i:i+constants.OccurrenceSize]))
	}
	return res
}
