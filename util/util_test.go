package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	m := map[uint32]string{3: "c", 1: "a", 2: "b"}
	assert.Equal(t, []uint32{1, 2, 3}, SortedKeys(m))
	assert.Empty(t, SortedKeys(map[int]int{}))
}

func TestGetKeys(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	assert.ElementsMatch(t, []string{"a", "b"}, GetKeys(m))
}

func TestMin(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, Min(1, 2))
	assert.Equal(1, Min(2, 1))
	assert.Equal(-3, Min(-3, 0))
}

func TestSum(t *testing.T) {
	assert.Equal(t, uint64(6), Sum([]int64{1, 2, 3}))
	assert.Equal(t, uint64(0), Sum([]int64(nil)))
}

func TestGatherAllMidiPaths(t *testing.T) {
	assert := assert.New(t)

	dir, err := os.MkdirTemp("", "gather-test")
	assert.NoError(err)
	defer os.RemoveAll(dir)

	for _, name := range []string{"a.mid", "b.midi", "c.txt", "sub/d.mid"} {
		path := filepath.Join(dir, name)
		assert.NoError(os.MkdirAll(filepath.Dir(path), 0777))
		assert.NoError(os.WriteFile(path, nil, 0666))
	}

	assert.Len(GatherAllMidiPaths(dir, 0), 3)
	assert.Len(GatherAllMidiPaths(dir, 2), 2)
}

func TestCreateAndReadBinary(t *testing.T) {
	assert := assert.New(t)

	dir, err := os.MkdirTemp("", "binary-test")
	assert.NoError(err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "data.dat")
	original := map[uint32]string{1: "one", 2: "two"}
	CreateBinary(path, original)

	assert.Equal(original, ReadBinaryOrPanic[map[uint32]string](path))
}
