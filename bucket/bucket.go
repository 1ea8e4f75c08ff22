// Package bucket is the first stage of index building: pattern
// occurrences are appended to a fixed set of bucket files so the chunking
// stage can merge them key range by key range without holding the whole
// index in memory.
package bucket

import (
	"bufio"
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/tmakinen/partwise/constants"
	"github.com/tmakinen/partwise/db"
	"github.com/tmakinen/partwise/midifile"
	"github.com/tmakinen/partwise/model"
	"github.com/tmakinen/partwise/occurrence"
	"github.com/tmakinen/partwise/util"
)

var bucketFileRe = regexp.MustCompile(`^\d\d\d\.dat$`)

func bucketFilename(key string) string {
	h := fnv.New32a()
	h.Write([]byte(key))
	return fmt.Sprintf("%03d.dat", h.Sum32()%constants.BucketCount)
}

// record layout: 1 byte key length, key bytes, packed occurrence
func putOccurrence(k occurrence.Keyed) {
	if len(k.Key) > 255 {
		// window lengths are bounded, a key this long is a bug
		panic("pattern key too long: " + k.Key)
	}
	path := filepath.Join(constants.GetIndexDir(), bucketFilename(k.Key))
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0777)
	if err != nil {
		panic("Could not open bucket because: " + err.Error())
	}
	defer f.Close()

	record := make([]byte, 0, 1+len(k.Key)+constants.OccurrenceSize)
	record = append(record, byte(len(k.Key)))
	record = append(record, k.Key...)
	packed := occurrence.Serialize(k.Occ)
	record = append(record, packed[:]...)
	if _, err := f.Write(record); err != nil {
		panic("Could not write occurrence to bucket because: " + err.Error())
	}
}

func fileHasMetadata(filename string) bool {
	if !constants.MetadataEnabled() {
		return false
	}
	metadatas := db.GetScoreMetadatas([]string{filepath.Base(filename)})
	_, ok := metadatas[filepath.Base(filename)]
	return ok
}

func processScoreFile(fileNum uint32, filename string) {
	score, err := midifile.ReadFile(filename)
	if err != nil {
		fmt.Printf("Skipping %v because: %v\n", filename, err)
		return
	}

	hasMetadata := fileHasMetadata(filename)
	occurrences, err := occurrence.FromScore(score, fileNum, hasMetadata)
	if err != nil {
		fmt.Printf("Skipping %v because: %v\n", filename, err)
		return
	}

	for _, occ := range occurrences {
		putOccurrence(occ)
	}
}

// ProcessAllScoreFiles reads every numbered media file into a score and
// buckets its pattern occurrences.
func ProcessAllScoreFiles(m model.FileNumToPath) {
	keys := util.SortedKeys(m)
	for i, num := range keys {
		fmt.Printf("Processing %v of %v score files\n", i+1, len(keys))
		processScoreFile(num, m[num])
	}
}

// DeleteAll removes the bucket files from the index dir.
func DeleteAll() {
	outDir := constants.GetIndexDir()
	files, err := os.ReadDir(outDir)
	if err != nil {
		panic("Could not read dir because: " + err.Error())
	}
	for _, file := range files {
		if bucketFileRe.MatchString(file.Name()) {
			os.Remove(filepath.Join(outDir, file.Name()))
		}
	}
}

// ReadOccurrences reads back every keyed occurrence in a bucket file.
func ReadOccurrences(path string) []occurrence.Keyed {
	var res []occurrence.Keyed
	bucketFile := util.OpenFileOrPanic(path)
	defer bucketFile.Close()
	reader := bufio.NewReader(bucketFile)
	for {
		keyLen, err := reader.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			panic("Could not read occurrence from bucket: " + err.Error())
		}
		buf := make([]byte, int(keyLen)+constants.OccurrenceSize)
		if _, err := io.ReadFull(reader, buf); err != nil {
			panic("Could not read occurrence from bucket: " + err.Error())
		}
		res = append(res, occurrence.Keyed{
			Key: string(buf[:keyLen]),
			Occ: occurrence.Deserialize(buf[keyLen:]),
		})
	}
	return res
}

// IsBucketFile reports whether the filename is a bucket file.
func IsBucketFile(name string) bool {
	return bucketFileRe.MatchString(name)
}
