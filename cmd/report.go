package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/tmakinen/partwise/bucket"
	"github.com/tmakinen/partwise/chunk"
	"github.com/tmakinen/partwise/constants"
	"github.com/tmakinen/partwise/util"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Reports size statistics over the bucket and chunk files in the index dir.`,
	Run: func(cmd *cobra.Command, args []string) {
		report()
	},
}

type bucketsReport struct {
	numOccurrences int64
	numFiles       int64
	numBytes       int64
}

type chunksReport struct {
	avgIndexPercent float32
	indexPercents   []float32
	occsInIndexes   []int64
	numFiles        int64
	numOccurrences  int64
	totalBytes      int64
	dataBytes       int64
}

func analyzeBuckets() bucketsReport {
	var report bucketsReport

	files, err := os.ReadDir(constants.GetIndexDir())
	if err != nil {
		panic("Could not read dir because: " + err.Error())
	}

	for _, file := range files {
		filename := file.Name()
		if bucket.IsBucketFile(filename) {
			report.numFiles += 1
			path := filepath.Join(constants.GetIndexDir(), filename)
			info, err := os.Stat(path)
			if err != nil {
				panic("Could not get file stats")
			}
			report.numBytes += info.Size()
			// records are length-prefixed, count by reading them back
			report.numOccurrences += int64(len(bucket.ReadOccurrences(path)))
		}
	}

	return report
}

var chunkFileRe = regexp.MustCompile(`^[0-9a-fA-F]{8}-([0-9a-fA-F]{4}-){3}[0-9a-fA-F]{12}\.dat$`)

func analyzeChunks() chunksReport {
	var report chunksReport
	files, err := os.ReadDir(constants.GetIndexDir())
	if err != nil {
		panic("Could not read dir because: " + err.Error())
	}

	for _, file := range files {
		filename := file.Name()
		if !chunkFileRe.MatchString(filename) {
			continue
		}
		report.numFiles += 1
		f := util.OpenFileOrPanic(filepath.Join(constants.GetIndexDir(), filename))
		index, indexLength := chunk.ReadIndexOrPanic(f)

		var occsInIndex int64
		for _, pair := range index {
			occsInIndex += int64(pair.End-pair.Start) / constants.OccurrenceSize
		}
		report.occsInIndexes = append(report.occsInIndexes, occsInIndex)

		stats, err := f.Stat()
		if err != nil {
			panic("Could not get file stats")
		}
		indexPercent := float32(indexLength+4) / float32(stats.Size())
		report.totalBytes += stats.Size()
		report.indexPercents = append(report.indexPercents, indexPercent)

		dataBytes := stats.Size() - int64(indexLength+4)
		report.dataBytes += dataBytes
		report.numOccurrences += dataBytes / constants.OccurrenceSize
		f.Close()
	}
	avg := float32(report.totalBytes-report.dataBytes) / float32(report.totalBytes)
	report.avgIndexPercent = avg
	return report
}

func report() {
	bucketsReport := analyzeBuckets()
	chunksReport := analyzeChunks()
	fmt.Printf("bucketsReport.numFiles: %v\n", bucketsReport.numFiles)
	fmt.Printf("chunksReport.numFiles: %v\n", chunksReport.numFiles)
	fmt.Printf("chunksReport.avgIndexPercent: %v\n", chunksReport.avgIndexPercent)
	fmt.Printf("chunksReport.occsInIndexes: %v\n", chunksReport.occsInIndexes)

	fmt.Printf("bucketsReport.numOccurrences: %v\n", bucketsReport.numOccurrences)
	numCalcedOccs := util.Sum(chunksReport.occsInIndexes)
	fmt.Printf("numCalcedOccs from indexes: %v\n", numCalcedOccs)

	fmt.Printf("bucketsReport.numBytes: %v\n", bucketsReport.numBytes)
	fmt.Printf("chunksReport.totalBytes: %v\n", chunksReport.totalBytes)
}
