package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tmakinen/partwise/bucket"
	"github.com/tmakinen/partwise/chunk"
	"github.com/tmakinen/partwise/constants"
	"github.com/tmakinen/partwise/file"
	"github.com/tmakinen/partwise/util"
)

func init() {
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index [max]",
	Short: "Creates the pattern index",
	Long:  `Reads MIDI files from the media dir and builds the pattern index.`,
	Run: func(cmd *cobra.Command, args []string) {
		var maxNum int
		if len(args) == 1 {
			arg1, err := strconv.Atoi(args[0])
			if err != nil {
				panic(err)
			}
			maxNum = arg1
		}

		Index(maxNum)
	},
}

// Index builds the whole index: buckets, chunks and the overview files.
// maxNum 0 indexes every file under the media dir.
func Index(maxNum int) {
	util.RecreateOutputDir(constants.GetIndexDir())
	paths := util.GatherAllMidiPaths(constants.GetMediaDir(), maxNum)
	fileNumMap := file.CreateFileNumMap(paths)
	bucket.ProcessAllScoreFiles(fileNumMap)
	chunks := chunk.CreateAll()
	util.CreateBinary(constants.AllChunksPath(), chunks)
	util.CreateBinary(constants.FileNumMapPath(), fileNumMap)
	bucket.DeleteAll()
}
