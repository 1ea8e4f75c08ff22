package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmakinen/partwise/chunk"
	"github.com/tmakinen/partwise/util"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [chunk file]",
	Short: "Inspects a chunk",
	Long:  `Dumps the key index of a chunk file.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	f := util.OpenFileOrPanic(path)
	defer f.Close()
	index, _ := chunk.ReadIndexOrPanic(f)
	for _, key := range util.GetKeys(index) {
		fmt.Printf("key: %v\n", key)
		fmt.Printf("val: %v\n", index[key])
	}
}
