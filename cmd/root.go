package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "partwise",
	Short: "Score pattern indexing and search",
	Long:  `Indexes melodic patterns extracted from MIDI scores and serves searches over them.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
