package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of chat-archiver",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("chat-archiver %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
