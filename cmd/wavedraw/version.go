package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/wavedraw"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of wavedraw",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wavedraw version %s\n", wavedraw.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
