package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// matrixCmd represents the matrix command
var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Manage the permission matrix",
	Long:  `Manage the role permission matrix and user overrides.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'matrix' requires a subcommand (load, watch)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(matrixCmd)
}
