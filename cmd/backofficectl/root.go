package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "backofficectl",
	Short: "Franchise back-office control plane",
	Long: `backofficectl manages the franchise back-office server: running it,
migrating its database, and administering the permission matrix.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
