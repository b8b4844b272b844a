package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/franqsuite/backoffice/pkg/db"
)

// matrixWatchCmd represents the matrix watch command
var matrixWatchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Watch a file and reload the matrix if it's modified",
	Long: `Watch a file and reload the permission matrix when it changes.

To trigger a reload of the matrix, replace the contents of the watched file
with the path to the matrix document. The path must be visible to the
process running "backofficectl matrix watch".

Example:
  backofficectl matrix watch /run/backoffice/matrix/load`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		appliedBy, _ := cmd.Flags().GetString("applied-by")

		if err := watchMatrix(args[0], appliedBy); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch matrix: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	matrixCmd.AddCommand(matrixWatchCmd)
	matrixWatchCmd.Flags().String("applied-by", "", "UUID of the administrator recorded on created overrides")
}

func watchMatrix(filename string, appliedBy string) error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filename); err != nil {
		return fmt.Errorf("failed to watch file %s: %w", filename, err)
	}

	fmt.Printf("Watching %s for matrix changes\n", filename)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				fmt.Printf("[%s] File modified, reloading matrix...\n", time.Now().Format(time.RFC3339))

				// The watched file names the document to load
				content, err := os.ReadFile(filename)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
					continue
				}

				matrixPath := strings.TrimSpace(string(content))
				if matrixPath == "" {
					continue
				}

				if err := loadMatrixFromPath(database, matrixPath, appliedBy); err != nil {
					fmt.Fprintf(os.Stderr, "Error loading matrix: %v\n", err)
				} else {
					fmt.Printf("Matrix loaded successfully from %s\n", matrixPath)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Println("\nShutting down...")
			return nil
		}
	}
}

func loadMatrixFromPath(database *gorm.DB, matrixPath string, appliedBy string) error {
	loader, err := newMatrixLoader(database, appliedBy)
	if err != nil {
		return err
	}

	_, err = loader.LoadFile(matrixPath)
	return err
}
