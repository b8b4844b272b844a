package main

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/franqsuite/backoffice/pkg/config"
	"github.com/franqsuite/backoffice/pkg/db"
	"github.com/franqsuite/backoffice/pkg/server/middleware"
	gormstore "github.com/franqsuite/backoffice/pkg/server/store/gorm"
)

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token <user_id>",
	Short: "Issue a session token for a user",
	Long: `Issue a signed session token for a user.

The token is signed with BACKOFFICE_SESSION_KEY and carries the user's
full name when the user is known to the identity tables.

Example:
  backofficectl token 5f4c2f7e-9a6e-4e5d-8f3a-111111111111`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := issueToken(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to issue token: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}

func issueToken(rawUserID string) error {
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return fmt.Errorf("user_id must be a UUID: %w", err)
	}

	sessionKeyB64, ok := os.LookupEnv("BACKOFFICE_SESSION_KEY")
	if !ok {
		return fmt.Errorf("BACKOFFICE_SESSION_KEY environment variable is required")
	}
	sessionKey, err := base64.StdEncoding.DecodeString(sessionKeyB64)
	if err != nil {
		return fmt.Errorf("bad BACKOFFICE_SESSION_KEY: %w", err)
	}

	var fullName string
	if database, err := db.Connect(db.Config{}); err == nil {
		if user := gormstore.NewUsersStore(database).FetchUser(userID); user != nil {
			fullName = user.FullName
		}
	}

	sessions := middleware.NewSessionAuthenticator(sessionKey, config.Get().SessionTTL())
	token, err := sessions.IssueToken(userID, fullName)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
