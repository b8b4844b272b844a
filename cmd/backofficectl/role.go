package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/franqsuite/backoffice/pkg/db"
	gormstore "github.com/franqsuite/backoffice/pkg/server/store/gorm"
)

// roleCmd represents the role command
var roleCmd = &cobra.Command{
	Use:   "role",
	Short: "Manage user role assignments",
	Long:  `Manage permission levels and user role assignments.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'role' requires a subcommand (assign, list)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

// roleAssignCmd represents the role assign command
var roleAssignCmd = &cobra.Command{
	Use:   "assign <user_id> <level>",
	Short: "Assign a permission level to a user",
	Long: `Assign a permission level to a user.

A user holds exactly one role; assigning replaces any previous assignment.
The role must already be registered.

Example:
  backofficectl role assign 5f4c2f7e-9a6e-4e5d-8f3a-111111111111 gerente`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := assignRole(args[0], args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to assign role: %v\n", err)
			os.Exit(1)
		}
	},
}

// roleListCmd represents the role list command
var roleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered permission levels",
	Run: func(cmd *cobra.Command, args []string) {
		if err := listRoles(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list roles: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(roleCmd)
	roleCmd.AddCommand(roleAssignCmd)
	roleCmd.AddCommand(roleListCmd)
}

func assignRole(rawUserID string, level string) error {
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return fmt.Errorf("user_id must be a UUID: %w", err)
	}

	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	roles := gormstore.NewRolesStore(database)
	if !roles.RoleExists(level) {
		return fmt.Errorf("role %q is not registered", level)
	}

	permissions := gormstore.NewPermissionsStore(database)
	if err := permissions.AssignUserRole(userID, level); err != nil {
		return err
	}

	fmt.Printf("Assigned role %q to user %s\n", level, userID)
	return nil
}

func listRoles() error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	roles, err := gormstore.NewRolesStore(database).ListRoles()
	if err != nil {
		return err
	}

	if len(roles) == 0 {
		fmt.Println("No roles registered")
		return nil
	}

	for _, role := range roles {
		fmt.Printf("%s\t%s\n", role.ID, role.Level)
	}
	return nil
}
