// Session management commands for the drmd CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/drmd/internal/session"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage stored editing sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		infos, err := store.List()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(infos)
		}
		if len(infos) == 0 {
			fmt.Println("no stored sessions")
			return nil
		}
		current := sessionName()
		for _, info := range infos {
			marker := " "
			if info.Name == current {
				marker = "*"
			}
			fmt.Printf("%s %-20s updated %s\n", marker, info.Name,
				info.UpdatedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		if err := store.Delete(args[0]); err != nil {
			if errors.Is(err, session.ErrNotFound) {
				return fmt.Errorf("session %q not found", args[0])
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitSysError)
		}
		fmt.Printf("session %q deleted\n", args[0])
		return nil
	},
}

func init() {
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsDeleteCmd)
}
