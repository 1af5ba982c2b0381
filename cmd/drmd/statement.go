// Statement commands for the drmd CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/drmd/pkg/types"
)

var statementCmd = &cobra.Command{
	Use:   "statement",
	Short: "Manage certifying statements",
	Long: `Manage the nine official statements and the free-form custom list.
Official statements are keyed by a closed set and export under fixed
labels; custom statements carry their own names. A statement with blank
content is omitted from the exported document.`,
}

var statementSetCmd = &cobra.Command{
	Use:   "set <key> <content>",
	Short: "Set an official statement",
	Long: `Set the official statement stored under key. Content may span
multiple lines; each non-blank line becomes its own content node on
export. Empty content clears the statement.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCertificate(func(cert *types.Certificate) error {
			err := cert.Statements.SetOfficial(args[0], types.Statement{Content: args[1]})
			if err != nil {
				return fmt.Errorf("%w (valid: %v)", err, types.OfficialStatementKeys)
			}
			return nil
		})
	},
}

var statementAddCmd = &cobra.Command{
	Use:   "add <name> <content>",
	Short: "Append a custom statement",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCertificate(func(cert *types.Certificate) error {
			cert.Statements.AddCustom(types.Statement{Name: args[0], Content: args[1]})
			fmt.Printf("custom statement [%d] added\n", len(cert.Statements.Custom)-1)
			return nil
		})
	},
}

var statementRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove a custom statement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := indexArg(args[0])
		if err != nil {
			return err
		}
		return withCertificate(func(cert *types.Certificate) error {
			return cert.Statements.RemoveCustom(i)
		})
	},
}

var statementListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all statements",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return readCertificate(func(cert *types.Certificate) error {
			if flagJSON {
				return printJSON(cert.Statements)
			}
			for _, key := range types.OfficialStatementKeys {
				content := cert.Statements.Official[key].Content
				if content == "" {
					content = "(empty)"
				}
				fmt.Printf("%s (%s):\n  %s\n", key, types.OfficialStatementLabels[key], content)
			}
			for i, stmt := range cert.Statements.Custom {
				fmt.Printf("statement [%d] %s:\n  %s\n", i, stmt.Name, stmt.Content)
			}
			return nil
		})
	},
}

func init() {
	statementCmd.AddCommand(statementSetCmd)
	statementCmd.AddCommand(statementAddCmd)
	statementCmd.AddCommand(statementRemoveCmd)
	statementCmd.AddCommand(statementListCmd)
}
