// Validate command for the drmd CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/drmd/internal/drmdxml"
	"github.com/dukaforge/drmd/internal/schema"
	"github.com/dukaforge/drmd/pkg/types"
)

var validateSchemaPath string

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a document against the XSD schema",
	Long: `Validate a serialized document against the configured XSD schema.
Without a file argument the session's state is serialized and checked.
An invalid document is reported but is not an error; validation is
advisory and never blocks an export.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schemaPath := validateSchemaPath
		if schemaPath == "" {
			schemaPath = configSchemaPath
		}
		if schemaPath == "" {
			return fmt.Errorf("no schema configured; set schema_path in config.yaml or pass --schema")
		}

		var document []byte
		if len(args) == 1 {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}
			document = data
		} else {
			err := readCertificate(func(cert *types.Certificate) error {
				data, err := drmdxml.NewSerializer().Serialize(cert)
				if err != nil {
					return err
				}
				document = data
				return nil
			})
			if err != nil {
				fmt.Fprintln(os.Stderr, "serialize:", err)
				os.Exit(exitSysError)
			}
		}

		validator := schema.NewValidator(schemaPath)
		defer validator.Close()

		result, err := validator.Validate(document)
		if err != nil {
			fmt.Fprintln(os.Stderr, "validate:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(result)
		}
		if result.Valid {
			fmt.Println("document is valid")
			return nil
		}
		fmt.Println("document is INVALID:")
		fmt.Println(result.Detail)
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "XSD schema file (overrides config)")
}
