// Responsible person commands for the drmd CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/drmd/pkg/types"
)

var personCmd = &cobra.Command{
	Use:   "person",
	Short: "Manage responsible persons",
}

var personAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append an empty responsible person",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCertificate(func(cert *types.Certificate) error {
			cert.AddPerson()
			fmt.Printf("person [%d] added\n", len(cert.Persons)-1)
			return nil
		})
	},
}

var (
	personName        string
	personDescription string
	personRole        string
	personMainSigner  bool
	personSeal        bool
	personSignature   bool
	personTimeStamp   bool
)

var personSetCmd = &cobra.Command{
	Use:   "set <index>",
	Short: "Update a responsible person's fields",
	Long: `Update the responsible person at the given index. Only flags that
are passed change. The four signing flags are independent booleans;
only true flags appear in the exported document.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := indexArg(args[0])
		if err != nil {
			return err
		}
		return withCertificate(func(cert *types.Certificate) error {
			if i < 0 || i >= len(cert.Persons) {
				return fmt.Errorf("person %d: %w", i, types.ErrIndexOutOfRange)
			}
			p := &cert.Persons[i]
			if cmd.Flags().Changed("name") {
				p.PersonName = personName
			}
			if cmd.Flags().Changed("description") {
				p.Description = personDescription
			}
			if cmd.Flags().Changed("role") {
				p.Role = personRole
			}
			if cmd.Flags().Changed("main-signer") {
				p.MainSigner = personMainSigner
			}
			if cmd.Flags().Changed("seal") {
				p.CryptElectronicSeal = personSeal
			}
			if cmd.Flags().Changed("signature") {
				p.CryptElectronicSignature = personSignature
			}
			if cmd.Flags().Changed("timestamp") {
				p.CryptElectronicTimeStamp = personTimeStamp
			}
			return nil
		})
	},
}

var personRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove a responsible person",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := indexArg(args[0])
		if err != nil {
			return err
		}
		return withCertificate(func(cert *types.Certificate) error {
			return cert.RemovePerson(i)
		})
	},
}

func init() {
	personSetCmd.Flags().StringVar(&personName, "name", "", "person name")
	personSetCmd.Flags().StringVar(&personDescription, "description", "", "free-text description")
	personSetCmd.Flags().StringVar(&personRole, "role", "", "role, e.g. Approver")
	personSetCmd.Flags().BoolVar(&personMainSigner, "main-signer", false, "person is the main signer")
	personSetCmd.Flags().BoolVar(&personSeal, "seal", false, "person applies an electronic seal")
	personSetCmd.Flags().BoolVar(&personSignature, "signature", false, "person applies an electronic signature")
	personSetCmd.Flags().BoolVar(&personTimeStamp, "timestamp", false, "person applies an electronic time stamp")

	personCmd.AddCommand(personAddCmd)
	personCmd.AddCommand(personSetCmd)
	personCmd.AddCommand(personRemoveCmd)
}
