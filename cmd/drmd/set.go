// Set commands for the drmd CLI document-level fields.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/drmd/pkg/types"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Set document-level fields",
}

var setTitleCmd = &cobra.Command{
	Use:   "title <title>",
	Short: "Set the document title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCertificate(func(cert *types.Certificate) error {
			if err := cert.SetTitle(args[0]); err != nil {
				return fmt.Errorf("%w (valid: %v)", err, types.AllowedTitles)
			}
			return nil
		})
	},
}

var setIDCmd = &cobra.Command{
	Use:   "uid <identifier>",
	Short: "Set the persistent document identifier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCertificate(func(cert *types.Certificate) error {
			cert.PersistentID = args[0]
			return nil
		})
	},
}

var (
	identIssuer string
	identValue  string
	identName   string
)

var setIdentificationCmd = &cobra.Command{
	Use:   "identification",
	Short: "Set the document identification",
	Long: `Set the single document-level identification. Materials mirror this
entry on export. An empty value exports as the sentinel "N/A".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCertificate(func(cert *types.Certificate) error {
			ident := cert.Identification
			if cmd.Flags().Changed("issuer") {
				ident.Issuer = identIssuer
			}
			if cmd.Flags().Changed("value") {
				ident.Value = identValue
			}
			if cmd.Flags().Changed("name") {
				ident.IDName = identName
			}
			if err := cert.SetIdentification(ident); err != nil {
				return fmt.Errorf("%w (valid: %v)", err, types.AllowedIssuers)
			}
			return nil
		})
	},
}

var (
	validityPeriod string
	validityDate   string
)

var setValidityCmd = &cobra.Command{
	Use:   "validity <kind>",
	Short: "Set the period of validity",
	Long: `Select the validity branch: untilRevoked, timeAfterDispatch, or
specificTime. --period and --date apply to the matching branch; fields
of the unselected branches are kept so switching back is lossless.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCertificate(func(cert *types.Certificate) error {
			if err := cert.Validity.SetKind(types.ValidityKind(args[0])); err != nil {
				return fmt.Errorf("%w (valid: %s, %s, %s)", err,
					types.ValidityUntilRevoked, types.ValidityTimeAfterDispatch, types.ValiditySpecificTime)
			}
			if validityPeriod != "" {
				cert.Validity.Period = validityPeriod
			}
			if validityDate != "" {
				switch cert.Validity.Kind {
				case types.ValidityTimeAfterDispatch:
					cert.Validity.DispatchDate = types.ParseDate(validityDate)
				case types.ValiditySpecificTime:
					cert.Validity.SpecificDate = types.ParseDate(validityDate)
				}
			}
			return nil
		})
	},
}

var setCommentCmd = &cobra.Command{
	Use:   "comment <text>",
	Short: "Set the free-text document comment",
	Long: `Set the document comment. An empty string clears it. Multi-line
comments survive the document round trip as a single node.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCertificate(func(cert *types.Certificate) error {
			cert.Comment = args[0]
			return nil
		})
	},
}

func init() {
	setIdentificationCmd.Flags().StringVar(&identIssuer, "issuer", "", "identification issuer")
	setIdentificationCmd.Flags().StringVar(&identValue, "value", "", "identification value")
	setIdentificationCmd.Flags().StringVar(&identName, "name", "", "identification display name")

	setValidityCmd.Flags().StringVar(&validityPeriod, "period", "", "ISO-8601 duration, e.g. P1Y6M")
	setValidityCmd.Flags().StringVar(&validityDate, "date", "", "ISO-8601 date, e.g. 2026-01-31")

	setCmd.AddCommand(setTitleCmd)
	setCmd.AddCommand(setIDCmd)
	setCmd.AddCommand(setIdentificationCmd)
	setCmd.AddCommand(setValidityCmd)
	setCmd.AddCommand(setCommentCmd)
}
