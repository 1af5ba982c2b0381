// Show command for the drmd CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/drmd/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the session's document state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return readCertificate(func(cert *types.Certificate) error {
			if flagJSON {
				return printJSON(cert)
			}
			printSummary(cert)
			return nil
		})
	},
}

// printSummary writes a human-oriented overview of the document state.
func printSummary(cert *types.Certificate) {
	fmt.Printf("session:        %s\n", sessionName())
	fmt.Printf("title:          %s\n", cert.Title)
	if cert.PersistentID != "" {
		fmt.Printf("persistent id:  %s\n", cert.PersistentID)
	}
	value := cert.Identification.Value
	if value == "" {
		value = "(none)"
	}
	fmt.Printf("identification: %s (issuer %s)\n", value, cert.Identification.Issuer)
	fmt.Printf("validity:       %s", cert.Validity.Kind)
	switch cert.Validity.Kind {
	case types.ValidityTimeAfterDispatch:
		fmt.Printf(" period=%s dispatch=%s", cert.Validity.Period,
			cert.Validity.DispatchDate.Format(types.DateFormat))
	case types.ValiditySpecificTime:
		fmt.Printf(" date=%s", cert.Validity.SpecificDate.Format(types.DateFormat))
	}
	fmt.Println()

	fmt.Printf("producers:      %d\n", len(cert.Producers))
	for i, p := range cert.Producers {
		fmt.Printf("  [%d] %s\n", i, orNone(p.Name))
	}
	fmt.Printf("persons:        %d\n", len(cert.Persons))
	for i, p := range cert.Persons {
		fmt.Printf("  [%d] %s %s\n", i, orNone(p.PersonName), personFlags(p))
	}
	fmt.Printf("materials:      %d\n", len(cert.Materials))
	for i, m := range cert.Materials {
		certified := ""
		if m.IsCertified {
			certified = " (certified)"
		}
		fmt.Printf("  [%d] %s%s\n", i, orNone(m.Name), certified)
	}
	fmt.Printf("property sets:  %d\n", len(cert.PropertySets))
	for i, set := range cert.PropertySets {
		rows := 0
		for _, res := range set.Results {
			rows += len(res.Quantities)
		}
		fmt.Printf("  [%d] %s (%d results, %d rows)\n", i, orNone(set.Name), len(set.Results), rows)
	}

	official := 0
	for _, key := range types.OfficialStatementKeys {
		if cert.Statements.Official[key].Content != "" {
			official++
		}
	}
	fmt.Printf("statements:     %d official, %d custom\n", official, len(cert.Statements.Custom))

	if cert.Comment != "" {
		fmt.Printf("comment:        %s\n", cert.Comment)
	}
	if att := cert.Attachment(); att != nil {
		fmt.Printf("attachment:     %s (%s, %d bytes)\n", att.FileName, att.MimeType, len(att.Data))
	}
	if cert.SignatureFile != "" {
		fmt.Printf("signature:      %s\n", cert.SignatureFile)
	}
}

// orNone substitutes a placeholder for empty display values.
func orNone(s string) string {
	if s == "" {
		return "(unnamed)"
	}
	return s
}

// personFlags renders the set signing flags compactly.
func personFlags(p types.ResponsiblePerson) string {
	var flags []byte
	if p.MainSigner {
		flags = append(flags, 'M')
	}
	if p.CryptElectronicSeal {
		flags = append(flags, 'S')
	}
	if p.CryptElectronicSignature {
		flags = append(flags, 'G')
	}
	if p.CryptElectronicTimeStamp {
		flags = append(flags, 'T')
	}
	if len(flags) == 0 {
		return ""
	}
	return "[" + string(flags) + "]"
}
