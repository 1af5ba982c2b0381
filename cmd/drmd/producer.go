// Producer commands for the drmd CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/drmd/pkg/types"
)

var producerCmd = &cobra.Command{
	Use:   "producer",
	Short: "Manage reference material producers",
}

var producerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append an empty producer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCertificate(func(cert *types.Certificate) error {
			cert.Producers = append(cert.Producers, types.Producer{})
			fmt.Printf("producer [%d] added\n", len(cert.Producers)-1)
			return nil
		})
	},
}

var producerFields types.Producer

var producerSetCmd = &cobra.Command{
	Use:   "set <index>",
	Short: "Update a producer's fields",
	Long: `Update the producer at the given index. Only flags that are passed
change; other fields keep their values. Every field is optional and an
empty producer exports as a dummy entry.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := indexArg(args[0])
		if err != nil {
			return err
		}
		return withCertificate(func(cert *types.Certificate) error {
			if i < 0 || i >= len(cert.Producers) {
				return fmt.Errorf("producer %d: %w", i, types.ErrIndexOutOfRange)
			}
			p := &cert.Producers[i]
			applyIfChanged(cmd, map[string]*string{
				"name":         &p.Name,
				"email":        &p.Email,
				"phone":        &p.Phone,
				"fax":          &p.Fax,
				"street":       &p.Street,
				"street-no":    &p.StreetNo,
				"post-code":    &p.PostCode,
				"city":         &p.City,
				"country-code": &p.CountryCode,
			}, map[string]string{
				"name":         producerFields.Name,
				"email":        producerFields.Email,
				"phone":        producerFields.Phone,
				"fax":          producerFields.Fax,
				"street":       producerFields.Street,
				"street-no":    producerFields.StreetNo,
				"post-code":    producerFields.PostCode,
				"city":         producerFields.City,
				"country-code": producerFields.CountryCode,
			})
			return nil
		})
	},
}

var producerRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove a producer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := indexArg(args[0])
		if err != nil {
			return err
		}
		return withCertificate(func(cert *types.Certificate) error {
			if i < 0 || i >= len(cert.Producers) {
				return fmt.Errorf("producer %d: %w", i, types.ErrIndexOutOfRange)
			}
			cert.Producers = append(cert.Producers[:i], cert.Producers[i+1:]...)
			return nil
		})
	},
}

// applyIfChanged copies flag values into targets for flags the user
// actually passed.
func applyIfChanged(cmd *cobra.Command, targets map[string]*string, values map[string]string) {
	for name, target := range targets {
		if cmd.Flags().Changed(name) {
			*target = values[name]
		}
	}
}

func init() {
	producerSetCmd.Flags().StringVar(&producerFields.Name, "name", "", "producer name")
	producerSetCmd.Flags().StringVar(&producerFields.Email, "email", "", "contact email")
	producerSetCmd.Flags().StringVar(&producerFields.Phone, "phone", "", "contact phone")
	producerSetCmd.Flags().StringVar(&producerFields.Fax, "fax", "", "contact fax")
	producerSetCmd.Flags().StringVar(&producerFields.Street, "street", "", "street")
	producerSetCmd.Flags().StringVar(&producerFields.StreetNo, "street-no", "", "street number")
	producerSetCmd.Flags().StringVar(&producerFields.PostCode, "post-code", "", "postal code")
	producerSetCmd.Flags().StringVar(&producerFields.City, "city", "", "city")
	producerSetCmd.Flags().StringVar(&producerFields.CountryCode, "country-code", "", "ISO country code")

	producerCmd.AddCommand(producerAddCmd)
	producerCmd.AddCommand(producerSetCmd)
	producerCmd.AddCommand(producerRemoveCmd)
}
