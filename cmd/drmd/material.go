// Material commands for the drmd CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/drmd/pkg/types"
)

var materialCmd = &cobra.Command{
	Use:   "material",
	Short: "Manage the document's materials",
}

var materialAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append an empty material",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCertificate(func(cert *types.Certificate) error {
			cert.AddMaterial()
			fmt.Printf("material [%d] added\n", len(cert.Materials)-1)
			return nil
		})
	},
}

var (
	materialName        string
	materialDescription string
	materialClass       string
	materialSampleSize  string
	materialQuantities  string
	materialCertified   bool
)

var materialSetCmd = &cobra.Command{
	Use:   "set <index>",
	Short: "Update a material's fields",
	Long: `Update the material at the given index. Only flags that are passed
change. An empty minimum sample size exports as the sentinel "0";
--certified is encoded as an attribute on the exported element.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := indexArg(args[0])
		if err != nil {
			return err
		}
		return withCertificate(func(cert *types.Certificate) error {
			if i < 0 || i >= len(cert.Materials) {
				return fmt.Errorf("material %d: %w", i, types.ErrIndexOutOfRange)
			}
			m := cert.Materials[i]
			if cmd.Flags().Changed("name") {
				m.Name = materialName
			}
			if cmd.Flags().Changed("description") {
				m.Description = materialDescription
			}
			if cmd.Flags().Changed("class") {
				m.MaterialClass = materialClass
			}
			if cmd.Flags().Changed("sample-size") {
				m.MinimumSampleSize = materialSampleSize
			}
			if cmd.Flags().Changed("quantities") {
				m.ItemQuantities = materialQuantities
			}
			if cmd.Flags().Changed("certified") {
				m.IsCertified = materialCertified
			}
			return nil
		})
	},
}

var materialRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove a material",
	Long: `Remove the material at the given index. The last material cannot be
removed; a document always describes at least one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := indexArg(args[0])
		if err != nil {
			return err
		}
		return withCertificate(func(cert *types.Certificate) error {
			return cert.RemoveMaterial(i)
		})
	},
}

func init() {
	materialSetCmd.Flags().StringVar(&materialName, "name", "", "material name")
	materialSetCmd.Flags().StringVar(&materialDescription, "description", "", "free-text description")
	materialSetCmd.Flags().StringVar(&materialClass, "class", "", "material class")
	materialSetCmd.Flags().StringVar(&materialSampleSize, "sample-size", "", "minimum sample size")
	materialSetCmd.Flags().StringVar(&materialQuantities, "quantities", "", "item quantities")
	materialSetCmd.Flags().BoolVar(&materialCertified, "certified", false, "material is certified")

	materialCmd.AddCommand(materialAddCmd)
	materialCmd.AddCommand(materialSetCmd)
	materialCmd.AddCommand(materialRemoveCmd)
}
