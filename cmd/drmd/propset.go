// Property set commands for the drmd CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/drmd/pkg/types"
)

var propsetCmd = &cobra.Command{
	Use:   "propset",
	Short: "Manage material property sets and their results",
}

var propsetAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append an empty property set",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCertificate(func(cert *types.Certificate) error {
			cert.AddPropertySet()
			fmt.Printf("property set [%d] added\n", len(cert.PropertySets)-1)
			return nil
		})
	},
}

var (
	propsetName        string
	propsetDescription string
	propsetProcedures  string
	propsetExternalID  string
	propsetCertified   bool
)

var propsetSetCmd = &cobra.Command{
	Use:   "set <index>",
	Short: "Update a property set's fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := indexArg(args[0])
		if err != nil {
			return err
		}
		return withCertificate(func(cert *types.Certificate) error {
			set, err := propertySetAt(cert, i)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				set.Name = propsetName
			}
			if cmd.Flags().Changed("description") {
				set.Description = propsetDescription
			}
			if cmd.Flags().Changed("procedures") {
				set.Procedures = propsetProcedures
			}
			if cmd.Flags().Changed("id") {
				set.ExternalID = propsetExternalID
			}
			if cmd.Flags().Changed("certified") {
				set.IsCertified = propsetCertified
			}
			return nil
		})
	},
}

var propsetRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove a property set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := indexArg(args[0])
		if err != nil {
			return err
		}
		return withCertificate(func(cert *types.Certificate) error {
			return cert.RemovePropertySet(i)
		})
	},
}

var resultName string

var propsetResultCmd = &cobra.Command{
	Use:   "result <set-index>",
	Short: "Append a result table to a property set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := indexArg(args[0])
		if err != nil {
			return err
		}
		return withCertificate(func(cert *types.Certificate) error {
			set, err := propertySetAt(cert, i)
			if err != nil {
				return err
			}
			res := set.AddResult()
			res.Name = resultName
			fmt.Printf("result [%d] added to property set [%d]\n", len(set.Results)-1, i)
			return nil
		})
	},
}

var (
	rowName                string
	rowValue               string
	rowUnit                string
	rowUncertainty         string
	rowCoverageFactor      string
	rowCoverageProbability string
	rowDistribution        string
	rowDefaults            bool
)

var propsetRowCmd = &cobra.Command{
	Use:   "row <set-index> <result-index>",
	Short: "Append a quantity row to a result table",
	Long: `Append one quantity row. Numeric flags take plain decimals; the four
uncertainty fields form one optional group and are exported together
when any is present. --defaults primes coverage factor 2, coverage
probability 0.95, and a normal distribution.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		si, err := indexArg(args[0])
		if err != nil {
			return err
		}
		ri, err := indexArg(args[1])
		if err != nil {
			return err
		}
		return withCertificate(func(cert *types.Certificate) error {
			set, err := propertySetAt(cert, si)
			if err != nil {
				return err
			}
			if ri < 0 || ri >= len(set.Results) {
				return fmt.Errorf("result %d: %w", ri, types.ErrIndexOutOfRange)
			}

			row := types.QuantityRow{Name: rowName, Unit: rowUnit, Distribution: rowDistribution}
			if rowDefaults {
				row = types.NewQuantityRow()
				row.Name = rowName
				row.Unit = rowUnit
				if rowDistribution != "" {
					row.Distribution = rowDistribution
				}
			}
			if row.Value, err = floatFlag("value", rowValue); err != nil {
				return err
			}
			var f *float64
			if f, err = floatFlag("uncertainty", rowUncertainty); err != nil {
				return err
			} else if f != nil {
				row.Uncertainty = f
			}
			if f, err = floatFlag("coverage-factor", rowCoverageFactor); err != nil {
				return err
			} else if f != nil {
				row.CoverageFactor = f
			}
			if f, err = floatFlag("coverage-probability", rowCoverageProbability); err != nil {
				return err
			} else if f != nil {
				row.CoverageProbability = f
			}

			res := set.Results[ri]
			res.Quantities = append(res.Quantities, row)
			fmt.Printf("row [%d] added to result [%d]\n", len(res.Quantities)-1, ri)
			return nil
		})
	},
}

// propertySetAt bounds-checks a property set index.
func propertySetAt(cert *types.Certificate, i int) (*types.PropertySet, error) {
	if i < 0 || i >= len(cert.PropertySets) {
		return nil, fmt.Errorf("property set %d: %w", i, types.ErrIndexOutOfRange)
	}
	return cert.PropertySets[i], nil
}

func init() {
	propsetSetCmd.Flags().StringVar(&propsetName, "name", "", "property set name")
	propsetSetCmd.Flags().StringVar(&propsetDescription, "description", "", "free-text description")
	propsetSetCmd.Flags().StringVar(&propsetProcedures, "procedures", "", "measurement procedures")
	propsetSetCmd.Flags().StringVar(&propsetExternalID, "id", "", "document-visible id attribute")
	propsetSetCmd.Flags().BoolVar(&propsetCertified, "certified", false, "property set is certified")

	propsetResultCmd.Flags().StringVar(&resultName, "name", "", "result table name")

	propsetRowCmd.Flags().StringVar(&rowName, "name", "", "quantity name")
	propsetRowCmd.Flags().StringVar(&rowValue, "value", "", "measured value")
	propsetRowCmd.Flags().StringVar(&rowUnit, "unit", "", "SI unit expression")
	propsetRowCmd.Flags().StringVar(&rowUncertainty, "uncertainty", "", "expanded measurement uncertainty")
	propsetRowCmd.Flags().StringVar(&rowCoverageFactor, "coverage-factor", "", "coverage factor")
	propsetRowCmd.Flags().StringVar(&rowCoverageProbability, "coverage-probability", "", "coverage probability")
	propsetRowCmd.Flags().StringVar(&rowDistribution, "distribution", "", "distribution, e.g. normal")
	propsetRowCmd.Flags().BoolVar(&rowDefaults, "defaults", false, "prime default uncertainty parameters")

	propsetCmd.AddCommand(propsetAddCmd)
	propsetCmd.AddCommand(propsetSetCmd)
	propsetCmd.AddCommand(propsetRemoveCmd)
	propsetCmd.AddCommand(propsetResultCmd)
	propsetCmd.AddCommand(propsetRowCmd)
}
