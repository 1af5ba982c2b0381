// Units command for the drmd CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/drmd/internal/units"
)

var unitsOntologyPath string

var unitsCmd = &cobra.Command{
	Use:   "units [kind]",
	Short: "List quantity kinds and applicable units",
	Long: `List the quantity kinds from the configured QUDT ontology, or the
applicable units for one kind. The listing is advisory; any unit text
can be entered on a quantity row.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := unitsOntologyPath
		if path == "" {
			path = configUnitsPath
		}
		if path == "" {
			return fmt.Errorf("no ontology configured; set units_path in config.yaml or pass --ontology")
		}

		lookup, err := units.Load(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "load ontology:", err)
			os.Exit(exitSysError)
		}

		var listing []string
		if len(args) == 1 {
			listing = lookup.Units(args[0])
		} else {
			listing = lookup.Kinds()
		}

		if flagJSON {
			return printJSON(listing)
		}
		for _, item := range listing {
			fmt.Println(item)
		}
		return nil
	},
}

func init() {
	unitsCmd.Flags().StringVar(&unitsOntologyPath, "ontology", "", "QUDT Turtle ontology file (overrides config)")
}
