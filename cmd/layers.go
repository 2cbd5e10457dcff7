package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sells-group/area-stats/internal/dataset"
)

var layersCmd = &cobra.Command{
	Use:   "layers <file.gpkg>",
	Short: "List the feature layers of a GeoPackage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		layers, err := dataset.Layers(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, l := range layers {
			fmt.Fprintln(cmd.OutOrStdout(), l)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(layersCmd)
}
