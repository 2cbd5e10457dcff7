package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/area-stats/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "area-stats",
	Short: "Area statistics and classification of polygon layers",
	Long:  "Reads polygon layers from Shapefile, GeoJSON, GeoPackage or PostGIS, computes area statistics and natural breaks, equal interval and quartile classifications, and writes JSON, CSV, Excel, diagrams and classified GIS data.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
