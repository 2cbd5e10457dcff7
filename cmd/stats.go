package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/area-stats/internal/dataset"
	"github.com/sells-group/area-stats/internal/pipeline"
	"github.com/sells-group/area-stats/internal/report"
)

var statsOut string

var statsCmd = &cobra.Command{
	Use:   "stats <source> [layer]",
	Short: "Write basic area statistics of one layer as JSON",
	Long:  "Computes sum, count, mean, median, std, quartiles, natural breaks and equal interval breaks of the polygon areas of a layer and writes basic_statistics_<layer>.json.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("stats"); err != nil {
			return err
		}

		src := dataset.Source{Path: args[0]}
		if len(args) == 2 {
			src.Layer = args[1]
		}

		res, err := pipeline.New(cfg).BasicStatistics(cmd.Context(), src, statsOut)
		if err != nil {
			return eris.Wrap(err, "basic statistics")
		}

		zap.L().Info("statistics complete",
			zap.String("layer", res.Name),
			zap.Int("count", res.Statistics.Count),
			zap.Float64("sum", res.Statistics.Sum),
		)

		// Print the statistics JSON to stdout
		data, err := report.MarshalFields(res.Statistics.Fields())
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsOut, "out", ".", "output directory")
	rootCmd.AddCommand(statsCmd)
}
