package main

import (
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/area-stats/internal/pipeline"
	"github.com/sells-group/area-stats/internal/project"
)

var (
	runProject    string
	runSource     string
	runLayer      string
	runName       string
	runSampleArea float64
	runClean      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run statistics, classification and reporting for a project",
	Long:  "Runs the full pipeline over every dataset of a project manifest (--project), or over a single source given with --source.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate("run"); err != nil {
			return err
		}

		m, err := runManifest(cmd)
		if err != nil {
			return err
		}

		result, err := pipeline.New(cfg).Run(ctx, m, pipeline.RunOptions{Clean: runClean})
		if err != nil {
			return eris.Wrap(err, "pipeline run")
		}

		zap.L().Info("run complete",
			zap.String("run_id", result.RunID),
			zap.String("project", result.Project),
			zap.Int("datasets", len(result.Datasets)),
			zap.Int("files", len(result.Files())),
		)

		// Print run summary JSON to stdout
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runSummary(result))
	},
}

// runManifest builds the manifest from --project or the single source flags.
func runManifest(cmd *cobra.Command) (*project.Manifest, error) {
	switch {
	case runProject != "" && runSource != "":
		return nil, eris.New("run: use either --project or --source")
	case runProject != "":
		return project.Load(runProject)
	case runSource == "":
		return nil, eris.New("run: --project or --source is required")
	}

	d := project.Dataset{Name: runName, Source: runSource, Layer: runLayer}
	if cmd.Flags().Changed("sample-area") {
		area := runSampleArea
		d.SampleArea = &area
	}
	name := runName
	if name == "" {
		name = pipeline.LayerName(d.Location())
	}
	m := project.Single(name, d)
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

type datasetSummary struct {
	Name    string                 `json:"name"`
	Records int                    `json:"records"`
	Phases  []pipeline.PhaseResult `json:"phases"`
	Files   []string               `json:"files"`
}

type summary struct {
	RunID    string           `json:"run_id"`
	Project  string           `json:"project"`
	Language string           `json:"language"`
	Results  string           `json:"results"`
	Workbook string           `json:"workbook,omitempty"`
	Datasets []datasetSummary `json:"datasets"`
	Duration int64            `json:"duration_ms"`
}

func runSummary(r *pipeline.Result) summary {
	s := summary{
		RunID:    r.RunID,
		Project:  r.Project,
		Language: r.Language,
		Results:  r.Folders.Root,
		Workbook: r.Workbook,
		Duration: r.Duration,
	}
	for _, d := range r.Datasets {
		s.Datasets = append(s.Datasets, datasetSummary{
			Name:    d.Name,
			Records: d.Records,
			Phases:  d.Phases,
			Files:   d.Files,
		})
	}
	return s
}

func init() {
	runCmd.Flags().StringVar(&runProject, "project", "", "project manifest (YAML)")
	runCmd.Flags().StringVar(&runSource, "source", "", "single layer source: .shp, .geojson, .gpkg or postgres:// URL")
	runCmd.Flags().StringVar(&runLayer, "layer", "", "GeoPackage layer or PostGIS [schema.]table")
	runCmd.Flags().StringVar(&runName, "name", "", "project and dataset name for --source (default: layer name)")
	runCmd.Flags().Float64Var(&runSampleArea, "sample-area", 0, "reference sample area for comparison mode")
	runCmd.Flags().BoolVar(&runClean, "clean", false, "remove previous results of the project first")
	rootCmd.AddCommand(runCmd)
}
