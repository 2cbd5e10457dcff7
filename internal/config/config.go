package config

import (
	"slices"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Output formats written by a pipeline run.
const (
	FormatJSON    = "json"
	FormatCSV     = "csv"
	FormatXLSX    = "xlsx"
	FormatFigures = "figures"
	FormatGIS     = "gis"
)

// KnownFormats lists every supported output format.
var KnownFormats = []string{FormatJSON, FormatCSV, FormatXLSX, FormatFigures, FormatGIS}

// Config holds the full application configuration.
type Config struct {
	Log            LogConfig            `yaml:"log" mapstructure:"log"`
	Classification ClassificationConfig `yaml:"classification" mapstructure:"classification"`
	Output         OutputConfig         `yaml:"output" mapstructure:"output"`
	PostGIS        PostGISConfig        `yaml:"postgis" mapstructure:"postgis"`
}

// ClassificationConfig sets the class counts of the natural breaks and equal
// interval schemes.
type ClassificationConfig struct {
	NaturalBreaks  int `yaml:"natural_breaks" mapstructure:"natural_breaks"`
	EqualIntervals int `yaml:"equal_intervals" mapstructure:"equal_intervals"`
	// OmitEmptyClasses drops classes without members from class tables.
	OmitEmptyClasses bool `yaml:"omit_empty_classes" mapstructure:"omit_empty_classes"`
}

// OutputConfig configures where and how results are written.
type OutputConfig struct {
	ResultsFolder string   `yaml:"results_folder" mapstructure:"results_folder"`
	Language      string   `yaml:"language" mapstructure:"language"`
	DPI           int      `yaml:"dpi" mapstructure:"dpi"`
	DiagramWidth  float64  `yaml:"diagram_width" mapstructure:"diagram_width"`   // inches
	DiagramHeight float64  `yaml:"diagram_height" mapstructure:"diagram_height"` // inches
	Formats       []string `yaml:"formats" mapstructure:"formats"`
}

// Enabled reports whether format is among the configured output formats.
func (o OutputConfig) Enabled(format string) bool {
	return slices.Contains(o.Formats, format)
}

// PostGISConfig configures reading layers from PostGIS.
type PostGISConfig struct {
	GeometryColumn string `yaml:"geometry_column" mapstructure:"geometry_column"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("AREASTATS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("classification.natural_breaks", 4)
	v.SetDefault("classification.equal_intervals", 4)
	v.SetDefault("classification.omit_empty_classes", true)
	v.SetDefault("output.results_folder", "results")
	v.SetDefault("output.language", "en")
	v.SetDefault("output.dpi", 300)
	v.SetDefault("output.diagram_width", 10)
	v.SetDefault("output.diagram_height", 5)
	v.SetDefault("output.formats", KnownFormats)
	v.SetDefault("postgis.geometry_column", "geom")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings a command mode depends on. Modes are "stats"
// (basic statistics only) and "run" (full pipeline).
func (c *Config) Validate(mode string) error {
	var errs []string

	switch mode {
	case "stats":
	case "run":
		if c.Classification.NaturalBreaks < 1 {
			errs = append(errs, "classification.natural_breaks must be >= 1")
		}
		if c.Classification.EqualIntervals < 1 {
			errs = append(errs, "classification.equal_intervals must be >= 1")
		}
		if c.Output.ResultsFolder == "" {
			errs = append(errs, "output.results_folder is required")
		}
		if c.Output.DPI <= 0 {
			errs = append(errs, "output.dpi must be > 0")
		}
		if c.Output.DiagramWidth <= 0 || c.Output.DiagramHeight <= 0 {
			errs = append(errs, "output.diagram_width and output.diagram_height must be > 0")
		}
		for _, f := range c.Output.Formats {
			if !slices.Contains(KnownFormats, f) {
				errs = append(errs, "output.formats: unknown format "+f)
			}
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(errs) > 0 {
		return eris.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
