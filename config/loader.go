package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. GOSIGNAL_DETECTION_CRITERIA.
const EnvPrefix = "GOSIGNAL"

// Load loads configuration from file, applying defaults and environment overrides.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("gosignal")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return parseConfig(v)
}

// setDefaults registers every key so that environment overrides apply even
// when the file omits them.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("input.path", d.Input.Path)
	v.SetDefault("input.index_column", d.Input.IndexColumn)
	v.SetDefault("input.columns", d.Input.Columns)
	v.SetDefault("input.delimiter", d.Input.Delimiter)
	v.SetDefault("input.skip_rows", d.Input.SkipRows)
	v.SetDefault("input.sampling_period", d.Input.SamplingPeriod)

	v.SetDefault("signal", d.Signal)
	v.SetDefault("detection.criteria", d.Detection.Criteria)
	v.SetDefault("detection.direction", d.Detection.Direction)

	v.SetDefault("smoothing.enabled", d.Smoothing.Enabled)
	v.SetDefault("smoothing.window_duration", d.Smoothing.WindowDuration)
	v.SetDefault("smoothing.use_for_features", d.Smoothing.UseForFeatures)

	v.SetDefault("window.half_width", d.Window.HalfWidth)
	v.SetDefault("window.occurrence", d.Window.Occurrence)
	v.SetDefault("window.step", d.Window.Step)

	v.SetDefault("features.window_duration", d.Features.WindowDuration)
	v.SetDefault("features.tolerance", d.Features.Tolerance)

	v.SetDefault("output.report", d.Output.Report)
	v.SetDefault("output.html", d.Output.HTML)
	v.SetDefault("output.png", d.Output.PNG)
	v.SetDefault("output.window_csv", d.Output.WindowCSV)
	v.SetDefault("output.secondary", d.Output.Secondary)
	v.SetDefault("output.title", d.Output.Title)
	v.SetDefault("output.x_label", d.Output.XLabel)
	v.SetDefault("output.primary_label", d.Output.PrimaryLabel)
	v.SetDefault("output.secondary_label", d.Output.SecondaryLabel)
	v.SetDefault("output.width", d.Output.Width)
	v.SetDefault("output.height", d.Output.Height)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output_path", d.Logging.OutputPath)
}

// parseConfig parses viper config into Config struct
func parseConfig(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
