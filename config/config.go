// Package config reads the handful of environment knobs machine-report
// understands. There is no config file: every setting comes from a
// MACHINE_REPORT_* variable and has a default that produces the full report.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended (with an underscore) to every setting name.
const EnvPrefix = "MACHINE_REPORT"

// Theme values.
const (
	ThemeAuto  = "auto"
	ThemePlain = "plain"
	ThemeColor = "color"
)

// Width measurer values.
const (
	WidthHeuristic = "heuristic"
	WidthExact     = "exact"
)

// Config holds the runtime settings.
type Config struct {
	// Debug enables debug lines on stderr.
	Debug bool
	// Theme selects the plain or colored edition. "auto" picks color only
	// when stdout is a terminal.
	Theme string
	// Width selects the display-width measurer used for column sizing.
	Width string
}

// Load binds the environment through viper. Invalid values are replaced by
// their default and reported in the returned error; the Config is always
// usable.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("debug", false)
	v.SetDefault("theme", ThemeAuto)
	v.SetDefault("width", WidthHeuristic)

	cfg := &Config{
		Debug: v.GetBool("debug"),
		Theme: strings.ToLower(strings.TrimSpace(v.GetString("theme"))),
		Width: strings.ToLower(strings.TrimSpace(v.GetString("width"))),
	}

	var problems []string
	switch cfg.Theme {
	case ThemeAuto, ThemePlain, ThemeColor:
	default:
		problems = append(problems, fmt.Sprintf("%s_THEME=%q is not one of auto, plain, color", EnvPrefix, cfg.Theme))
		cfg.Theme = ThemeAuto
	}
	switch cfg.Width {
	case WidthHeuristic, WidthExact:
	default:
		problems = append(problems, fmt.Sprintf("%s_WIDTH=%q is not one of heuristic, exact", EnvPrefix, cfg.Width))
		cfg.Width = WidthHeuristic
	}

	if len(problems) > 0 {
		return cfg, fmt.Errorf("invalid configuration, using defaults: %s", strings.Join(problems, "; "))
	}
	return cfg, nil
}
