// Package config loads the presentation and evaluation settings the
// core's formatter and evaluator consult: decimal/group separators,
// precision, unit display style, date/time formats, the trig angle
// unit, and the user's locale region. Settings are loaded once from
// embedded defaults merged with an optional user config file, then may
// be adjusted at runtime (SetRegion, SetAngleUnit) the same way the
// wire API's setUserLocale does.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

//go:embed defaults.toml
var defaultsToml string

// GroupSize names the digit-grouping cadence §4.9 allows.
type GroupSize string

const (
	GroupOff        GroupSize = "off"
	GroupThree      GroupSize = "three"
	GroupSouthAsian GroupSize = "south_asian" // 2-3: 1,00,000
	GroupFour       GroupSize = "four"
)

// FormatSettings drives internal/format.
type FormatSettings struct {
	DecimalSeparator string    `mapstructure:"decimal_separator"`
	GroupSeparator   string    `mapstructure:"group_separator"`
	GroupSize        GroupSize `mapstructure:"group_size"`
	Precision        int       `mapstructure:"precision"` // -1 = auto
	UnitStyle        string    `mapstructure:"unit_style"` // "symbol" | "name"
	TimeFormat       string    `mapstructure:"time_format"` // "h12" | "h23"
	DateFormat       string    `mapstructure:"date_format"` // YYYY, MM and DD tokens; MMM and DDD are not recognized
	DateTimeOrder    string    `mapstructure:"date_time_order"` // "date_first" | "time_first"
}

// EvalSettings drives internal/eval.
type EvalSettings struct {
	AngleUnit string `mapstructure:"angle_unit"` // "rad" | "deg"
}

// Settings is the root settings bundle threaded through a Session.
type Settings struct {
	Format FormatSettings `mapstructure:"format"`
	Eval   EvalSettings   `mapstructure:"eval"`
	Locale struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"locale"`
}

// Load builds Settings from embedded defaults merged with
// ~/.calcrc.toml and, at higher priority, ~/.config/calc/config.toml.
// A missing or malformed user file is silently ignored; the embedded
// defaults always parse (a build-time invariant, not a runtime one).
func Load() (*Settings, error) {
	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(strings.NewReader(defaultsToml)); err != nil {
		panic("invalid embedded defaults.toml: " + err.Error())
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		fallback := filepath.Join(home, ".calcrc.toml")
		if _, err := os.Stat(fallback); err == nil {
			v.SetConfigFile(fallback)
			_ = v.MergeInConfig()
		}
		xdg := filepath.Join(home, ".config", "calc", "config.toml")
		if _, err := os.Stat(xdg); err == nil {
			v.SetConfigFile(xdg)
			_ = v.MergeInConfig()
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Default returns the settings produced by the embedded defaults
// alone, with no user config file consulted — the form a library
// caller with no filesystem access wants.
func Default() *Settings {
	s, err := new(Settings), error(nil)
	v := viper.New()
	v.SetConfigType("toml")
	if err = v.ReadConfig(strings.NewReader(defaultsToml)); err != nil {
		panic("invalid embedded defaults.toml: " + err.Error())
	}
	if err = v.Unmarshal(s); err != nil {
		panic("invalid embedded defaults.toml: " + err.Error())
	}
	return s
}

// SetRegion updates the locale region used for territory-constrained
// timezone resolution, taking effect for the next evaluation.
func (s *Settings) SetRegion(region string) {
	s.Locale.Region = region
}

// SetAngleUnit updates the unit trigonometric functions consume.
func (s *Settings) SetAngleUnit(unit string) {
	s.Eval.AngleUnit = unit
}
