package sprig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownProfile is returned when a config names a profile that does not
// exist.
var ErrUnknownProfile = errors.New("unknown profile")

// Profile selects the target screen class. It decides the drag threshold
// and the default screen geometry.
type Profile string

const (
	ProfileStandard Profile = "standard" // desktop and TV sized screens
	ProfileCompact  Profile = "compact"  // small handheld screens
)

// baseDragThreshold is the finger wiggle allowed on a standard screen
// before a pending tap is cancelled.
const baseDragThreshold = 40

// Valid reports whether p names a known profile.
func (p Profile) Valid() bool {
	return p == ProfileStandard || p == ProfileCompact
}

// Scaler returns the pixel density divisor for the profile: 2 for compact
// screens, 1 otherwise.
func (p Profile) Scaler() int {
	if p == ProfileCompact {
		return 2
	}
	return 1
}

// DragThreshold returns the pointer displacement, on either axis, that
// cancels a pending tap.
func (p Profile) DragThreshold() int {
	s := p.Scaler()
	return baseDragThreshold / s / s
}

// Config is the startup configuration of a Stage and its backend.
type Config struct {
	Profile   Profile `yaml:"profile"`
	Title     string  `yaml:"title,omitempty"`
	Width     int     `yaml:"width,omitempty"`
	Height    int     `yaml:"height,omitempty"`
	PaneWidth int     `yaml:"pane_width,omitempty"`

	// HighlightSettle is the time in seconds a held press takes to decay
	// from DeepHighlight to ThickHighlight. Zero disables the decay.
	HighlightSettle float64 `yaml:"highlight_settle"`

	Debug bool `yaml:"debug,omitempty"`
}

// DefaultConfig returns the defaults for a profile. Unknown profiles get the
// standard defaults.
func DefaultConfig(p Profile) Config {
	if p == ProfileCompact {
		return Config{
			Profile:         ProfileCompact,
			Title:           "sprig",
			Width:           400,
			Height:          480,
			PaneWidth:       300,
			HighlightSettle: 0.25,
		}
	}
	return Config{
		Profile:         ProfileStandard,
		Title:           "sprig",
		Width:           1280,
		Height:          720,
		PaneWidth:       720,
		HighlightSettle: 0.25,
	}
}

// ParseConfig decodes YAML config data. Fields that are absent keep the
// defaults of the named profile (standard when no profile is given).
func ParseConfig(data []byte) (Config, error) {
	var head struct {
		Profile Profile `yaml:"profile"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	p := Profile(strings.TrimSpace(string(head.Profile)))
	if p == "" {
		p = ProfileStandard
	}
	if !p.Valid() {
		return Config{}, fmt.Errorf("parse config: %w %q", ErrUnknownProfile, p)
	}

	cfg := DefaultConfig(p)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.Profile = p
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads a YAML config file. A missing file yields the standard
// defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(ProfileStandard), nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the config for values no backend can honour.
func (c Config) Validate() error {
	if !c.Profile.Valid() {
		return fmt.Errorf("%w %q", ErrUnknownProfile, c.Profile)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", c.Width, c.Height)
	}
	if c.HighlightSettle < 0 {
		return fmt.Errorf("negative highlight_settle %v", c.HighlightSettle)
	}
	return nil
}
