// Package config loads squ1d settings from a TOML file and the environment
// and reports changes to the file while the browser runs.
package config

import (
	"errors"
	"fmt"
	"strings"

	"squ1d/pkg/gfx"
)

// Renderer backends.
const (
	BackendCanvas  = "canvas"
	BackendProcess = "process"
)

// Config is the full squ1d configuration.
type Config struct {
	Window   WindowConfig   `mapstructure:"window"`
	HomeURL  string         `mapstructure:"home_url"`
	Renderer RendererConfig `mapstructure:"renderer"`
	Theme    ThemeConfig    `mapstructure:"theme"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	History  HistoryConfig  `mapstructure:"history"`
	Omnibox  OmniboxConfig  `mapstructure:"omnibox"`
}

// WindowConfig sizes the main window.
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// RendererConfig selects the page renderer.
type RendererConfig struct {
	// Backend is "canvas" (in process) or "process" (external executable).
	Backend  string   `mapstructure:"backend"`
	Path     string   `mapstructure:"path"`
	Args     []string `mapstructure:"args"`
	Artifact string   `mapstructure:"artifact"`
}

// ThemeConfig holds the chrome palette as hex strings.
type ThemeConfig struct {
	Background    string `mapstructure:"background"`
	ToolbarBG     string `mapstructure:"toolbar_bg"`
	TabBGInactive string `mapstructure:"tab_bg_inactive"`
	TabBGActive   string `mapstructure:"tab_bg_active"`
	TabText       string `mapstructure:"tab_text"`
	ButtonBG      string `mapstructure:"button_bg"`
	ButtonHover   string `mapstructure:"button_hover"`
	URLBarBG      string `mapstructure:"urlbar_bg"`
	URLBarBorder  string `mapstructure:"urlbar_border"`
	URLBarFocus   string `mapstructure:"urlbar_focus"`
	TextPrimary   string `mapstructure:"text_primary"`
	TextSecondary string `mapstructure:"text_secondary"`
	Separator     string `mapstructure:"separator"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// HistoryConfig configures the visit log. An empty Database disables it.
type HistoryConfig struct {
	Database string `mapstructure:"database"`
}

// OmniboxConfig configures URL-bar input resolution.
type OmniboxConfig struct {
	SearchURL string `mapstructure:"search_url"`
	Script    string `mapstructure:"script"`
}

// Palette parses the theme into a gfx.Theme.
func (t ThemeConfig) Palette() (gfx.Theme, error) {
	var theme gfx.Theme
	fields := []struct {
		name string
		hex  string
		dst  *gfx.Color
	}{
		{"background", t.Background, &theme.Background},
		{"toolbar_bg", t.ToolbarBG, &theme.ToolbarBG},
		{"tab_bg_inactive", t.TabBGInactive, &theme.TabBGInactive},
		{"tab_bg_active", t.TabBGActive, &theme.TabBGActive},
		{"tab_text", t.TabText, &theme.TabText},
		{"button_bg", t.ButtonBG, &theme.ButtonBG},
		{"button_hover", t.ButtonHover, &theme.ButtonHover},
		{"urlbar_bg", t.URLBarBG, &theme.URLBarBG},
		{"urlbar_border", t.URLBarBorder, &theme.URLBarBorder},
		{"urlbar_focus", t.URLBarFocus, &theme.URLBarFocus},
		{"text_primary", t.TextPrimary, &theme.TextPrimary},
		{"text_secondary", t.TextSecondary, &theme.TextSecondary},
		{"separator", t.Separator, &theme.Separator},
	}
	for _, f := range fields {
		c, err := gfx.ParseHexColor(f.hex)
		if err != nil {
			return gfx.Theme{}, fmt.Errorf("theme.%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return theme, nil
}

// ThemeFrom formats a gfx.Theme as a ThemeConfig.
func ThemeFrom(t gfx.Theme) ThemeConfig {
	return ThemeConfig{
		Background:    t.Background.Hex(),
		ToolbarBG:     t.ToolbarBG.Hex(),
		TabBGInactive: t.TabBGInactive.Hex(),
		TabBGActive:   t.TabBGActive.Hex(),
		TabText:       t.TabText.Hex(),
		ButtonBG:      t.ButtonBG.Hex(),
		ButtonHover:   t.ButtonHover.Hex(),
		URLBarBG:      t.URLBarBG.Hex(),
		URLBarBorder:  t.URLBarBorder.Hex(),
		URLBarFocus:   t.URLBarFocus.Hex(),
		TextPrimary:   t.TextPrimary.Hex(),
		TextSecondary: t.TextSecondary.Hex(),
		Separator:     t.Separator.Hex(),
	}
}

// Validate checks the settings that would make startup fail.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	switch strings.ToLower(c.Renderer.Backend) {
	case BackendCanvas:
	case BackendProcess:
		if c.Renderer.Path == "" {
			errs = append(errs, errors.New("renderer.path is required for the process backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown renderer backend %q", c.Renderer.Backend))
	}
	if _, err := c.Theme.Palette(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
