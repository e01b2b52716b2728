package config

import (
	"squ1d/pkg/content"
	"squ1d/pkg/gfx"
	"squ1d/pkg/omnibox"
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1200,
			Height: 800,
			Title:  "SQU1D Browser",
		},
		HomeURL: "https://google.com",
		Renderer: RendererConfig{
			Backend:  BackendCanvas,
			Artifact: content.DefaultArtifactPath(),
		},
		Theme: ThemeFrom(gfx.DefaultTheme()),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Omnibox: OmniboxConfig{
			SearchURL: omnibox.DefaultSearchURL,
		},
	}
}

func (m *Manager) setDefaults() {
	d := DefaultConfig()

	m.viper.SetDefault("window.width", d.Window.Width)
	m.viper.SetDefault("window.height", d.Window.Height)
	m.viper.SetDefault("window.title", d.Window.Title)

	m.viper.SetDefault("home_url", d.HomeURL)

	m.viper.SetDefault("renderer.backend", d.Renderer.Backend)
	m.viper.SetDefault("renderer.path", d.Renderer.Path)
	m.viper.SetDefault("renderer.args", []string{})
	m.viper.SetDefault("renderer.artifact", d.Renderer.Artifact)

	m.viper.SetDefault("theme.background", d.Theme.Background)
	m.viper.SetDefault("theme.toolbar_bg", d.Theme.ToolbarBG)
	m.viper.SetDefault("theme.tab_bg_inactive", d.Theme.TabBGInactive)
	m.viper.SetDefault("theme.tab_bg_active", d.Theme.TabBGActive)
	m.viper.SetDefault("theme.tab_text", d.Theme.TabText)
	m.viper.SetDefault("theme.button_bg", d.Theme.ButtonBG)
	m.viper.SetDefault("theme.button_hover", d.Theme.ButtonHover)
	m.viper.SetDefault("theme.urlbar_bg", d.Theme.URLBarBG)
	m.viper.SetDefault("theme.urlbar_border", d.Theme.URLBarBorder)
	m.viper.SetDefault("theme.urlbar_focus", d.Theme.URLBarFocus)
	m.viper.SetDefault("theme.text_primary", d.Theme.TextPrimary)
	m.viper.SetDefault("theme.text_secondary", d.Theme.TextSecondary)
	m.viper.SetDefault("theme.separator", d.Theme.Separator)

	m.viper.SetDefault("logging.level", d.Logging.Level)
	m.viper.SetDefault("logging.format", d.Logging.Format)

	m.viper.SetDefault("history.database", d.History.Database)

	m.viper.SetDefault("omnibox.search_url", d.Omnibox.SearchURL)
	m.viper.SetDefault("omnibox.script", d.Omnibox.Script)
}
