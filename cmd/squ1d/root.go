package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"squ1d/pkg/browser"
	"squ1d/pkg/config"
	"squ1d/pkg/content"
	"squ1d/pkg/history"
	"squ1d/pkg/logging"
	"squ1d/pkg/omnibox"
)

// cli carries what every subcommand needs once the configuration is loaded.
type cli struct {
	configFile string

	manager *config.Manager
	cfg     *config.Config
	log     zerolog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:           "squ1d [url]",
		Short:         "A minimal browser shell",
		Long:          `A browser shell with a software-rasterized chrome. Pages are drawn by a pluggable renderer and composited into the window.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.browse(cmd, args)
		},
	}
	rootCmd.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/squ1d/config.toml)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "squ1d %s\n", version)
			fmt.Fprintf(out, "commit: %s\n", commit)
			fmt.Fprintf(out, "built: %s\n", buildDate)
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newSnapshotCmd(c))
	rootCmd.AddCommand(newRenderCmd(c))
	rootCmd.AddCommand(newHistoryCmd(c))
	return rootCmd
}

// load reads the configuration and sets up logging. Failures are
// initialization errors.
func (c *cli) load(cmd *cobra.Command) error {
	m, err := config.NewManager(c.configFile)
	if err != nil {
		return fmt.Errorf("%w: %w", browser.ErrInit, err)
	}
	if err := m.Load(); err != nil {
		return fmt.Errorf("%w: %w", browser.ErrInit, err)
	}

	c.manager = m
	c.cfg = m.Get()
	c.log = logging.New(logging.Config{
		Level:  c.cfg.Logging.Level,
		Format: c.cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	})
	m.SetLogger(c.component("config"))

	if used := m.ConfigFileUsed(); used != "" {
		c.log.Debug().Str("file", used).Msg("configuration loaded")
	}
	return nil
}

func (c *cli) component(name string) zerolog.Logger {
	return c.log.With().Str("component", name).Logger()
}

func (c *cli) withLogger(parent context.Context) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	return logging.WithContext(parent, c.log)
}

// newBridge builds the configured renderer backend behind a content bridge.
func (c *cli) newBridge() *content.Bridge {
	var inv content.Invoker
	switch c.cfg.Renderer.Backend {
	case config.BackendProcess:
		inv = content.NewProcessInvoker(c.cfg.Renderer.Path, c.cfg.Renderer.Args...)
	default:
		inv = content.NewCanvasInvoker()
	}
	b := content.NewBridge(inv, c.cfg.Renderer.Artifact)
	b.SetLogger(c.component("content"))
	return b
}

func (c *cli) newResolver() (*omnibox.Resolver, error) {
	r, err := omnibox.New(c.cfg.Omnibox.Script, c.cfg.Omnibox.SearchURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", browser.ErrInit, err)
	}
	r.SetLogger(c.component("omnibox"))
	return r, nil
}

// session is a controller together with the resources it holds open.
type session struct {
	controller *browser.Controller
	resolver   *omnibox.Resolver
	store      *history.Store
}

func (s *session) Close() error {
	return s.store.Close()
}

// startURL resolves the optional command-line argument, falling back to the
// home page.
func (s *session) startURL(args []string, home string) string {
	if len(args) == 0 || args[0] == "" {
		return home
	}
	return s.resolver.Resolve(args[0])
}

// newSession wires a controller for a window of the given size.
func (c *cli) newSession(ctx context.Context, width, height int) (*session, error) {
	resolver, err := c.newResolver()
	if err != nil {
		return nil, err
	}
	theme, err := c.cfg.Theme.Palette()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", browser.ErrInit, err)
	}

	s := &session{resolver: resolver}
	opts := browser.Options{
		Width:   width,
		Height:  height,
		HomeURL: c.cfg.HomeURL,
		Theme:   theme,
		Pages:   c.newBridge(),
		Omnibox: resolver,
		Logger:  c.component("browser"),
	}

	if path := c.cfg.History.Database; path != "" {
		store, err := history.Open(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", browser.ErrInit, err)
		}
		s.store = store
		opts.Visits = store
	}

	ctrl, err := browser.New(opts)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	s.controller = ctrl
	return s, nil
}
