package main

import (
	"context"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"squ1d/pkg/config"
	"squ1d/pkg/platform/fynewin"
)

// browse opens the browser window and blocks until it is closed. The fyne
// event loop owns the main goroutine; the controller runs beside it.
func (c *cli) browse(cmd *cobra.Command, args []string) error {
	ctx := c.withLogger(cmd.Context())
	width, height := c.cfg.Window.Width, c.cfg.Window.Height

	s, err := c.newSession(ctx, width, height)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil {
			c.log.Warn().Err(err).Msg("failed to close visit log")
		}
	}()

	win := fynewin.New(app.New(), c.cfg.Window.Title, width, height)
	win.SetLogger(c.component("window"))

	c.manager.OnConfigChange(func(cfg *config.Config) {
		theme, err := cfg.Theme.Palette()
		if err != nil {
			c.log.Warn().Err(err).Msg("ignoring theme from reloaded config")
			return
		}
		s.controller.QueueTheme(theme)
	})
	if err := c.manager.Watch(); err != nil {
		c.log.Warn().Err(err).Msg("config file will not be watched")
	}

	start := s.startURL(args, c.cfg.HomeURL)
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		s.controller.Navigate(runCtx, start)
		err := s.controller.Run(runCtx, win)
		if closeErr := win.Close(); closeErr != nil {
			c.log.Debug().Err(closeErr).Msg("window close")
		}
		done <- err
	}()

	win.ShowAndRun()
	cancel()

	return <-done
}
