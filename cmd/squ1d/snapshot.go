package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"squ1d/pkg/platform"
)

func newSnapshotCmd(c *cli) *cobra.Command {
	var (
		output        string
		width, height int
	)

	cmd := &cobra.Command{
		Use:   "snapshot [url]",
		Short: "Render one browser frame to a PNG without opening a window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := c.withLogger(cmd.Context())
			if width <= 0 {
				width = c.cfg.Window.Width
			}
			if height <= 0 {
				height = c.cfg.Window.Height
			}

			s, err := c.newSession(ctx, width, height)
			if err != nil {
				return err
			}
			defer func() {
				if err := s.Close(); err != nil {
					c.log.Warn().Err(err).Msg("failed to close visit log")
				}
			}()

			win := platform.NewHeadlessWindow(width, height, 1)
			defer win.Close()

			url := s.startURL(args, c.cfg.HomeURL)
			s.controller.Navigate(ctx, url)
			if err := s.controller.RenderFrame(win.Surface()); err != nil {
				return fmt.Errorf("rendering frame: %w", err)
			}
			if err := win.Memory().SavePNG(output); err != nil {
				return fmt.Errorf("saving snapshot: %w", err)
			}

			c.log.Info().Str("url", url).Str("output", output).Msg("snapshot written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "frame.png", "PNG file to write")
	cmd.Flags().IntVar(&width, "width", 0, "frame width (default from config)")
	cmd.Flags().IntVar(&height, "height", 0, "frame height (default from config)")
	return cmd
}
