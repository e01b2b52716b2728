package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"squ1d/pkg/config"
	"squ1d/pkg/history"
)

func newHistoryCmd(c *cli) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently visited pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := c.cfg.History.Database
			if path == "" {
				suggested, err := config.DefaultHistoryDatabase()
				if err != nil {
					suggested = "history.db"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "history is disabled; set history.database, e.g. %q\n", suggested)
				return nil
			}

			ctx := c.withLogger(cmd.Context())
			store, err := history.Open(ctx, path)
			if err != nil {
				return err
			}
			defer store.Close()

			visits, err := store.Recent(ctx, limit)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, v := range visits {
				fmt.Fprintf(tw, "%s\t%s\n", v.VisitedAt.Local().Format(time.DateTime), v.URL)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of visits to show")
	return cmd
}
