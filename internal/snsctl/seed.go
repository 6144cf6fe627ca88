package snsctl

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Migrate and load the demo fixture (alice, bob, carol)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e := opts.resolve(cmd)

			rm := newRepositoryManager()
			db, err := e.openMigrated(ctx, rm)
			if err != nil {
				return err
			}
			defer db.Close()

			counts, err := runSeed(ctx, db, rm, e.logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Seed data created successfully!")
			fmt.Fprintf(out, "Users: %d\n", counts.Users)
			fmt.Fprintf(out, "Posts: %d\n", counts.Posts)
			fmt.Fprintf(out, "Follows: %d\n", counts.Follows)
			fmt.Fprintf(out, "Likes: %d\n", counts.Likes)
			fmt.Fprintf(out, "Comments: %d\n", counts.Comments)
			return nil
		},
	}
}
