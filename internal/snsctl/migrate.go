package snsctl

import (
	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e := opts.resolve(cmd)

			db, err := e.openMigrated(ctx, newRepositoryManager())
			if err != nil {
				return err
			}
			defer db.Close()

			e.logger.Info(ctx, "migrations applied")
			return nil
		},
	}
}
