package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-book-catalog/internal/adapters/storage/sqlstore"
	"github.com/jsamuelsen11/go-book-catalog/internal/app/seed"
)

func newSeedCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample catalog into an empty database and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			boot, err := loadBootstrap(flags)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			db, err := sqlstore.Open(ctx, boot.cfg.Database, boot.logger)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer closeDB(db, boot.logger)

			n, err := seed.Run(ctx, sqlstore.NewBookRepository(db), boot.logger)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d books\n", n)
			return nil
		},
	}
}
