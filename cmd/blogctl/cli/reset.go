package cli

import (
	"fmt"
	"simpleblog/cmd/internal/domain/sqlite"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop every table and reseed the development data.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("reset deletes all notes, comments and users in %s, rerun with --force", dbPath)
			}

			db, err := sqlite.Init(dbPath)
			if err != nil {
				return fmt.Errorf("open %s: %w", dbPath, err)
			}

			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			if err := sqlite.Reset(cmd.Context(), db); err != nil {
				return fmt.Errorf("reset %s: %w", dbPath, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "database %s reset and reseeded\n", dbPath)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "confirm that existing data may be destroyed")
	return cmd
}
