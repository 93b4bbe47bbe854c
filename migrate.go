package main

import (
	"github.com/spf13/cobra"

	"pagebuilder/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the pages and modules tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer closeDb(db, logger)

		return database.RunMigrations(db, logger)
	},
}
