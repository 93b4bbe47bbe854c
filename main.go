package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"pagebuilder/common"
	"pagebuilder/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "pagebuilder",
	Short: "REST backend for pages and their modules",
	Long: `pagebuilder serves pages and the modules that belong to them over
a JSON REST API backed by SQLite or PostgreSQL.

  pagebuilder serve     # start the HTTP server
  pagebuilder migrate   # create or update the tables and exit`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", os.Getenv("CONFIG_PATH"), "YAML config file path")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads the config and opens the database. The caller closes db.
func bootstrap() (config.Config, zerolog.Logger, *gorm.DB, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return cfg, zerolog.Nop(), nil, fmt.Errorf("loading config: %w", err)
	}

	logger := common.NewLogger(cfg.LogLevel, cfg.LogPretty)

	db, err := common.ConnectDb(cfg, logger)
	if err != nil {
		return cfg, logger, nil, fmt.Errorf("connecting to database: %w", err)
	}
	return cfg, logger, db, nil
}

func closeDb(db *gorm.DB, logger zerolog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warn().Err(err).Msg("closing database")
	}
}
