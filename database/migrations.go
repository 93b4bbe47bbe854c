package database

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"pagebuilder/models"
)

func RunMigrations(db *gorm.DB, logger zerolog.Logger) error {
	logger.Info().Msg("running database migrations")

	// pages first, modules carries the foreign key
	err := db.AutoMigrate(
		&models.Page{},
		&models.Module{},
	)

	if err != nil {
		logger.Error().Err(err).Msg("error running migrations")
		return err
	}

	logger.Info().Msg("migrations completed")
	return nil
}
