package jobs

import (
	"context"
	"fmt"
	"log"
	"riftview/api/repositories"
	"riftview/pkg/config"
	"riftview/pkg/database"
)

// RecalculateMatchups rebuilds the champion matchup win rate rollup from
// the stored match stats.
func RecalculateMatchups(cfg *config.Config) error {
	log.Println("Starting matchup recalculation.")

	db, err := database.NewConnection(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("couldn't get database connection: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	matchupRepository := repositories.NewMatchupRepository(db)
	if err := matchupRepository.RecalculateAll(context.Background()); err != nil {
		return fmt.Errorf("matchup recalculation failed: %w", err)
	}

	log.Println("Finished matchup recalculation.")
	return nil
}
