package repositories

import (
	"context"
	"riftview/pkg/database/models"

	"gorm.io/gorm"
)

// MatchupRepository is the public interface for the champion matchup rollups.
type MatchupRepository interface {
	GetMatchup(ctx context.Context, championId int, enemyChampionId int, position string) (*models.ChampionMatchup, error)
	RecalculateAll(ctx context.Context) error
}

// matchupRepository repository structure.
type matchupRepository struct {
	db *gorm.DB
}

// NewMatchupRepository creates a matchup repository.
func NewMatchupRepository(db *gorm.DB) MatchupRepository {
	return &matchupRepository{db: db}
}

// GetMatchup returns the rollup row for a champion pair on a position.
func (mr *matchupRepository) GetMatchup(ctx context.Context, championId int, enemyChampionId int, position string) (*models.ChampionMatchup, error) {
	var matchup models.ChampionMatchup

	err := mr.db.WithContext(ctx).
		Where("champion_id = ? AND enemy_champion_id = ? AND position = ?",
			championId, enemyChampionId, position).
		First(&matchup).Error
	if err != nil {
		return nil, err
	}

	return &matchup, nil
}

// RecalculateAll rebuilds the matchup rollups from the raw match stats.
// Pairs the laners of opposite teams that share a team position.
func (mr *matchupRepository) RecalculateAll(ctx context.Context) error {
	query := `
		INSERT INTO champion_matchups (champion_id, enemy_champion_id, position, wins, games, updated_at)
		SELECT
			a.champion_id,
			b.champion_id,
			a.team_position,
			SUM(CASE WHEN a.win THEN 1 ELSE 0 END),
			COUNT(*),
			NOW()
		FROM match_stats a
		JOIN match_stats b ON a.match_id = b.match_id
			AND a.team_position = b.team_position
			AND a.team_id <> b.team_id
		WHERE a.team_position IN ('TOP', 'MIDDLE', 'BOTTOM', 'UTILITY')
		GROUP BY a.champion_id, b.champion_id, a.team_position
		ON CONFLICT (champion_id, enemy_champion_id, position)
		DO UPDATE SET
			wins = EXCLUDED.wins,
			games = EXCLUDED.games,
			updated_at = EXCLUDED.updated_at
	`

	return mr.db.WithContext(ctx).Exec(query).Error
}
