package repositories

import (
	"context"
	"riftview/pkg/database/models"

	"gorm.io/gorm"
)

// PlayerRepository is the public interface for accessing the player data.
type PlayerRepository interface {
	GetPlayerByRiotId(ctx context.Context, region string, gameName string, tagline string) (*models.PlayerInfo, error)
	GetPlayerRanks(ctx context.Context, playerId uint) ([]models.PlayerRank, error)
}

// playerRepository repository structure.
type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a player repository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

// GetPlayerByRiotId finds a player by its region and riot id.
// The riot id match is case insensitive, the front-end sends whatever the user typed.
func (pr *playerRepository) GetPlayerByRiotId(ctx context.Context, region string, gameName string, tagline string) (*models.PlayerInfo, error) {
	var player models.PlayerInfo

	err := pr.db.WithContext(ctx).
		Where("region = ? AND LOWER(riot_id_game_name) = LOWER(?) AND LOWER(riot_id_tagline) = LOWER(?)",
			region, gameName, tagline).
		First(&player).Error
	if err != nil {
		return nil, err
	}

	return &player, nil
}

// GetPlayerRanks returns every ranked entry of a player.
func (pr *playerRepository) GetPlayerRanks(ctx context.Context, playerId uint) ([]models.PlayerRank, error) {
	var ranks []models.PlayerRank

	err := pr.db.WithContext(ctx).
		Where("player_id = ?", playerId).
		Order("queue").
		Find(&ranks).Error
	if err != nil {
		return nil, err
	}

	return ranks, nil
}
