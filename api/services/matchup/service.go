package matchupservice

import (
	"context"
	"errors"
	"riftview/api/dto"
	"riftview/api/repositories"
	assetservice "riftview/api/services/assets"
	"riftview/pkg/stats"
	"strings"

	"gorm.io/gorm"
)

// MatchupService serves the lane matchup advantage lookups.
// The win rate comes from the stored champion matchup rollups.
type MatchupService struct {
	db                *gorm.DB
	MatchupRepository repositories.MatchupRepository
	Assets            *assetservice.Service
}

// MatchupServiceDeps is the dependency list for the matchup service.
type MatchupServiceDeps struct {
	DB     *gorm.DB
	Assets *assetservice.Service
}

// NewMatchupService creates a matchup service.
func NewMatchupService(deps *MatchupServiceDeps) *MatchupService {
	return &MatchupService{
		db:                deps.DB,
		MatchupRepository: repositories.NewMatchupRepository(deps.DB),
		Assets:            deps.Assets,
	}
}

// GetMatchup classifies a champion versus champion lane matchup.
// Returns nil without error for the jungle and unknown positions, the
// comparison is only defined for the four lanes.
func (ms *MatchupService) GetMatchup(ctx context.Context, position string, championId int, enemyChampionId int, language string) (*dto.MatchupAdvantage, error) {
	position = strings.ToUpper(position)
	if !stats.IsComparablePosition(position) {
		return nil, nil
	}

	winRate, games, err := ms.lookupWinRate(ctx, championId, enemyChampionId, position)
	if err != nil {
		return nil, err
	}

	assets := ms.Assets.ResolveBatch(ctx, language, assetservice.BatchRequest{
		Champions: []int{championId, enemyChampionId},
	})

	return &dto.MatchupAdvantage{
		Position:             position,
		ChampionId:           championId,
		ChampionIconUrl:      assets.ChampionIcons[championId],
		EnemyChampionId:      enemyChampionId,
		EnemyChampionIconUrl: assets.ChampionIcons[enemyChampionId],
		WinRate:              winRate,
		Games:                games,
		Advantage:            stats.ClassifyAdvantage(winRate),
	}, nil
}

// lookupWinRate reads the rollup row, trying the mirrored pair when the
// direct one doesn't exist.
func (ms *MatchupService) lookupWinRate(ctx context.Context, championId int, enemyChampionId int, position string) (float64, int, error) {
	matchup, err := ms.MatchupRepository.GetMatchup(ctx, championId, enemyChampionId, position)
	if err == nil {
		if winRate, ok := matchup.WinRate(); ok {
			return winRate, matchup.Games, nil
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, 0, err
	}

	mirrored, err := ms.MatchupRepository.GetMatchup(ctx, enemyChampionId, championId, position)
	if err != nil {
		return 0, 0, err
	}

	winRate, ok := mirrored.WinRate()
	if !ok {
		return 0, 0, gorm.ErrRecordNotFound
	}

	return 100 - winRate, mirrored.Games, nil
}
