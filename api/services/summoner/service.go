package summonerservice

import (
	"context"
	"riftview/api/converters"
	"riftview/api/dto"
	"riftview/api/repositories"
	assetservice "riftview/api/services/assets"
	"riftview/pkg/stats"

	"gorm.io/gorm"
)

const (
	historyPageSize = 20

	// Matches sampled for the champion and position aggregates.
	statsSampleSize = 50
)

// SummonerService serves the summoner profile pages.
type SummonerService struct {
	db               *gorm.DB
	PlayerRepository repositories.PlayerRepository
	MatchRepository  repositories.MatchRepository
	Assets           *assetservice.Service
}

// SummonerServiceDeps is the dependency list for the summoner service.
type SummonerServiceDeps struct {
	DB     *gorm.DB
	Assets *assetservice.Service
}

// NewSummonerService creates a summoner service.
func NewSummonerService(deps *SummonerServiceDeps) *SummonerService {
	return &SummonerService{
		db:               deps.DB,
		PlayerRepository: repositories.NewPlayerRepository(deps.DB),
		MatchRepository:  repositories.NewMatchRepository(deps.DB),
		Assets:           deps.Assets,
	}
}

// GetSummonerProfile returns the profile payload for a summoner.
func (ss *SummonerService) GetSummonerProfile(ctx context.Context, region string, gameName string, tagline string) (*dto.SummonerProfile, error) {
	player, err := ss.PlayerRepository.GetPlayerByRiotId(ctx, region, gameName, tagline)
	if err != nil {
		return nil, err
	}

	ranks, err := ss.PlayerRepository.GetPlayerRanks(ctx, player.ID)
	if err != nil {
		return nil, err
	}

	rankEntries := make([]dto.RankEntry, 0, len(ranks))
	for _, rank := range ranks {
		rankEntries = append(rankEntries, dto.RankEntry{
			Queue:        rank.Queue,
			Tier:         rank.Tier,
			Rank:         rank.Rank,
			LeaguePoints: rank.LeaguePoints,
			Wins:         rank.Wins,
			Losses:       rank.Losses,
			WinRate:      stats.WinRate(rank.Wins, rank.Wins+rank.Losses),
			EmblemUrl:    ss.Assets.RankEmblem(rank.Tier),
		})
	}

	return &dto.SummonerProfile{
		GameName:       player.RiotIdGameName,
		Tagline:        player.RiotIdTagline,
		Region:         player.Region,
		SummonerLevel:  player.SummonerLevel,
		ProfileIconId:  player.ProfileIcon,
		ProfileIconUrl: ss.Assets.ProfileIcon(ctx, player.ProfileIcon),
		Ranks:          rankEntries,
	}, nil
}

// GetMatchHistory returns one page of the summoner match history, with the
// viewer participant record of each match decorated with icons.
func (ss *SummonerService) GetMatchHistory(ctx context.Context, region string, gameName string, tagline string, language string, queueId int, page int) ([]dto.MatchHistoryEntry, error) {
	player, err := ss.PlayerRepository.GetPlayerByRiotId(ctx, region, gameName, tagline)
	if err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}

	rows, err := ss.MatchRepository.GetMatchHistory(ctx, player.ID, queueId, historyPageSize, (page-1)*historyPageSize)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.MatchHistoryEntry, 0, len(rows))
	viewers := make([]dto.ParticipantRecord, 0, len(rows))
	for _, raw := range rows {
		viewer := converters.ViewerFromHistory(raw, player.RiotIdGameName, player.RiotIdTagline)
		viewers = append(viewers, viewer)
		entries = append(entries, dto.MatchHistoryEntry{
			Metadata: converters.MetadataFromHistory(raw),
			Viewer:   viewer,
		})
	}

	// One icon batch for the whole page.
	assets := ss.Assets.ResolveBatch(ctx, language, assetservice.CollectFromRecords(viewers))
	for i := range entries {
		assets.Decorate(&entries[i].Viewer)
	}

	return entries, nil
}

// GetChampionStats returns the champion and position aggregates over the
// summoner's recent matches.
func (ss *SummonerService) GetChampionStats(ctx context.Context, region string, gameName string, tagline string, language string, queueId int) (*dto.PlayerChampionStats, error) {
	player, err := ss.PlayerRepository.GetPlayerByRiotId(ctx, region, gameName, tagline)
	if err != nil {
		return nil, err
	}

	rows, err := ss.MatchRepository.GetMatchHistory(ctx, player.ID, queueId, statsSampleSize, 0)
	if err != nil {
		return nil, err
	}

	summaries := converters.SummariesFromHistory(rows)
	champions := stats.AggregateChampions(summaries)
	positions := stats.AggregatePositions(summaries)

	championIds := make([]int, 0, len(champions))
	for _, champion := range champions {
		championIds = append(championIds, champion.ChampionId)
	}

	assets := ss.Assets.ResolveBatch(ctx, language, assetservice.BatchRequest{Champions: championIds})

	views := make([]dto.ChampionAggregateView, 0, len(champions))
	for _, champion := range champions {
		champion.ChampionName = assets.ChampionNames[champion.ChampionId]
		views = append(views, dto.ChampionAggregateView{
			ChampionAggregate: champion,
			ChampionIconUrl:   assets.ChampionIcons[champion.ChampionId],
		})
	}

	return &dto.PlayerChampionStats{
		Champions: views,
		Positions: positions,
	}, nil
}
