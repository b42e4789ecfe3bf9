package matchservice

import (
	"context"
	"riftview/api/converters"
	"riftview/api/dto"
	"riftview/api/repositories"
	assetservice "riftview/api/services/assets"
	"riftview/pkg/database/models"

	"gorm.io/gorm"
)

// Lane order used by the early game analysis.
var lanePositions = []string{"TOP", "JUNGLE", "MIDDLE", "BOTTOM", "UTILITY"}

// MatchService serves the match detail and analysis pages.
type MatchService struct {
	db              *gorm.DB
	MatchRepository repositories.MatchRepository
	Assets          *assetservice.Service
}

// MatchServiceDeps is the dependency list for the match service.
type MatchServiceDeps struct {
	DB     *gorm.DB
	Assets *assetservice.Service
}

// NewMatchService creates a match service.
func NewMatchService(deps *MatchServiceDeps) *MatchService {
	return &MatchService{
		db:              deps.DB,
		MatchRepository: repositories.NewMatchRepository(deps.DB),
		Assets:          deps.Assets,
	}
}

// GetFullMatchData retrieves and formats all data for a given match.
func (ms *MatchService) GetFullMatchData(ctx context.Context, region string, matchId string, language string) (*dto.FullMatchData, error) {
	match, err := ms.MatchRepository.GetMatchByMatchId(ctx, region, matchId)
	if err != nil {
		return nil, err
	}

	rawParticipants, err := ms.MatchRepository.GetMatchParticipants(ctx, match.ID)
	if err != nil {
		return nil, err
	}

	participants := make([]dto.ParticipantRecord, 0, len(rawParticipants))
	for _, raw := range rawParticipants {
		participants = append(participants, converters.NewParticipantRecord(raw, match.MatchDuration))
	}

	// The item timeline is optional, older matches don't carry events.
	events, err := ms.MatchRepository.GetItemEvents(ctx, match.ID)
	if err != nil {
		events = nil
	}

	assets := ms.Assets.ResolveBatch(ctx, language, assetservice.CollectFromRecords(participants))
	for i := range participants {
		assets.Decorate(&participants[i])
	}

	return &dto.FullMatchData{
		Metadata:     converters.MetadataFromMatch(match),
		Participants: participants,
		Timelines:    converters.GroupTimelines(events),
	}, nil
}

// GetEarlyAnalysis compares the two laners of every position at a given minute.
func (ms *MatchService) GetEarlyAnalysis(ctx context.Context, region string, matchId string, language string, minute int) (*dto.EarlyAnalysis, error) {
	match, err := ms.MatchRepository.GetMatchByMatchId(ctx, region, matchId)
	if err != nil {
		return nil, err
	}

	rawParticipants, err := ms.MatchRepository.GetMatchParticipants(ctx, match.ID)
	if err != nil {
		return nil, err
	}

	frames, err := ms.MatchRepository.GetParticipantFrames(ctx, match.ID, minute)
	if err != nil {
		return nil, err
	}

	frameByParticipant := make(map[int]models.ParticipantFrame, len(frames))
	for _, frame := range frames {
		frameByParticipant[frame.ParticipantId] = frame
	}

	championIds := make([]int, 0, len(rawParticipants))
	for _, raw := range rawParticipants {
		championIds = append(championIds, raw.ChampionId)
	}
	assets := ms.Assets.ResolveBatch(ctx, language, assetservice.BatchRequest{Champions: championIds})

	analysis := &dto.EarlyAnalysis{
		MatchId: match.MatchId,
		Minute:  minute,
	}

	for _, position := range lanePositions {
		blue, blueOk := findLaner(rawParticipants, position, 100)
		red, redOk := findLaner(rawParticipants, position, 200)
		if !blueOk || !redOk {
			continue
		}

		blueFrame, blueOk := frameByParticipant[blue.ParticipantId]
		redFrame, redOk := frameByParticipant[red.ParticipantId]
		if !blueOk || !redOk {
			continue
		}

		blueSnapshot := newSnapshot(blue, blueFrame, assets)
		redSnapshot := newSnapshot(red, redFrame, assets)

		analysis.Lanes = append(analysis.Lanes, dto.LaneAnalysis{
			Position:   position,
			Blue:       blueSnapshot,
			Red:        redSnapshot,
			GoldDiff:   blueSnapshot.TotalGold - redSnapshot.TotalGold,
			CsDiff:     blueSnapshot.Cs - redSnapshot.Cs,
			XpDiff:     blueSnapshot.Xp - redSnapshot.Xp,
			DamageDiff: blueSnapshot.DamageToChampions - redSnapshot.DamageToChampions,
		})
	}

	return analysis, nil
}

func findLaner(participants []repositories.RawParticipant, position string, teamId int) (repositories.RawParticipant, bool) {
	for _, raw := range participants {
		if raw.TeamId == teamId && converters.Position(raw.TeamPosition, raw.IndividualPosition) == position {
			return raw, true
		}
	}
	return repositories.RawParticipant{}, false
}

func newSnapshot(raw repositories.RawParticipant, frame models.ParticipantFrame, assets *assetservice.MatchAssets) dto.FrameSnapshot {
	return dto.FrameSnapshot{
		ParticipantId:     raw.ParticipantId,
		ChampionId:        raw.ChampionId,
		ChampionIconUrl:   assets.ChampionIcons[raw.ChampionId],
		Level:             frame.Level,
		Xp:                frame.Xp,
		TotalGold:         frame.TotalGold,
		Cs:                frame.MinionsKilled + frame.JungleMinionsKilled,
		DamageToChampions: frame.DamageToChampions,
	}
}
