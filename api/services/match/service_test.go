package matchservice

import (
	"context"
	"testing"

	"riftview/api/repositories"
	"riftview/api/services/testutil"
	"riftview/pkg/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestService(t *testing.T) (*MatchService, *testutil.MockMatchRepository) {
	t.Helper()

	service := NewMatchService(&MatchServiceDeps{
		DB:     new(gorm.DB),
		Assets: testutil.NewTestAssetService(t),
	})

	mockRepo := new(testutil.MockMatchRepository)
	service.MatchRepository = mockRepo

	return service, mockRepo
}

func testMatch() *models.MatchInfo {
	return &models.MatchInfo{
		ID:            42,
		MatchId:       "KR_123",
		Region:        "KR",
		MatchDuration: 1800,
		MatchWinner:   100,
		QueueId:       420,
	}
}

func participant(participantId int, teamId int, championId int, position string) repositories.RawParticipant {
	return repositories.RawParticipant{
		MatchStats: models.MatchStats{
			ParticipantId: participantId,
			TeamId:        teamId,
			ChampionId:    championId,
			TeamPosition:  position,
			Kills:         3,
			Deaths:        2,
			Assists:       4,
		},
		RiotIDGameName: "Player",
		RiotIDTagline:  "TAG",
	}
}

func TestGetFullMatchData(t *testing.T) {
	service, mockRepo := setupTestService(t)

	mockRepo.On("GetMatchByMatchId", mock.Anything, "KR", "KR_123").
		Return(testMatch(), nil)
	mockRepo.On("GetMatchParticipants", mock.Anything, uint(42)).
		Return([]repositories.RawParticipant{
			participant(1, 100, 103, "MIDDLE"),
			participant(6, 200, 238, "MIDDLE"),
		}, nil)
	mockRepo.On("GetItemEvents", mock.Anything, uint(42)).
		Return([]models.ItemEvent{
			{ParticipantId: 1, Timestamp: 30_000, ItemId: 1055, EventType: "ITEM_PURCHASED"},
			{ParticipantId: 1, Timestamp: 845_000, ItemId: 3071, EventType: "ITEM_PURCHASED"},
			{ParticipantId: 6, Timestamp: 5_000, ItemId: 1055, EventType: "ITEM_PURCHASED"},
			{ParticipantId: 6, Timestamp: 6_000, ItemId: 1055, EventType: "ITEM_UNDO"},
		}, nil)

	result, err := service.GetFullMatchData(context.Background(), "KR", "KR_123", "en_US")
	require.NoError(t, err)

	assert.Equal(t, "KR_123", result.Metadata.MatchId)
	assert.Equal(t, "Ranked Solo/Duo", result.Metadata.Queue)

	require.Len(t, result.Participants, 2)
	assert.Equal(t, "Ahri", result.Participants[0].ChampionName)
	assert.Contains(t, result.Participants[0].ChampionIconUrl, "Ahri.png")
	assert.Equal(t, "Zed", result.Participants[1].ChampionName)

	// Purchases grouped by minute, the undone purchase is gone.
	timeline := result.Timelines[1]
	require.Len(t, timeline, 2)
	assert.Equal(t, 0, timeline[0].Minute)
	assert.Equal(t, 1055, timeline[0].Items[0].ItemId)
	assert.Equal(t, 14, timeline[1].Minute)
	assert.Equal(t, 3071, timeline[1].Items[0].ItemId)

	assert.Empty(t, result.Timelines[6])

	testutil.VerifyAllMocks(t, mockRepo)
}

func TestGetFullMatchDataWithoutEvents(t *testing.T) {
	service, mockRepo := setupTestService(t)

	mockRepo.On("GetMatchByMatchId", mock.Anything, "KR", "KR_123").
		Return(testMatch(), nil)
	mockRepo.On("GetMatchParticipants", mock.Anything, uint(42)).
		Return([]repositories.RawParticipant{participant(1, 100, 103, "MIDDLE")}, nil)
	mockRepo.On("GetItemEvents", mock.Anything, uint(42)).
		Return(nil, gorm.ErrRecordNotFound)

	// Older matches without timeline events still render.
	result, err := service.GetFullMatchData(context.Background(), "KR", "KR_123", "en_US")
	require.NoError(t, err)
	assert.Len(t, result.Participants, 1)
	assert.Empty(t, result.Timelines)
}

func TestGetFullMatchDataNotFound(t *testing.T) {
	service, mockRepo := setupTestService(t)

	mockRepo.On("GetMatchByMatchId", mock.Anything, "KR", "KR_999").
		Return(nil, gorm.ErrRecordNotFound)

	result, err := service.GetFullMatchData(context.Background(), "KR", "KR_999", "en_US")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, result)
}

func TestGetEarlyAnalysis(t *testing.T) {
	service, mockRepo := setupTestService(t)

	mockRepo.On("GetMatchByMatchId", mock.Anything, "KR", "KR_123").
		Return(testMatch(), nil)
	mockRepo.On("GetMatchParticipants", mock.Anything, uint(42)).
		Return([]repositories.RawParticipant{
			participant(1, 100, 103, "MIDDLE"),
			participant(6, 200, 238, "MIDDLE"),
			participant(2, 100, 22, "BOTTOM"),
		}, nil)
	mockRepo.On("GetParticipantFrames", mock.Anything, uint(42), 14).
		Return([]models.ParticipantFrame{
			{ParticipantId: 1, FrameIndex: 14, Level: 10, Xp: 6000, TotalGold: 5200, MinionsKilled: 110, JungleMinionsKilled: 4, DamageToChampions: 4800},
			{ParticipantId: 6, FrameIndex: 14, Level: 9, Xp: 5400, TotalGold: 4700, MinionsKilled: 98, JungleMinionsKilled: 0, DamageToChampions: 3900},
		}, nil)

	result, err := service.GetEarlyAnalysis(context.Background(), "KR", "KR_123", "en_US", 14)
	require.NoError(t, err)

	assert.Equal(t, "KR_123", result.MatchId)
	assert.Equal(t, 14, result.Minute)

	// Only the mid lane has both laners with frames; the lone bot laner is skipped.
	require.Len(t, result.Lanes, 1)
	lane := result.Lanes[0]
	assert.Equal(t, "MIDDLE", lane.Position)
	assert.Equal(t, 500, lane.GoldDiff)
	assert.Equal(t, 16, lane.CsDiff)
	assert.Equal(t, 600, lane.XpDiff)
	assert.Equal(t, 900, lane.DamageDiff)
	assert.Contains(t, lane.Blue.ChampionIconUrl, "Ahri.png")
	assert.Contains(t, lane.Red.ChampionIconUrl, "Zed.png")

	testutil.VerifyAllMocks(t, mockRepo)
}
