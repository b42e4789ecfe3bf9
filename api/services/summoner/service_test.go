package summonerservice

import (
	"context"
	"testing"
	"time"

	"riftview/api/repositories"
	"riftview/api/services/testutil"
	"riftview/pkg/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestService(t *testing.T) (*SummonerService, *testutil.MockPlayerRepository, *testutil.MockMatchRepository) {
	t.Helper()

	service := NewSummonerService(&SummonerServiceDeps{
		DB:     new(gorm.DB),
		Assets: testutil.NewTestAssetService(t),
	})

	mockPlayerRepo := new(testutil.MockPlayerRepository)
	mockMatchRepo := new(testutil.MockMatchRepository)
	service.PlayerRepository = mockPlayerRepo
	service.MatchRepository = mockMatchRepo

	return service, mockPlayerRepo, mockMatchRepo
}

func testPlayer() *models.PlayerInfo {
	return &models.PlayerInfo{
		ID:             7,
		Puuid:          "test-puuid",
		RiotIdGameName: "Hide on bush",
		RiotIdTagline:  "KR1",
		Region:         "KR",
		ProfileIcon:    588,
		SummonerLevel:  512,
	}
}

func TestGetSummonerProfile(t *testing.T) {
	service, mockPlayerRepo, _ := setupTestService(t)

	mockPlayerRepo.On("GetPlayerByRiotId", mock.Anything, "KR", "Hide on bush", "KR1").
		Return(testPlayer(), nil)
	mockPlayerRepo.On("GetPlayerRanks", mock.Anything, uint(7)).
		Return([]models.PlayerRank{
			{Queue: "RANKED_SOLO_5x5", Tier: "CHALLENGER", Rank: "I", LeaguePoints: 1204, Wins: 180, Losses: 120},
		}, nil)

	profile, err := service.GetSummonerProfile(context.Background(), "KR", "Hide on bush", "KR1")
	require.NoError(t, err)

	assert.Equal(t, "Hide on bush", profile.GameName)
	assert.Equal(t, "KR1", profile.Tagline)
	assert.Equal(t, 512, profile.SummonerLevel)
	assert.Contains(t, profile.ProfileIconUrl, "profileicon/588.png")

	require.Len(t, profile.Ranks, 1)
	rank := profile.Ranks[0]
	assert.Equal(t, 60, rank.WinRate)
	assert.Contains(t, rank.EmblemUrl, "challenger")

	testutil.VerifyAllMocks(t, mockPlayerRepo)
}

func TestGetSummonerProfileNotFound(t *testing.T) {
	service, mockPlayerRepo, _ := setupTestService(t)

	mockPlayerRepo.On("GetPlayerByRiotId", mock.Anything, "KR", "Unknown", "KR1").
		Return(nil, gorm.ErrRecordNotFound)

	profile, err := service.GetSummonerProfile(context.Background(), "KR", "Unknown", "KR1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, profile)
}

func historyRow(championId int, win bool) repositories.RawHistoryEntry {
	return repositories.RawHistoryEntry{
		MatchStats: models.MatchStats{
			ChampionId:         championId,
			Win:                win,
			Kills:              5,
			Deaths:             3,
			Assists:            7,
			TotalMinionsKilled: 150,
			Summoner1Id:        4,
			Summoner2Id:        14,
			PrimaryStyleId:     8100,
			SubStyleId:         8000,
			KeystoneId:         8112,
			TeamPosition:       "MIDDLE",
		},
		RiotMatchID:  "KR_123",
		Region:       "KR",
		Duration:     1800,
		Date:         time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		QueueID:      420,
		WinnerTeamId: 100,
	}
}

func TestGetMatchHistory(t *testing.T) {
	service, mockPlayerRepo, mockMatchRepo := setupTestService(t)

	mockPlayerRepo.On("GetPlayerByRiotId", mock.Anything, "KR", "Hide on bush", "KR1").
		Return(testPlayer(), nil)

	// Page 2 translates into one page size worth of offset.
	mockMatchRepo.On("GetMatchHistory", mock.Anything, uint(7), 420, historyPageSize, historyPageSize).
		Return([]repositories.RawHistoryEntry{historyRow(103, true)}, nil)

	entries, err := service.GetMatchHistory(context.Background(), "KR", "Hide on bush", "KR1", "en_US", 420, 2)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "KR_123", entry.Metadata.MatchId)
	assert.Equal(t, "Ranked Solo/Duo", entry.Metadata.Queue)

	viewer := entry.Viewer
	assert.Equal(t, "Hide on bush", viewer.GameName)
	assert.Equal(t, "Ahri", viewer.ChampionName)
	assert.Contains(t, viewer.ChampionIconUrl, "Ahri.png")
	assert.InDelta(t, 4, viewer.Kda, 0.0001)
	assert.InDelta(t, 5, viewer.CsPerMinute, 0.0001)

	require.Len(t, viewer.Items, 7)
	// Unused slots point at the empty slot image.
	assert.Contains(t, viewer.Items[0].IconUrl, "empty-slot")

	require.Len(t, viewer.Spells, 2)
	assert.Contains(t, viewer.Spells[0].IconUrl, "SummonerFlash.png")

	assert.Contains(t, viewer.Runes.KeystoneUrl, "Electrocute")
	assert.Contains(t, viewer.Runes.PrimaryStyleUrl, "Domination")

	testutil.VerifyAllMocks(t, mockPlayerRepo, mockMatchRepo)
}

func TestGetChampionStats(t *testing.T) {
	service, mockPlayerRepo, mockMatchRepo := setupTestService(t)

	mockPlayerRepo.On("GetPlayerByRiotId", mock.Anything, "KR", "Hide on bush", "KR1").
		Return(testPlayer(), nil)

	rows := []repositories.RawHistoryEntry{
		historyRow(103, true),
		historyRow(103, false),
		historyRow(238, true),
	}
	mockMatchRepo.On("GetMatchHistory", mock.Anything, uint(7), 0, statsSampleSize, 0).
		Return(rows, nil)

	result, err := service.GetChampionStats(context.Background(), "KR", "Hide on bush", "KR1", "en_US", 0)
	require.NoError(t, err)

	require.Len(t, result.Champions, 2)
	ahri := result.Champions[0]
	assert.Equal(t, 103, ahri.ChampionId)
	assert.Equal(t, "Ahri", ahri.ChampionName)
	assert.Equal(t, 2, ahri.Games)
	assert.Equal(t, 50, ahri.WinRate)
	assert.Contains(t, ahri.ChampionIconUrl, "Ahri.png")

	require.Len(t, result.Positions, 1)
	assert.Equal(t, "MIDDLE", result.Positions[0].Position)
	assert.Equal(t, 3, result.Positions[0].Games)
	assert.Equal(t, 67, result.Positions[0].WinRate)

	testutil.VerifyAllMocks(t, mockPlayerRepo, mockMatchRepo)
}
