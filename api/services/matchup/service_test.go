package matchupservice

import (
	"context"
	"testing"

	"riftview/api/services/testutil"
	"riftview/pkg/database/models"
	"riftview/pkg/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestService(t *testing.T) (*MatchupService, *testutil.MockMatchupRepository) {
	t.Helper()

	service := NewMatchupService(&MatchupServiceDeps{
		DB:     new(gorm.DB),
		Assets: testutil.NewTestAssetService(t),
	})

	mockRepo := new(testutil.MockMatchupRepository)
	service.MatchupRepository = mockRepo

	return service, mockRepo
}

func TestGetMatchupNotComparable(t *testing.T) {
	service, mockRepo := setupTestService(t)

	for _, position := range []string{"JUNGLE", "jungle", "", "ARAM"} {
		result, err := service.GetMatchup(context.Background(), position, 103, 238, "en_US")
		assert.NoError(t, err)
		assert.Nil(t, result)
	}

	// No repository lookup may happen for those positions.
	mockRepo.AssertNotCalled(t, "GetMatchup")
}

func TestGetMatchupDirect(t *testing.T) {
	service, mockRepo := setupTestService(t)

	mockRepo.On("GetMatchup", mock.Anything, 103, 238, "MIDDLE").
		Return(&models.ChampionMatchup{ChampionId: 103, EnemyChampionId: 238, Position: "MIDDLE", Wins: 60, Games: 100}, nil)

	result, err := service.GetMatchup(context.Background(), "middle", 103, 238, "en_US")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "MIDDLE", result.Position)
	assert.InDelta(t, 60, result.WinRate, 0.0001)
	assert.Equal(t, 100, result.Games)
	assert.Equal(t, stats.StrongAdvantage, result.Advantage)
	assert.Contains(t, result.ChampionIconUrl, "Ahri.png")
	assert.Contains(t, result.EnemyChampionIconUrl, "Zed.png")

	testutil.VerifyAllMocks(t, mockRepo)
}

func TestGetMatchupMirroredFallback(t *testing.T) {
	service, mockRepo := setupTestService(t)

	// Only the mirrored pair exists, the win rate must be inverted.
	mockRepo.On("GetMatchup", mock.Anything, 103, 238, "MIDDLE").
		Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("GetMatchup", mock.Anything, 238, 103, "MIDDLE").
		Return(&models.ChampionMatchup{ChampionId: 238, EnemyChampionId: 103, Position: "MIDDLE", Wins: 58, Games: 200}, nil)

	result, err := service.GetMatchup(context.Background(), "MIDDLE", 103, 238, "en_US")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.InDelta(t, 71, result.WinRate, 0.0001)
	assert.Equal(t, 200, result.Games)
	assert.Equal(t, stats.StrongAdvantage, result.Advantage)

	testutil.VerifyAllMocks(t, mockRepo)
}

func TestGetMatchupMissing(t *testing.T) {
	service, mockRepo := setupTestService(t)

	mockRepo.On("GetMatchup", mock.Anything, 103, 238, "TOP").
		Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("GetMatchup", mock.Anything, 238, 103, "TOP").
		Return(nil, gorm.ErrRecordNotFound)

	result, err := service.GetMatchup(context.Background(), "TOP", 103, 238, "en_US")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, result)
}

func TestGetMatchupZeroGamesFallsToMirror(t *testing.T) {
	service, mockRepo := setupTestService(t)

	// A rollup row without games carries no signal.
	mockRepo.On("GetMatchup", mock.Anything, 103, 238, "MIDDLE").
		Return(&models.ChampionMatchup{ChampionId: 103, EnemyChampionId: 238, Position: "MIDDLE"}, nil)
	mockRepo.On("GetMatchup", mock.Anything, 238, 103, "MIDDLE").
		Return(&models.ChampionMatchup{ChampionId: 238, EnemyChampionId: 103, Position: "MIDDLE", Wins: 50, Games: 100}, nil)

	result, err := service.GetMatchup(context.Background(), "MIDDLE", 103, 238, "en_US")
	require.NoError(t, err)

	assert.InDelta(t, 50, result.WinRate, 0.0001)
	assert.Equal(t, stats.Even, result.Advantage)
}
