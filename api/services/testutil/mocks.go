// Package testutil holds the shared mocks and fixtures for the service tests.
package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"riftview/api/cache"
	"riftview/api/repositories"
	assetservice "riftview/api/services/assets"
	"riftview/pkg/config"
	"riftview/pkg/database/models"
	"riftview/pkg/ddragon"
	"testing"

	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(*testing.T) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Repository mocks.
// ============================================================================

// MockPlayerRepository mocks the player repository.
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) GetPlayerByRiotId(ctx context.Context, region string, gameName string, tagline string) (*models.PlayerInfo, error) {
	args := m.Called(ctx, region, gameName, tagline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlayerInfo), args.Error(1)
}

func (m *MockPlayerRepository) GetPlayerRanks(ctx context.Context, playerId uint) ([]models.PlayerRank, error) {
	args := m.Called(ctx, playerId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PlayerRank), args.Error(1)
}

// MockMatchRepository mocks the match repository.
type MockMatchRepository struct {
	mock.Mock
}

func (m *MockMatchRepository) GetMatchByMatchId(ctx context.Context, region string, matchId string) (*models.MatchInfo, error) {
	args := m.Called(ctx, region, matchId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MatchInfo), args.Error(1)
}

func (m *MockMatchRepository) GetMatchParticipants(ctx context.Context, internalId uint) ([]repositories.RawParticipant, error) {
	args := m.Called(ctx, internalId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.RawParticipant), args.Error(1)
}

func (m *MockMatchRepository) GetMatchHistory(ctx context.Context, playerId uint, queueId int, limit int, offset int) ([]repositories.RawHistoryEntry, error) {
	args := m.Called(ctx, playerId, queueId, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.RawHistoryEntry), args.Error(1)
}

func (m *MockMatchRepository) GetParticipantFrames(ctx context.Context, internalId uint, frameIndex int) ([]models.ParticipantFrame, error) {
	args := m.Called(ctx, internalId, frameIndex)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ParticipantFrame), args.Error(1)
}

func (m *MockMatchRepository) GetItemEvents(ctx context.Context, internalId uint) ([]models.ItemEvent, error) {
	args := m.Called(ctx, internalId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ItemEvent), args.Error(1)
}

// MockMatchupRepository mocks the matchup repository.
type MockMatchupRepository struct {
	mock.Mock
}

func (m *MockMatchupRepository) GetMatchup(ctx context.Context, championId int, enemyChampionId int, position string) (*models.ChampionMatchup, error) {
	args := m.Called(ctx, championId, enemyChampionId, position)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChampionMatchup), args.Error(1)
}

func (m *MockMatchupRepository) RecalculateAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// ============================================================================
// Asset service fixture.
// ============================================================================

const testVersions = `["15.9.1","15.8.1","15.7.1"]`

// Minimal Data Dragon documents for the asset resolution on service tests.
var testDocuments = map[string]string{
	"/cdn/15.9.1/data/en_US/champion.json": `{"data":{
		"Ahri":{"id":"Ahri","key":"103","name":"Ahri","image":{"full":"Ahri.png"}},
		"Zed":{"id":"Zed","key":"238","name":"Zed","image":{"full":"Zed.png"}},
		"Ashe":{"id":"Ashe","key":"22","name":"Ashe","image":{"full":"Ashe.png"}}
	}}`,
	"/cdn/15.9.1/data/en_US/item.json": `{"data":{
		"1055":{"name":"Doran's Blade"},
		"3071":{"name":"Black Cleaver"}
	}}`,
	"/cdn/15.9.1/data/en_US/summoner.json": `{"data":{
		"SummonerFlash":{"id":"SummonerFlash","key":"4","name":"Flash","image":{"full":"SummonerFlash.png"}},
		"SummonerDot":{"id":"SummonerDot","key":"14","name":"Ignite","image":{"full":"SummonerDot.png"}}
	}}`,
	"/cdn/15.9.1/data/en_US/runesReforged.json": `[
		{"id":8100,"key":"Domination","icon":"perk-images/Styles/7200_Domination.png","name":"Domination","slots":[
			{"runes":[{"id":8112,"key":"Electrocute","icon":"perk-images/Styles/Domination/Electrocute/Electrocute.png","name":"Electrocute"}]}
		]},
		{"id":8000,"key":"Precision","icon":"perk-images/Styles/7201_Precision.png","name":"Precision","slots":[]}
	]`,
}

// NewTestAssetService builds a real asset service backed by a local test CDN.
func NewTestAssetService(t *testing.T) *assetservice.Service {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/versions.json" {
			w.Write([]byte(testVersions))
			return
		}

		doc, ok := testDocuments[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(doc))
	}))
	t.Cleanup(server.Close)

	cfg := config.DDragonConfig{DefaultVersion: "15.9.1", Languages: []string{"en_US"}}
	client := ddragon.NewClient(cfg, nil).WithBaseURL(server.URL + "/")

	memCache := cache.NewMemCache()
	t.Cleanup(memCache.Close)

	return assetservice.NewService(&assetservice.ServiceDeps{
		MemCache:  memCache,
		Client:    client,
		Items:     ddragon.NewItemService(client),
		Runes:     ddragon.NewRuneService(client),
		Spells:    ddragon.NewSummonerSpellService(client),
		Champions: ddragon.NewChampionService(client),
	})
}
