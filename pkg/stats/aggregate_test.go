package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKda(t *testing.T) {
	tests := []struct {
		name            string
		kills           int
		deaths          int
		assists         int
		expectedKda     float64
		expectedPerfect bool
	}{
		{
			name:            "regularLine",
			kills:           5,
			deaths:          3,
			assists:         0,
			expectedKda:     5.0 / 3.0,
			expectedPerfect: false,
		},
		{
			name:            "zeroDeaths",
			kills:           10,
			deaths:          0,
			assists:         4,
			expectedKda:     0,
			expectedPerfect: true,
		},
		{
			name:            "zeroEverything",
			kills:           0,
			deaths:          0,
			assists:         0,
			expectedKda:     0,
			expectedPerfect: true,
		},
		{
			name:            "assistsOnly",
			kills:           0,
			deaths:          2,
			assists:         8,
			expectedKda:     4,
			expectedPerfect: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kda, perfect := Kda(tt.kills, tt.deaths, tt.assists)
			assert.InDelta(t, tt.expectedKda, kda, 0.0001)
			assert.Equal(t, tt.expectedPerfect, perfect)
		})
	}
}

func TestWinRate(t *testing.T) {
	tests := []struct {
		name     string
		wins     int
		games    int
		expected int
	}{
		{name: "noGames", wins: 0, games: 0, expected: 0},
		{name: "allWins", wins: 7, games: 7, expected: 100},
		{name: "roundsUp", wins: 2, games: 3, expected: 67},
		{name: "roundsToNearest", wins: 1, games: 3, expected: 33},
		{name: "half", wins: 1, games: 2, expected: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WinRate(tt.wins, tt.games))
		})
	}
}

func TestAggregateChampions(t *testing.T) {
	matches := []MatchSummary{
		{ChampionId: 103, ChampionName: "Ahri", Win: true, Kills: 10, Deaths: 2, Assists: 5, Cs: 180, DurationSeconds: 1800, Position: "MIDDLE"},
		{ChampionId: 103, ChampionName: "Ahri", Win: false, Kills: 2, Deaths: 6, Assists: 3, Cs: 150, DurationSeconds: 1800, Position: "MIDDLE"},
		{ChampionId: 103, ChampionName: "Ahri", Win: true, Kills: 8, Deaths: 0, Assists: 10, Cs: 200, DurationSeconds: 2400, Position: "MIDDLE"},
		{ChampionId: 238, ChampionName: "Zed", Win: true, Kills: 12, Deaths: 4, Assists: 2, Cs: 210, DurationSeconds: 2100, Position: "MIDDLE"},
	}

	result := AggregateChampions(matches)

	assert.Len(t, result, 2)

	// Most played champion first.
	ahri := result[0]
	assert.Equal(t, 103, ahri.ChampionId)
	assert.Equal(t, "Ahri", ahri.ChampionName)
	assert.Equal(t, 3, ahri.Games)
	assert.Equal(t, 2, ahri.Wins)
	assert.Equal(t, 1, ahri.Losses)
	assert.Equal(t, ahri.Games, ahri.Wins+ahri.Losses)
	assert.Equal(t, 67, ahri.WinRate)
	assert.Equal(t, 20, ahri.Kills)
	assert.Equal(t, 8, ahri.Deaths)
	assert.Equal(t, 18, ahri.Assists)
	assert.InDelta(t, 4.75, ahri.Kda, 0.0001)
	assert.False(t, ahri.PerfectKda)
	assert.Equal(t, 530, ahri.TotalCs)
	assert.InDelta(t, 5.3, ahri.CsPerMinute, 0.0001)
	assert.Equal(t, []string{"MIDDLE"}, ahri.Positions)

	zed := result[1]
	assert.Equal(t, 238, zed.ChampionId)
	assert.Equal(t, 1, zed.Games)
	assert.Equal(t, 100, zed.WinRate)
}

func TestAggregateChampionsPerfectKda(t *testing.T) {
	matches := []MatchSummary{
		{ChampionId: 103, Win: true, Kills: 5, Deaths: 0, Assists: 3, DurationSeconds: 1800},
	}

	result := AggregateChampions(matches)

	assert.Len(t, result, 1)
	assert.True(t, result[0].PerfectKda)
	assert.Equal(t, float64(0), result[0].Kda)
}

func TestAggregateChampionsAssumedDuration(t *testing.T) {
	// A missing duration counts as 30 minutes for the cs pace.
	matches := []MatchSummary{
		{ChampionId: 103, Win: true, Cs: 300, DurationSeconds: 0},
	}

	result := AggregateChampions(matches)

	assert.Len(t, result, 1)
	assert.InDelta(t, 10, result[0].CsPerMinute, 0.0001)
}

func TestAggregateChampionsOrdering(t *testing.T) {
	matches := []MatchSummary{
		{ChampionId: 238, Win: true},
		{ChampionId: 103, Win: false},
	}

	result := AggregateChampions(matches)

	// Equal games, lower champion id first.
	assert.Equal(t, 103, result[0].ChampionId)
	assert.Equal(t, 238, result[1].ChampionId)
}

func TestAggregatePositions(t *testing.T) {
	matches := []MatchSummary{
		{ChampionId: 103, Win: true, Position: "MIDDLE"},
		{ChampionId: 103, Win: false, Position: "MIDDLE"},
		{ChampionId: 22, Win: true, Position: "BOTTOM"},
		{ChampionId: 64, Win: true, Position: "Invalid", SecondaryPosition: "JUNGLE"},
		{ChampionId: 412, Win: false, Position: "", SecondaryPosition: ""},
	}

	result := AggregatePositions(matches)

	assert.Len(t, result, 3)

	assert.Equal(t, "MIDDLE", result[0].Position)
	assert.Equal(t, 2, result[0].Games)
	assert.Equal(t, 50, result[0].WinRate)

	// Equal games, alphabetical order.
	assert.Equal(t, "BOTTOM", result[1].Position)
	assert.Equal(t, "JUNGLE", result[2].Position)
}
