package converters

import (
	"testing"

	"riftview/api/repositories"
	"riftview/pkg/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition(t *testing.T) {
	assert.Equal(t, "MIDDLE", Position("MIDDLE", "TOP"))
	assert.Equal(t, "TOP", Position("", "TOP"))
	assert.Equal(t, "JUNGLE", Position("Invalid", "JUNGLE"))
	assert.Equal(t, "", Position("", ""))
}

func TestNewParticipantRecord(t *testing.T) {
	raw := repositories.RawParticipant{
		MatchStats: models.MatchStats{
			ParticipantId:        1,
			TeamId:               100,
			Win:                  true,
			ChampionId:           103,
			Kills:                8,
			Deaths:               2,
			Assists:              6,
			TotalMinionsKilled:   180,
			NeutralMinionsKilled: 12,
			Item0:                1055,
			Item6:                3364,
			Summoner1Id:          4,
			Summoner2Id:          14,
			PrimaryStyleId:       8100,
			SubStyleId:           8000,
			KeystoneId:           8112,
			Perk1:                8139,
			TeamPosition:         "MIDDLE",
			OnMyWayPings:         12,
		},
		RiotIDGameName: "Hide on bush",
		RiotIDTagline:  "KR1",
	}

	record := NewParticipantRecord(raw, 1800)

	assert.Equal(t, "Hide on bush", record.GameName)
	assert.Equal(t, "KR1", record.Tagline)
	assert.Equal(t, 103, record.ChampionId)
	assert.InDelta(t, 7, record.Kda, 0.0001)
	assert.False(t, record.PerfectKda)

	assert.Equal(t, 192, record.TotalCs)
	assert.InDelta(t, 6.4, record.CsPerMinute, 0.0001)

	require.Len(t, record.Items, 7)
	assert.Equal(t, 1055, record.Items[0].ItemId)
	assert.Equal(t, 0, record.Items[1].ItemId)
	assert.Equal(t, 3364, record.Items[6].ItemId)

	require.Len(t, record.Spells, 2)
	assert.Equal(t, 4, record.Spells[0].SpellId)

	assert.Equal(t, 8112, record.Runes.KeystoneId)
	assert.Equal(t, []int{8139, 0, 0, 0, 0}, record.Runes.Perks)

	assert.Equal(t, "MIDDLE", record.Position)
	assert.Equal(t, 12, record.Pings.OnMyWay)
}

func TestNewParticipantRecordPerfectKda(t *testing.T) {
	raw := repositories.RawParticipant{
		MatchStats: models.MatchStats{Kills: 5, Deaths: 0, Assists: 3},
	}

	record := NewParticipantRecord(raw, 1800)

	assert.True(t, record.PerfectKda)
	assert.Equal(t, float64(0), record.Kda)
}

func TestSummariesFromHistory(t *testing.T) {
	rows := []repositories.RawHistoryEntry{
		{
			MatchStats: models.MatchStats{
				ChampionId:         103,
				Win:                true,
				Kills:              4,
				TotalMinionsKilled: 100,
				TeamPosition:       "MIDDLE",
				IndividualPosition: "MIDDLE",
			},
			Duration: 1500,
		},
	}

	summaries := SummariesFromHistory(rows)

	require.Len(t, summaries, 1)
	assert.Equal(t, 103, summaries[0].ChampionId)
	assert.True(t, summaries[0].Win)
	assert.Equal(t, 100, summaries[0].Cs)
	assert.Equal(t, 1500, summaries[0].DurationSeconds)
	assert.Equal(t, "MIDDLE", summaries[0].Position)
}
