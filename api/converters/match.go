package converters

import (
	"riftview/api/dto"
	"riftview/api/repositories"
	"riftview/pkg/database/models"
	queuevalues "riftview/pkg/riotvalues/queue"
	"riftview/pkg/stats"
)

// MetadataFromMatch builds the match metadata DTO from the match model.
func MetadataFromMatch(match *models.MatchInfo) dto.MatchMetadata {
	return dto.MatchMetadata{
		MatchId:      match.MatchId,
		Region:       match.Region,
		QueueId:      match.QueueId,
		Queue:        queuevalues.QueueName(match.QueueId),
		Duration:     match.MatchDuration,
		Date:         match.MatchStart,
		WinnerTeamId: match.MatchWinner,
		Remake:       match.MatchRemake,
	}
}

// MetadataFromHistory builds the match metadata DTO from a history row.
func MetadataFromHistory(raw repositories.RawHistoryEntry) dto.MatchMetadata {
	return dto.MatchMetadata{
		MatchId:      raw.RiotMatchID,
		Region:       raw.Region,
		QueueId:      raw.QueueID,
		Queue:        queuevalues.QueueName(raw.QueueID),
		Duration:     raw.Duration,
		Date:         raw.Date,
		WinnerTeamId: raw.WinnerTeamId,
		Remake:       raw.Remake,
	}
}

// NewParticipantRecord builds the participant DTO from a raw participant row.
// Icon URLs are filled afterwards by the asset resolution batch.
func NewParticipantRecord(raw repositories.RawParticipant, duration int) dto.ParticipantRecord {
	return participantFromStats(raw.MatchStats, raw.RiotIDGameName, raw.RiotIDTagline, duration)
}

// ViewerFromHistory builds the viewer participant DTO from a history row.
func ViewerFromHistory(raw repositories.RawHistoryEntry, gameName string, tagline string) dto.ParticipantRecord {
	return participantFromStats(raw.MatchStats, gameName, tagline, raw.Duration)
}

func participantFromStats(ms models.MatchStats, gameName string, tagline string, duration int) dto.ParticipantRecord {
	kda, perfect := stats.Kda(ms.Kills, ms.Deaths, ms.Assists)

	totalCs := ms.TotalMinionsKilled + ms.NeutralMinionsKilled

	csPerMinute := 0.0
	if duration > 0 {
		csPerMinute = float64(totalCs) / (float64(duration) / 60)
	}

	items := make([]dto.ItemSlot, 0, 7)
	for _, itemId := range []int{ms.Item0, ms.Item1, ms.Item2, ms.Item3, ms.Item4, ms.Item5, ms.Item6} {
		items = append(items, dto.ItemSlot{ItemId: itemId})
	}

	return dto.ParticipantRecord{
		ParticipantId: ms.ParticipantId,
		TeamId:        ms.TeamId,
		Win:           ms.Win,
		GameName:      gameName,
		Tagline:       tagline,

		ChampionId:    ms.ChampionId,
		ChampionLevel: ms.ChampionLevel,

		Kills:      ms.Kills,
		Deaths:     ms.Deaths,
		Assists:    ms.Assists,
		Kda:        kda,
		PerfectKda: perfect,

		TotalCs:     totalCs,
		CsPerMinute: csPerMinute,

		GoldEarned:        ms.GoldEarned,
		DamageToChampions: ms.TotalDamageDealtToChampions,
		DamageTaken:       ms.TotalDamageTaken,

		VisionScore:  ms.VisionScore,
		WardsPlaced:  ms.WardsPlaced,
		WardsKilled:  ms.WardsKilled,
		ControlWards: ms.VisionWardsBoughtInGame,

		Items: items,
		Spells: []dto.SpellSlot{
			{SpellId: ms.Summoner1Id},
			{SpellId: ms.Summoner2Id},
		},
		Runes: dto.RunePage{
			PrimaryStyleId: ms.PrimaryStyleId,
			SubStyleId:     ms.SubStyleId,
			KeystoneId:     ms.KeystoneId,
			Perks:          []int{ms.Perk1, ms.Perk2, ms.Perk3, ms.Perk4, ms.Perk5},
			StatShards:     []int{ms.StatPerkOffense, ms.StatPerkFlex, ms.StatPerkDefense},
		},

		Position:   Position(ms.TeamPosition, ms.IndividualPosition),
		SkillOrder: ms.SkillOrder,
		Pings: dto.PingStats{
			AllIn:         ms.AllInPings,
			AssistMe:      ms.AssistMePings,
			Command:       ms.CommandPings,
			EnemyMissing:  ms.EnemyMissingPings,
			EnemyVision:   ms.EnemyVisionPings,
			GetBack:       ms.GetBackPings,
			Hold:          ms.HoldPings,
			NeedVision:    ms.NeedVisionPings,
			OnMyWay:       ms.OnMyWayPings,
			Push:          ms.PushPings,
			VisionCleared: ms.VisionClearedPings,
		},
	}
}

// Position picks the team position, falling back to the individual one.
func Position(teamPosition string, individualPosition string) string {
	if teamPosition != "" && teamPosition != "Invalid" {
		return teamPosition
	}
	return individualPosition
}

// SummariesFromHistory converts history rows into the stat computation input.
func SummariesFromHistory(rows []repositories.RawHistoryEntry) []stats.MatchSummary {
	summaries := make([]stats.MatchSummary, 0, len(rows))

	for _, raw := range rows {
		summaries = append(summaries, stats.MatchSummary{
			ChampionId:        raw.ChampionId,
			Win:               raw.Win,
			Kills:             raw.Kills,
			Deaths:            raw.Deaths,
			Assists:           raw.Assists,
			Cs:                raw.TotalMinionsKilled + raw.NeutralMinionsKilled,
			DurationSeconds:   raw.Duration,
			Position:          raw.TeamPosition,
			SecondaryPosition: raw.IndividualPosition,
		})
	}

	return summaries
}
