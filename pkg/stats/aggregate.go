// Package stats holds the derived match statistic computations.
// Everything here is a pure function of its inputs.
package stats

import (
	"math"
	"sort"
)

// Game duration assumed when the match data doesn't carry one.
const assumedGameDuration = 1800

// MatchSummary is one match seen from the viewer's perspective.
type MatchSummary struct {
	ChampionId        int
	ChampionName      string
	Win               bool
	Kills             int
	Deaths            int
	Assists           int
	Cs                int
	DurationSeconds   int
	Position          string
	SecondaryPosition string
}

// ChampionAggregate is the per champion summary over a match list.
type ChampionAggregate struct {
	ChampionId   int      `json:"championId"`
	ChampionName string   `json:"championName"`
	Games        int      `json:"games"`
	Wins         int      `json:"wins"`
	Losses       int      `json:"losses"`
	Kills        int      `json:"kills"`
	Deaths       int      `json:"deaths"`
	Assists      int      `json:"assists"`
	TotalCs      int      `json:"totalCs"`
	WinRate      int      `json:"winRate"`
	Kda          float64  `json:"kda"`
	PerfectKda   bool     `json:"perfectKda"`
	CsPerMinute  float64  `json:"csPerMinute"`
	Positions    []string `json:"positions"`

	durationSeconds int
	positionSet     map[string]bool
}

// PositionAggregate is the per position summary over a match list.
type PositionAggregate struct {
	Position string `json:"position"`
	Games    int    `json:"games"`
	Wins     int    `json:"wins"`
	WinRate  int    `json:"winRate"`
}

// AggregateChampions builds the champion buckets in a single pass.
// The result is ordered by games played, ties broken by champion id.
func AggregateChampions(matches []MatchSummary) []ChampionAggregate {
	buckets := make(map[int]*ChampionAggregate)

	for _, match := range matches {
		bucket, ok := buckets[match.ChampionId]
		if !ok {
			bucket = &ChampionAggregate{
				ChampionId:   match.ChampionId,
				ChampionName: match.ChampionName,
				positionSet:  make(map[string]bool),
			}
			buckets[match.ChampionId] = bucket
		}

		bucket.Games++
		if match.Win {
			bucket.Wins++
		} else {
			bucket.Losses++
		}

		bucket.Kills += match.Kills
		bucket.Deaths += match.Deaths
		bucket.Assists += match.Assists
		bucket.TotalCs += match.Cs

		duration := match.DurationSeconds
		if duration <= 0 {
			duration = assumedGameDuration
		}
		bucket.durationSeconds += duration

		if position := primaryPosition(match); position != "" {
			bucket.positionSet[position] = true
		}

		// Recompute the rate fields with the accumulated totals.
		bucket.WinRate = WinRate(bucket.Wins, bucket.Games)
		bucket.Kda, bucket.PerfectKda = Kda(bucket.Kills, bucket.Deaths, bucket.Assists)
		bucket.CsPerMinute = csPerMinute(bucket.TotalCs, bucket.durationSeconds)
	}

	result := make([]ChampionAggregate, 0, len(buckets))
	for _, bucket := range buckets {
		bucket.Positions = sortedKeys(bucket.positionSet)
		result = append(result, *bucket)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Games != result[j].Games {
			return result[i].Games > result[j].Games
		}
		return result[i].ChampionId < result[j].ChampionId
	})

	return result
}

// AggregatePositions builds the position buckets in a single pass.
// The result is ordered by games played, ties broken by position name.
func AggregatePositions(matches []MatchSummary) []PositionAggregate {
	buckets := make(map[string]*PositionAggregate)

	for _, match := range matches {
		position := primaryPosition(match)
		if position == "" {
			continue
		}

		bucket, ok := buckets[position]
		if !ok {
			bucket = &PositionAggregate{Position: position}
			buckets[position] = bucket
		}

		bucket.Games++
		if match.Win {
			bucket.Wins++
		}
		bucket.WinRate = WinRate(bucket.Wins, bucket.Games)
	}

	result := make([]PositionAggregate, 0, len(buckets))
	for _, bucket := range buckets {
		result = append(result, *bucket)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Games != result[j].Games {
			return result[i].Games > result[j].Games
		}
		return result[i].Position < result[j].Position
	})

	return result
}

// Kda computes (kills + assists) / deaths.
// A zero death line is reported through the perfect flag, never as a
// division artifact; the ratio is zero when the flag is set.
func Kda(kills, deaths, assists int) (float64, bool) {
	if deaths == 0 {
		return 0, true
	}
	return float64(kills+assists) / float64(deaths), false
}

// WinRate returns round(100 * wins / games) as a integer percentage.
func WinRate(wins, games int) int {
	if games == 0 {
		return 0
	}
	return int(math.Round(float64(wins) * 100 / float64(games)))
}

// csPerMinute returns the creep score pace over the accumulated play time.
func csPerMinute(totalCs, durationSeconds int) float64 {
	if durationSeconds == 0 {
		return 0
	}
	return float64(totalCs) / (float64(durationSeconds) / 60)
}

// primaryPosition picks the main position field, falling back to the secondary.
func primaryPosition(match MatchSummary) string {
	if match.Position != "" && match.Position != "Invalid" {
		return match.Position
	}
	return match.SecondaryPosition
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
