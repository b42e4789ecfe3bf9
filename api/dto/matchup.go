package dto

import "riftview/pkg/stats"

// MatchupAdvantage is the lane matchup payload.
type MatchupAdvantage struct {
	Position             string          `json:"position"`
	ChampionId           int             `json:"championId"`
	ChampionIconUrl      string          `json:"championIconUrl"`
	EnemyChampionId      int             `json:"enemyChampionId"`
	EnemyChampionIconUrl string          `json:"enemyChampionIconUrl"`
	WinRate              float64         `json:"winRate"`
	Games                int             `json:"games"`
	Advantage            stats.Advantage `json:"advantage"`
}
