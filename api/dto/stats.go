package dto

import "riftview/pkg/stats"

// ChampionAggregateView is a champion bucket with its resolved icon.
type ChampionAggregateView struct {
	stats.ChampionAggregate
	ChampionIconUrl string `json:"championIconUrl"`
}

// PlayerChampionStats is the champion and position summary for a summoner.
type PlayerChampionStats struct {
	Champions []ChampionAggregateView   `json:"champions"`
	Positions []stats.PositionAggregate `json:"positions"`
}
