package models

import "time"

// ChampionMatchup is the database model for the champion versus champion rollup.
// The rows are recalculated by the scheduler from the raw match stats.
type ChampionMatchup struct {
	ID              uint   `gorm:"primaryKey"`
	ChampionId      int    `gorm:"not null;index:idx_matchup,unique"`
	EnemyChampionId int    `gorm:"not null;index:idx_matchup,unique"`
	Position        string `gorm:"type:varchar(10);not null;index:idx_matchup,unique"`
	Wins            int
	Games           int
	UpdatedAt       time.Time
}

// WinRate returns the matchup win rate as a percentage.
// Returns false when there are no games recorded.
func (m *ChampionMatchup) WinRate() (float64, bool) {
	if m.Games == 0 {
		return 0, false
	}
	return float64(m.Wins) * 100 / float64(m.Games), true
}
