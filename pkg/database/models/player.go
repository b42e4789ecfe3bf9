package models

import "time"

// PlayerInfo is the database model for a known summoner.
type PlayerInfo struct {
	ID             uint   `gorm:"primaryKey"`
	Puuid          string `gorm:"type:varchar(78);uniqueIndex"`
	RiotIdGameName string `gorm:"type:varchar(100);index:idx_player_search"`
	RiotIdTagline  string `gorm:"type:varchar(10);index:idx_player_search"`
	Region         string `gorm:"type:varchar(5);index:idx_player_search"`
	ProfileIcon    int
	SummonerLevel  int
	UpdatedAt      time.Time
}

// PlayerRank is the database model for a player ranked entry on a given queue.
type PlayerRank struct {
	ID           uint `gorm:"primaryKey"`
	PlayerId     uint `gorm:"not null;index:idx_player_queue,unique"`
	Queue        string `gorm:"type:varchar(30);index:idx_player_queue,unique"`
	Tier         string `gorm:"type:varchar(15)"`
	Rank         string `gorm:"type:varchar(5)"`
	LeaguePoints int
	Wins         int
	Losses       int

	Player PlayerInfo `gorm:"foreignKey:PlayerId"`
}
