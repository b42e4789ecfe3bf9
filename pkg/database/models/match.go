package models

import "time"

// MatchInfo is the database model for the match information.
type MatchInfo struct {
	ID             uint   `gorm:"primaryKey"`
	GameVersion    string `gorm:"type:varchar(20)"`
	MatchId        string `gorm:"type:varchar(20);uniqueIndex"`
	Region         string `gorm:"type:varchar(5);index"`
	MatchStart     time.Time
	MatchDuration  int
	MatchWinner    int
	MatchSurrender bool
	MatchRemake    bool
	FrameInterval  int64
	QueueId        int `gorm:"index"`
}

// MatchStats is the database model for a player performance in a given match.
// The record is flat on purpose, it's written once and only ever read back whole.
type MatchStats struct {
	ID       uint64 `gorm:"primaryKey"`
	MatchId  uint   `gorm:"not null;index:idx_match_player,unique"`
	PlayerId uint   `gorm:"not null;index:idx_match_player,unique"`

	Match  MatchInfo  `gorm:"foreignKey:MatchId"`
	Player PlayerInfo `gorm:"foreignKey:PlayerId"`

	ParticipantId int
	TeamId        int
	Win           bool

	ChampionId    int `gorm:"index"`
	ChampionLevel int

	Kills   int
	Deaths  int
	Assists int

	GoldEarned                  int
	TotalMinionsKilled          int
	NeutralMinionsKilled        int
	TotalDamageDealtToChampions int
	TotalDamageTaken            int

	VisionScore             int
	WardsPlaced             int
	WardsKilled             int
	VisionWardsBoughtInGame int

	Item0 int
	Item1 int
	Item2 int
	Item3 int
	Item4 int
	Item5 int
	Item6 int

	Summoner1Id int
	Summoner2Id int

	PrimaryStyleId int
	SubStyleId     int
	KeystoneId     int
	Perk1          int
	Perk2          int
	Perk3          int
	Perk4          int
	Perk5          int

	StatPerkOffense int
	StatPerkFlex    int
	StatPerkDefense int

	TeamPosition       string `gorm:"type:varchar(10)"`
	IndividualPosition string `gorm:"type:varchar(10)"`

	AllInPings         int
	AssistMePings      int
	CommandPings       int
	EnemyMissingPings  int
	EnemyVisionPings   int
	GetBackPings       int
	HoldPings          int
	NeedVisionPings    int
	OnMyWayPings       int
	PushPings          int
	VisionClearedPings int

	SkillOrder string `gorm:"type:varchar(40)"`
}

// ParticipantFrame is the database model for a per minute timeline frame.
type ParticipantFrame struct {
	ID            uint64 `gorm:"primaryKey"`
	MatchId       uint   `gorm:"not null;index:idx_frame_lookup"`
	ParticipantId int    `gorm:"not null;index:idx_frame_lookup"`
	FrameIndex    int    `gorm:"not null;index:idx_frame_lookup"`

	Match MatchInfo `gorm:"foreignKey:MatchId"`

	Level               int
	Xp                  int
	CurrentGold         int
	TotalGold           int
	MinionsKilled       int
	JungleMinionsKilled int
	DamageToChampions   int
}

// ItemEvent is the database model for a item timeline event of a participant.
type ItemEvent struct {
	ID            uint64 `gorm:"primaryKey"`
	MatchId       uint   `gorm:"not null;index:idx_item_event_lookup"`
	ParticipantId int    `gorm:"not null;index:idx_item_event_lookup"`
	Timestamp     int64
	ItemId        int
	EventType     string `gorm:"type:varchar(20)"`
}
