package repositories

import (
	"context"
	"riftview/pkg/database/models"
	"time"

	"gorm.io/gorm"
)

// MatchRepository is the public interface for accessing the match data.
type MatchRepository interface {
	GetMatchByMatchId(ctx context.Context, region string, matchId string) (*models.MatchInfo, error)
	GetMatchParticipants(ctx context.Context, internalId uint) ([]RawParticipant, error)
	GetMatchHistory(ctx context.Context, playerId uint, queueId int, limit int, offset int) ([]RawHistoryEntry, error)
	GetParticipantFrames(ctx context.Context, internalId uint, frameIndex int) ([]models.ParticipantFrame, error)
	GetItemEvents(ctx context.Context, internalId uint) ([]models.ItemEvent, error)
}

// matchRepository repository structure.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a match repository.
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

// RawParticipant is the raw participant row joined with the player identity.
type RawParticipant struct {
	models.MatchStats `gorm:"embedded"`

	RiotIDGameName string `gorm:"column:riot_id_game_name"`
	RiotIDTagline  string `gorm:"column:riot_id_tagline"`
}

// RawHistoryEntry is the raw participant row joined with the match metadata.
type RawHistoryEntry struct {
	models.MatchStats `gorm:"embedded"`

	RiotMatchID  string    `gorm:"column:riot_match_id"`
	Region       string    `gorm:"column:region"`
	Duration     int       `gorm:"column:match_duration"`
	Date         time.Time `gorm:"column:match_start"`
	QueueID      int       `gorm:"column:queue_id"`
	WinnerTeamId int       `gorm:"column:match_winner"`
	Remake       bool      `gorm:"column:match_remake"`
}

// GetMatchByMatchId finds a single match by its region and riot match id.
func (mr *matchRepository) GetMatchByMatchId(ctx context.Context, region string, matchId string) (*models.MatchInfo, error) {
	var match models.MatchInfo

	err := mr.db.WithContext(ctx).
		Where("region = ? AND match_id = ?", region, matchId).
		First(&match).Error
	if err != nil {
		return nil, err
	}

	return &match, nil
}

// GetMatchParticipants returns every participant row of a match.
func (mr *matchRepository) GetMatchParticipants(ctx context.Context, internalId uint) ([]RawParticipant, error) {
	var rawResults []RawParticipant

	query := `
		SELECT
			ms.*,
			pi.riot_id_game_name,
			pi.riot_id_tagline
		FROM match_stats ms
		JOIN player_infos pi ON ms.player_id = pi.id
		WHERE ms.match_id = ?
		ORDER BY ms.participant_id
	`

	if err := mr.db.WithContext(ctx).Raw(query, internalId).Scan(&rawResults).Error; err != nil {
		return nil, err
	}

	return rawResults, nil
}

// GetMatchHistory returns the most recent participant rows of a player.
// A zero queue id means every queue.
func (mr *matchRepository) GetMatchHistory(ctx context.Context, playerId uint, queueId int, limit int, offset int) ([]RawHistoryEntry, error) {
	var rawResults []RawHistoryEntry

	query := `
		SELECT
			ms.*,
			mi.match_id AS riot_match_id,
			mi.region,
			mi.match_duration,
			mi.match_start,
			mi.queue_id,
			mi.match_winner,
			mi.match_remake
		FROM match_stats ms
		JOIN match_infos mi ON ms.match_id = mi.id
		WHERE ms.player_id = ?
		AND (? = 0 OR mi.queue_id = ?)
		ORDER BY mi.match_start DESC
		LIMIT ? OFFSET ?
	`

	if err := mr.db.WithContext(ctx).Raw(query, playerId, queueId, queueId, limit, offset).Scan(&rawResults).Error; err != nil {
		return nil, err
	}

	return rawResults, nil
}

// GetParticipantFrames returns the timeline frames of every participant at a given minute.
func (mr *matchRepository) GetParticipantFrames(ctx context.Context, internalId uint, frameIndex int) ([]models.ParticipantFrame, error) {
	var frames []models.ParticipantFrame

	err := mr.db.WithContext(ctx).
		Where("match_id = ? AND frame_index = ?", internalId, frameIndex).
		Order("participant_id").
		Find(&frames).Error
	if err != nil {
		return nil, err
	}

	return frames, nil
}

// GetItemEvents returns every item event of a match, oldest first.
func (mr *matchRepository) GetItemEvents(ctx context.Context, internalId uint) ([]models.ItemEvent, error) {
	var events []models.ItemEvent

	err := mr.db.WithContext(ctx).
		Where("match_id = ?", internalId).
		Order("timestamp").
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	return events, nil
}
