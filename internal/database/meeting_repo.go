package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/OfficialHisha/MeetBot/internal/domain/contract"
	"github.com/OfficialHisha/MeetBot/internal/domain/entity"
)

type meetingRepository struct {
	db dbConn
}

func newMeetingRepository(db dbConn) contract.MeetingRepo {
	return &meetingRepository{db: db}
}

const meetingColumns = `id, description, scheduled_at, participants, notification_state, side_channel_id, created_at, updated_at`

func (r *meetingRepository) Create(meeting *entity.Meeting) error {
	query := `
		INSERT INTO meetings (description, scheduled_at, participants, notification_state, side_channel_id)
		VALUES (?, ?, ?, ?, ?)
	`

	// Convert Participants to JSON for storage
	participantsJSON, err := json.Marshal(meeting.Participants)
	if err != nil {
		return fmt.Errorf("failed to marshal participants: %w", err)
	}

	result, err := r.db.Exec(query,
		meeting.Description,
		meeting.ScheduledAt.UTC(),
		string(participantsJSON),
		int(meeting.Notification),
		meeting.SideChannelID,
	)
	if err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	meeting.ID = id
	return nil
}

func (r *meetingRepository) GetByID(id int64) (*entity.Meeting, error) {
	query := `
		SELECT ` + meetingColumns + `
		FROM meetings
		WHERE id = ?
	`

	meeting, err := r.scanMeeting(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	return meeting, nil
}

func (r *meetingRepository) GetByParticipant(label string) ([]*entity.Meeting, error) {
	// Participants are stored as a JSON array of quoted IDs, so a containment
	// match on the quoted label is exact.
	quoted, err := json.Marshal(label)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal participant label: %w", err)
	}

	query := `
		SELECT ` + meetingColumns + `
		FROM meetings
		WHERE participants LIKE ?
		ORDER BY scheduled_at
	`

	return r.queryMeetings(query, "%"+string(quoted)+"%")
}

func (r *meetingRepository) GetDueWithin(now time.Time, lookahead time.Duration) ([]*entity.Meeting, error) {
	query := `
		SELECT ` + meetingColumns + `
		FROM meetings
		WHERE scheduled_at <= ?
		ORDER BY scheduled_at
	`

	return r.queryMeetings(query, now.UTC().Add(lookahead))
}

func (r *meetingRepository) GetStale(now time.Time, retention time.Duration) ([]*entity.Meeting, error) {
	query := `
		SELECT ` + meetingColumns + `
		FROM meetings
		WHERE scheduled_at < ?
		ORDER BY scheduled_at
	`

	return r.queryMeetings(query, now.UTC().Add(-retention))
}

func (r *meetingRepository) SetNotificationState(id int64, state entity.NotificationState) error {
	query := `
		UPDATE meetings SET
			notification_state = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query, int(state), time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to set notification state: %w", err)
	}

	return nil
}

func (r *meetingRepository) SetScheduledAt(id int64, scheduledAt time.Time) error {
	// A reschedule invalidates any reminders already sent
	query := `
		UPDATE meetings SET
			scheduled_at = ?,
			notification_state = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query, scheduledAt.UTC(), int(entity.NotificationNone), time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to set scheduled time: %w", err)
	}

	return nil
}

func (r *meetingRepository) SetSideChannel(id int64, channelID string) error {
	query := `
		UPDATE meetings SET
			side_channel_id = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query, channelID, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to set side channel: %w", err)
	}

	return nil
}

func (r *meetingRepository) Delete(id int64) (bool, error) {
	query := `DELETE FROM meetings WHERE id = ?`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete meeting: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected > 0, nil
}

func (r *meetingRepository) queryMeetings(query string, args ...interface{}) ([]*entity.Meeting, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query meetings: %w", err)
	}
	defer rows.Close()

	var meetings []*entity.Meeting
	for rows.Next() {
		meeting, err := r.scanMeeting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meeting: %w", err)
		}
		meetings = append(meetings, meeting)
	}

	return meetings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *meetingRepository) scanMeeting(row rowScanner) (*entity.Meeting, error) {
	meeting := &entity.Meeting{}
	var participantsJSON string
	var state int

	err := row.Scan(
		&meeting.ID,
		&meeting.Description,
		&meeting.ScheduledAt,
		&participantsJSON,
		&state,
		&meeting.SideChannelID,
		&meeting.CreatedAt,
		&meeting.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	meeting.Notification = entity.NotificationState(state)
	meeting.ScheduledAt = meeting.ScheduledAt.UTC()

	// Convert JSON to Participants slice
	if err := json.Unmarshal([]byte(participantsJSON), &meeting.Participants); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participants: %w", err)
	}

	return meeting, nil
}
