package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"mindmend/internal/domain"
)

type Repo struct {
	DB *sql.DB
}

var ErrNotFound = errors.New("not found")

func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}

// --- users ---

func scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PassHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return u, ErrNotFound
	}
	return u, err
}

func (r Repo) GetUser(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.DB.QueryRowContext(ctx, `SELECT id,name,email,pass_hash,created_at FROM users WHERE id=?`, id))
}

func (r Repo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(r.DB.QueryRowContext(ctx, `SELECT id,name,email,pass_hash,created_at FROM users WHERE email=?`, strings.ToLower(strings.TrimSpace(email))))
}

// --- mood entries ---

func (r Repo) InsertMoodEntry(ctx context.Context, m domain.MoodEntry) error {
	_, err := r.DB.ExecContext(ctx, `INSERT INTO mood_entries(id,user_id,date,mood,notes) VALUES (?,?,?,?,?)`,
		m.ID, m.UserID, m.Date, m.Mood, nullable(m.Notes))
	return err
}

func (r Repo) ListMoodEntries(ctx context.Context, userID string) ([]domain.MoodEntry, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id,user_id,date,mood,COALESCE(notes,'') FROM mood_entries WHERE user_id=? ORDER BY date ASC, id ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []domain.MoodEntry
	for rows.Next() {
		var m domain.MoodEntry
		if err := rows.Scan(&m.ID, &m.UserID, &m.Date, &m.Mood, &m.Notes); err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, rows.Err()
}

// --- appointments ---

func (r Repo) InsertAppointment(ctx context.Context, a domain.Appointment) error {
	_, err := r.DB.ExecContext(ctx, `INSERT INTO appointments(id,user_id,therapist_id,date,time,type,status,created_at) VALUES (?,?,?,?,?,?,?,?)`,
		a.ID, a.UserID, a.TherapistID, a.Date, a.Time, a.Type, a.Status, a.CreatedAt)
	return err
}

func (r Repo) ListAppointments(ctx context.Context, userID string) ([]domain.Appointment, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id,user_id,therapist_id,date,time,type,status,created_at FROM appointments WHERE user_id=? ORDER BY date ASC, time ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		if err := rows.Scan(&a.ID, &a.UserID, &a.TherapistID, &a.Date, &a.Time, &a.Type, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

// --- completed activities ---

// MarkActivityCompleted records an activity as done. INSERT OR IGNORE keeps
// the operation idempotent: membership, not a counter.
func (r Repo) MarkActivityCompleted(ctx context.Context, userID, activityID string) error {
	if userID == "" || activityID == "" {
		return errors.New("user_id and activity_id required")
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.DB.ExecContext(ctx, `INSERT OR IGNORE INTO completed_activities(user_id,activity_id,completed_at) VALUES (?,?,?)`,
		userID, activityID, now)
	return err
}

func (r Repo) CompletedActivities(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT activity_id FROM completed_activities WHERE user_id=? ORDER BY completed_at ASC, activity_id ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// --- events ---

func (r Repo) LatestEvents(ctx context.Context, limit int, userID, evtType string) ([]domain.Event, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if userID != "" {
		clauses = append(clauses, "user_id=?")
		args = append(args, userID)
	}
	if evtType != "" {
		clauses = append(clauses, "type=?")
		args = append(args, evtType)
	}
	query := `SELECT id,ts,type,entity_kind,COALESCE(entity_id,''),user_id,payload_json FROM events WHERE ` +
		strings.Join(clauses, " AND ") + ` ORDER BY id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.TS, &e.Type, &e.EntityKind, &e.EntityID, &e.UserID, &e.Payload); err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}

// EventsAfter returns events with id greater than cursor, oldest first. Used
// by the webhook dispatcher.
func (r Repo) EventsAfter(ctx context.Context, limit int, cursor int64) ([]domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id,ts,type,entity_kind,COALESCE(entity_id,''),user_id,payload_json FROM events WHERE id>? ORDER BY id ASC LIMIT ?`,
		cursor, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.TS, &e.Type, &e.EntityKind, &e.EntityID, &e.UserID, &e.Payload); err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}

func (r Repo) LatestEventID(ctx context.Context) (int64, error) {
	var id sql.NullInt64
	err := r.DB.QueryRowContext(ctx, `SELECT MAX(id) FROM events`).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id.Int64, nil
}
