package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"mindmend/internal/assessment"
	"mindmend/internal/domain"
)

// Assessments is the SQLite-backed assessment store. One row per user,
// replaced wholesale on resubmission.
type Assessments struct {
	DB *sql.DB
}

var _ assessment.Repository = Assessments{}

func (s Assessments) Write(ctx context.Context, a domain.Assessment) error {
	if a.UserID == "" {
		return errors.New("user_id required")
	}
	if a.UpdatedAt == "" {
		a.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	prefs, err := json.Marshal(a.PreferredActivities)
	if err != nil {
		return err
	}
	_, err = s.DB.ExecContext(ctx, `INSERT INTO assessments(user_id,name,age,gender,sleep_quality,stress_level,mood_rating,energy_level,primary_goal,preferred_activities_json,updated_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)
		ON CONFLICT(user_id) DO UPDATE SET
			name=excluded.name, age=excluded.age, gender=excluded.gender,
			sleep_quality=excluded.sleep_quality, stress_level=excluded.stress_level,
			mood_rating=excluded.mood_rating, energy_level=excluded.energy_level,
			primary_goal=excluded.primary_goal,
			preferred_activities_json=excluded.preferred_activities_json,
			updated_at=excluded.updated_at`,
		a.UserID, a.Name, a.Age, a.Gender, a.SleepQuality, a.StressLevel, a.MoodRating, a.EnergyLevel, a.PrimaryGoal, string(prefs), a.UpdatedAt)
	return err
}

func (s Assessments) Read(ctx context.Context, userID string) (domain.Assessment, error) {
	var a domain.Assessment
	var prefs string
	err := s.DB.QueryRowContext(ctx, `SELECT user_id,name,age,gender,sleep_quality,stress_level,mood_rating,energy_level,primary_goal,preferred_activities_json,updated_at FROM assessments WHERE user_id=?`, userID).
		Scan(&a.UserID, &a.Name, &a.Age, &a.Gender, &a.SleepQuality, &a.StressLevel, &a.MoodRating, &a.EnergyLevel, &a.PrimaryGoal, &prefs, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return a, assessment.ErrNotFound
	}
	if err != nil {
		return a, err
	}
	if prefs != "" {
		if err := json.Unmarshal([]byte(prefs), &a.PreferredActivities); err != nil {
			return a, err
		}
	}
	return a, nil
}

func (s Assessments) Exists(ctx context.Context, userID string) (bool, error) {
	var n int
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(1) FROM assessments WHERE user_id=?`, userID).Scan(&n)
	return n > 0, err
}

func (s Assessments) Clear(ctx context.Context, userID string) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM assessments WHERE user_id=?`, userID)
	return err
}
