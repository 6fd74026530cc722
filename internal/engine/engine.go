package engine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"mindmend/internal/assessment"
	"mindmend/internal/catalog"
	"mindmend/internal/config"
	"mindmend/internal/domain"
	"mindmend/internal/events"
	"mindmend/internal/recommend"
	"mindmend/internal/repo"
	"mindmend/internal/wellbeing"
)

type Engine struct {
	DB          *sql.DB
	Repo        repo.Repo
	Assessments assessment.Repository
	Events      events.Writer
	Config      *config.Config
	Now         func() time.Time
}

func New(db *sql.DB, cfg *config.Config) Engine {
	return Engine{
		DB:          db,
		Repo:        repo.Repo{DB: db},
		Assessments: repo.Assessments{DB: db},
		Events:      events.Writer{DB: db},
		Config:      cfg,
		Now:         time.Now,
	}
}

func (e Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

// --- auth ---

func (e Engine) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return domain.User{}, errors.New("email is required")
	}
	if len(password) < 6 {
		return domain.User{}, errors.New("password must be at least 6 characters")
	}
	if _, err := e.Repo.GetUserByEmail(ctx, email); err == nil {
		return domain.User{}, ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return domain.User{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}
	u := domain.User{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Email:     email,
		PassHash:  string(hash),
		CreatedAt: e.now().UTC().Format(time.RFC3339),
	}
	tx, err := e.DB.BeginTx(ctx, nil)
	if err != nil {
		return domain.User{}, err
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, `INSERT INTO users(id,name,email,pass_hash,created_at) VALUES (?,?,?,?,?)`,
		u.ID, u.Name, u.Email, u.PassHash, u.CreatedAt); err != nil {
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}
	if err := e.Events.Append(ctx, tx, "user.registered", "user", u.ID, u.ID, events.EventPayload{"email": u.Email}); err != nil {
		return domain.User{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (e Engine) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	u, err := e.Repo.GetUserByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PassHash), []byte(password)) != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// --- assessment ---

// SubmitAssessment stores the full assessment record for a user, replacing
// any previous one.
func (e Engine) SubmitAssessment(ctx context.Context, a domain.Assessment) (domain.Assessment, error) {
	if a.UserID == "" {
		return domain.Assessment{}, errors.New("user is required")
	}
	a.UpdatedAt = e.now().UTC().Format(time.RFC3339)
	if err := e.Assessments.Write(ctx, a); err != nil {
		return domain.Assessment{}, fmt.Errorf("write assessment: %w", err)
	}
	if err := e.appendEvent(ctx, "assessment.submitted", "assessment", a.UserID, a.UserID, events.EventPayload{
		"score": wellbeing.Score(a),
	}); err != nil {
		return domain.Assessment{}, err
	}
	return a, nil
}

func (e Engine) Assessment(ctx context.Context, userID string) (domain.Assessment, error) {
	return e.Assessments.Read(ctx, userID)
}

func (e Engine) HasAssessment(ctx context.Context, userID string) (bool, error) {
	return e.Assessments.Exists(ctx, userID)
}

func (e Engine) ClearAssessment(ctx context.Context, userID string) error {
	if err := e.Assessments.Clear(ctx, userID); err != nil {
		return err
	}
	return e.appendEvent(ctx, "assessment.cleared", "assessment", userID, userID, nil)
}

// Wellbeing derives the dashboard report from the stored assessment.
func (e Engine) Wellbeing(ctx context.Context, userID string) (wellbeing.Report, error) {
	a, err := e.Assessments.Read(ctx, userID)
	if err != nil {
		return wellbeing.Report{}, err
	}
	return wellbeing.Derive(a), nil
}

// --- recommendations ---

func (e Engine) Recommendations(ctx context.Context, userID string, f recommend.Filter) ([]recommend.Recommendation, error) {
	done, err := e.Repo.CompletedActivities(ctx, userID)
	if err != nil {
		return nil, err
	}
	return recommend.Recommend(catalog.Activities(), recommend.NewCompletedSet(done), f), nil
}

// CompleteActivity marks an activity done for the user. Unknown activity ids
// are accepted; completion state is membership, not catalog validation.
func (e Engine) CompleteActivity(ctx context.Context, userID, activityID string) error {
	if err := e.Repo.MarkActivityCompleted(ctx, userID, activityID); err != nil {
		return err
	}
	return e.appendEvent(ctx, "activity.completed", "activity", activityID, userID, nil)
}

func (e Engine) Activity(ctx context.Context, userID, activityID string) (recommend.Recommendation, error) {
	act, ok := catalog.FindActivity(activityID)
	if !ok {
		return recommend.Recommendation{}, repo.ErrNotFound
	}
	done, err := e.Repo.CompletedActivities(ctx, userID)
	if err != nil {
		return recommend.Recommendation{}, err
	}
	return recommend.Recommendation{
		Activity:  act,
		Completed: recommend.NewCompletedSet(done).Contains(activityID),
	}, nil
}

// --- mood ---

func validMood(mood string) bool {
	switch mood {
	case domain.MoodHappy, domain.MoodSad, domain.MoodAnxious, domain.MoodNeutral:
		return true
	}
	return false
}

func (e Engine) TrackMood(ctx context.Context, userID, mood, notes string) (domain.MoodEntry, error) {
	if !validMood(mood) {
		return domain.MoodEntry{}, fmt.Errorf("unknown mood %q", mood)
	}
	m := domain.MoodEntry{
		ID:     uuid.NewString(),
		UserID: userID,
		Date:   e.now().UTC().Format(time.RFC3339),
		Mood:   mood,
		Notes:  notes,
	}
	if err := e.Repo.InsertMoodEntry(ctx, m); err != nil {
		return domain.MoodEntry{}, fmt.Errorf("insert mood entry: %w", err)
	}
	if err := e.appendEvent(ctx, "mood.tracked", "mood_entry", m.ID, userID, events.EventPayload{"mood": mood}); err != nil {
		return domain.MoodEntry{}, err
	}
	return m, nil
}

func (e Engine) MoodHistory(ctx context.Context, userID string) ([]domain.MoodEntry, error) {
	return e.Repo.ListMoodEntries(ctx, userID)
}

// --- therapists and appointments ---

func (e Engine) Therapists() []domain.Therapist {
	return catalog.Therapists()
}

func (e Engine) Therapist(id string) (domain.Therapist, error) {
	t, ok := catalog.FindTherapist(id)
	if !ok {
		return domain.Therapist{}, repo.ErrNotFound
	}
	return t, nil
}

func (e Engine) Slots() []string {
	return catalog.Slots()
}

type AppointmentOptions struct {
	UserID      string
	TherapistID string
	Date        string
	Time        string
	Type        string
}

func (e Engine) BookAppointment(ctx context.Context, opts AppointmentOptions) (domain.Appointment, error) {
	if _, ok := catalog.FindTherapist(opts.TherapistID); !ok {
		return domain.Appointment{}, fmt.Errorf("unknown therapist %q: %w", opts.TherapistID, repo.ErrNotFound)
	}
	if opts.Date == "" {
		return domain.Appointment{}, errors.New("date is required")
	}
	if !catalog.ValidSlot(opts.Time) {
		return domain.Appointment{}, fmt.Errorf("time %q is not an available slot", opts.Time)
	}
	if opts.Type != domain.SessionVideo && opts.Type != domain.SessionChat {
		return domain.Appointment{}, fmt.Errorf("session type must be %q or %q", domain.SessionVideo, domain.SessionChat)
	}
	appt := domain.Appointment{
		ID:          uuid.NewString(),
		UserID:      opts.UserID,
		TherapistID: opts.TherapistID,
		Date:        opts.Date,
		Time:        opts.Time,
		Type:        opts.Type,
		Status:      domain.AppointmentScheduled,
		CreatedAt:   e.now().UTC().Format(time.RFC3339),
	}
	tx, err := e.DB.BeginTx(ctx, nil)
	if err != nil {
		return domain.Appointment{}, err
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, `INSERT INTO appointments(id,user_id,therapist_id,date,time,type,status,created_at) VALUES (?,?,?,?,?,?,?,?)`,
		appt.ID, appt.UserID, appt.TherapistID, appt.Date, appt.Time, appt.Type, appt.Status, appt.CreatedAt); err != nil {
		return domain.Appointment{}, fmt.Errorf("insert appointment: %w", err)
	}
	if err := e.Events.Append(ctx, tx, "appointment.booked", "appointment", appt.ID, appt.UserID, events.EventPayload{
		"therapist_id": appt.TherapistID,
		"date":         appt.Date,
		"time":         appt.Time,
	}); err != nil {
		return domain.Appointment{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Appointment{}, err
	}
	return appt, nil
}

func (e Engine) Appointments(ctx context.Context, userID string) ([]domain.Appointment, error) {
	return e.Repo.ListAppointments(ctx, userID)
}

// appendEvent wraps a single event append in its own transaction, for
// operations whose data write happens outside e.DB.
func (e Engine) appendEvent(ctx context.Context, evtType, entityKind, entityID, userID string, payload events.EventPayload) error {
	tx, err := e.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if err := e.Events.Append(ctx, tx, evtType, entityKind, entityID, userID, payload); err != nil {
		return err
	}
	return tx.Commit()
}
