package engine_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"mindmend/internal/assessment"
	"mindmend/internal/config"
	"mindmend/internal/db"
	"mindmend/internal/domain"
	"mindmend/internal/engine"
	"mindmend/internal/migrate"
	"mindmend/internal/recommend"
)

type testEnv struct {
	Engine engine.Engine
	Ctx    context.Context
	User   domain.User
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	dir := t.TempDir()
	conn, err := db.Open(db.Config{Workspace: dir})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := migrate.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	eng := engine.New(conn, config.Default())
	eng.Now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	ctx := context.Background()
	user, err := eng.Register(ctx, "Avery", "avery@example.com", "sekrit1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return testEnv{Engine: eng, Ctx: ctx, User: user}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	env := newTestEnv(t)
	u, err := env.Engine.Authenticate(env.Ctx, "avery@example.com", "sekrit1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if u.ID != env.User.ID {
		t.Fatalf("expected user %s, got %s", env.User.ID, u.ID)
	}
	if _, err := env.Engine.Authenticate(env.Ctx, "avery@example.com", "wrong"); !errors.Is(err, engine.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, err := env.Engine.Authenticate(env.Ctx, "nobody@example.com", "sekrit1"); !errors.Is(err, engine.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown email, got %v", err)
	}
	if _, err := env.Engine.Register(env.Ctx, "Dup", "avery@example.com", "sekrit2"); !errors.Is(err, engine.ErrEmailTaken) {
		t.Fatalf("expected email taken, got %v", err)
	}
}

func TestAssessmentLifecycle(t *testing.T) {
	env := newTestEnv(t)
	a := domain.Assessment{
		UserID:              env.User.ID,
		Name:                "Avery",
		Age:                 29,
		Gender:              domain.GenderFemale,
		SleepQuality:        7,
		StressLevel:         8,
		MoodRating:          6,
		EnergyLevel:         5,
		PrimaryGoal:         domain.GoalReduceStress,
		PreferredActivities: []string{"Meditation", "Exercise"},
	}
	stored, err := env.Engine.SubmitAssessment(env.Ctx, a)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if stored.UpdatedAt == "" {
		t.Fatalf("expected updated_at set")
	}
	exists, err := env.Engine.HasAssessment(env.Ctx, env.User.ID)
	if err != nil || !exists {
		t.Fatalf("expected assessment to exist: %v", err)
	}
	got, err := env.Engine.Assessment(env.Ctx, env.User.ID)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.SleepQuality != 7 || got.StressLevel != 8 || got.MoodRating != 6 || got.EnergyLevel != 5 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if len(got.PreferredActivities) != 2 || got.PreferredActivities[0] != "Meditation" {
		t.Fatalf("preferred activities lost: %+v", got.PreferredActivities)
	}
	report, err := env.Engine.Wellbeing(env.Ctx, env.User.ID)
	if err != nil {
		t.Fatalf("wellbeing: %v", err)
	}
	// (7 + 6 + 3 + 5) / 4 = 5.25, rounds down
	if report.Score != 5 {
		t.Fatalf("expected score 5, got %d", report.Score)
	}
	if report.Name != "Avery" {
		t.Fatalf("expected name Avery, got %q", report.Name)
	}
	if err := env.Engine.ClearAssessment(env.Ctx, env.User.ID); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := env.Engine.Assessment(env.Ctx, env.User.ID); !errors.Is(err, assessment.ErrNotFound) {
		t.Fatalf("expected not found after clear, got %v", err)
	}
}

func TestAssessmentOverwrite(t *testing.T) {
	env := newTestEnv(t)
	first := domain.Assessment{UserID: env.User.ID, SleepQuality: 2, StressLevel: 9, MoodRating: 2, EnergyLevel: 2}
	if _, err := env.Engine.SubmitAssessment(env.Ctx, first); err != nil {
		t.Fatal(err)
	}
	second := domain.Assessment{UserID: env.User.ID, SleepQuality: 9, StressLevel: 2, MoodRating: 9, EnergyLevel: 9}
	if _, err := env.Engine.SubmitAssessment(env.Ctx, second); err != nil {
		t.Fatal(err)
	}
	got, err := env.Engine.Assessment(env.Ctx, env.User.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.SleepQuality != 9 {
		t.Fatalf("expected second submission to win, got %+v", got)
	}
}

func TestRecommendationsAndCompletion(t *testing.T) {
	env := newTestEnv(t)
	recs, err := env.Engine.Recommendations(env.Ctx, env.User.ID, recommend.Filter{})
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(recs) == 0 {
		t.Fatalf("expected catalog recommendations")
	}
	for _, r := range recs {
		if r.Completed {
			t.Fatalf("expected nothing completed yet, got %s", r.ID)
		}
	}
	if err := env.Engine.CompleteActivity(env.Ctx, env.User.ID, "mindful-breathing"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	// repeat completion stays idempotent
	if err := env.Engine.CompleteActivity(env.Ctx, env.User.ID, "mindful-breathing"); err != nil {
		t.Fatalf("second complete: %v", err)
	}
	act, err := env.Engine.Activity(env.Ctx, env.User.ID, "mindful-breathing")
	if err != nil {
		t.Fatalf("activity: %v", err)
	}
	if !act.Completed {
		t.Fatalf("expected activity marked completed")
	}
	done, err := env.Engine.Repo.CompletedActivities(env.Ctx, env.User.ID)
	if err != nil || len(done) != 1 {
		t.Fatalf("expected exactly one completion row, got %v %v", done, err)
	}
	// unknown ids are accepted without catalog validation
	if err := env.Engine.CompleteActivity(env.Ctx, env.User.ID, "no-such-activity"); err != nil {
		t.Fatalf("unknown id: %v", err)
	}
}

func TestMoodTracking(t *testing.T) {
	env := newTestEnv(t)
	entry, err := env.Engine.TrackMood(env.Ctx, env.User.ID, domain.MoodHappy, "sunny day")
	if err != nil {
		t.Fatalf("track: %v", err)
	}
	if entry.ID == "" || entry.Date == "" {
		t.Fatalf("expected id and date set: %+v", entry)
	}
	if _, err := env.Engine.TrackMood(env.Ctx, env.User.ID, "Ecstatic", ""); err == nil {
		t.Fatalf("expected unknown mood rejected")
	}
	history, err := env.Engine.MoodHistory(env.Ctx, env.User.ID)
	if err != nil || len(history) != 1 {
		t.Fatalf("expected one entry, got %v %v", history, err)
	}
	if history[0].Notes != "sunny day" {
		t.Fatalf("notes lost: %+v", history[0])
	}
}

func TestBookAppointment(t *testing.T) {
	env := newTestEnv(t)
	appt, err := env.Engine.BookAppointment(env.Ctx, engine.AppointmentOptions{
		UserID:      env.User.ID,
		TherapistID: "dr-sarah-johnson",
		Date:        "2025-06-10",
		Time:        "10:00 AM",
		Type:        domain.SessionVideo,
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if appt.Status != domain.AppointmentScheduled {
		t.Fatalf("expected Scheduled, got %s", appt.Status)
	}
	list, err := env.Engine.Appointments(env.Ctx, env.User.ID)
	if err != nil || len(list) != 1 {
		t.Fatalf("expected one appointment, got %v %v", list, err)
	}
	// invalid inputs rejected
	if _, err := env.Engine.BookAppointment(env.Ctx, engine.AppointmentOptions{
		UserID: env.User.ID, TherapistID: "nobody", Date: "2025-06-10", Time: "10:00 AM", Type: "video",
	}); err == nil {
		t.Fatalf("expected unknown therapist rejected")
	}
	if _, err := env.Engine.BookAppointment(env.Ctx, engine.AppointmentOptions{
		UserID: env.User.ID, TherapistID: "dr-sarah-johnson", Date: "2025-06-10", Time: "12:30 PM", Type: "video",
	}); err == nil {
		t.Fatalf("expected off-slot time rejected")
	}
	if _, err := env.Engine.BookAppointment(env.Ctx, engine.AppointmentOptions{
		UserID: env.User.ID, TherapistID: "dr-sarah-johnson", Date: "2025-06-10", Time: "10:00 AM", Type: "in-person",
	}); err == nil {
		t.Fatalf("expected bad session type rejected")
	}
}

func TestEventAppendOnStateChanges(t *testing.T) {
	env := newTestEnv(t)
	_, _ = env.Engine.SubmitAssessment(env.Ctx, domain.Assessment{UserID: env.User.ID, SleepQuality: 5, StressLevel: 5, MoodRating: 5, EnergyLevel: 5})
	_ = env.Engine.CompleteActivity(env.Ctx, env.User.ID, "body-scan")
	_, _ = env.Engine.TrackMood(env.Ctx, env.User.ID, domain.MoodNeutral, "")
	rows, err := env.Engine.DB.QueryContext(env.Ctx, `SELECT type FROM events WHERE user_id=?`, env.User.ID)
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	defer rows.Close()
	count := 0
	for rows.Next() {
		count++
	}
	// user.registered plus the three above
	if count < 4 {
		t.Fatalf("expected at least 4 events, got %d", count)
	}
}
