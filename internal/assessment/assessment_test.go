package assessment

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"mindmend/internal/domain"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	in := domain.Assessment{
		UserID:              "u1",
		Name:                "Ada",
		Age:                 32,
		Gender:              domain.GenderFemale,
		SleepQuality:        7,
		StressLevel:         8,
		MoodRating:          6,
		EnergyLevel:         5,
		PrimaryGoal:         domain.GoalReduceStress,
		PreferredActivities: []string{"Meditation", "Nature walks"},
	}
	if err := store.Write(ctx, in); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := store.Read(ctx, "u1")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, in)
	}
}

func TestMemoryOverwrite(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	_ = store.Write(ctx, domain.Assessment{UserID: "u1", SleepQuality: 3})
	_ = store.Write(ctx, domain.Assessment{UserID: "u1", SleepQuality: 9})
	got, _ := store.Read(ctx, "u1")
	if got.SleepQuality != 9 {
		t.Fatalf("sleep %d after overwrite, want 9", got.SleepQuality)
	}
}

func TestMemoryExistsAndClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	if ok, _ := store.Exists(ctx, "u1"); ok {
		t.Fatal("exists before write")
	}
	_ = store.Write(ctx, domain.Assessment{UserID: "u1"})
	if ok, _ := store.Exists(ctx, "u1"); !ok {
		t.Fatal("missing after write")
	}
	if err := store.Clear(ctx, "u1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.Read(ctx, "u1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("read after clear: %v, want ErrNotFound", err)
	}
	// clearing an absent record is not an error
	if err := store.Clear(ctx, "u1"); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestMemoryWriteRequiresUser(t *testing.T) {
	if err := NewMemory().Write(context.Background(), domain.Assessment{}); err == nil {
		t.Fatal("write without user_id should fail")
	}
}
