package recommend

import (
	"testing"

	"mindmend/internal/catalog"
	"mindmend/internal/domain"
)

func TestRecommendAnnotatesWithoutMutating(t *testing.T) {
	cat := catalog.Activities()
	done := NewCompletedSet([]string{"body-scan"})
	recs := Recommend(cat, done, Filter{})
	if len(recs) != len(cat) {
		t.Fatalf("got %d recommendations, want %d", len(recs), len(cat))
	}
	for i, r := range recs {
		if r.ID != cat[i].ID {
			t.Fatalf("order changed at %d: got %s, want %s", i, r.ID, cat[i].ID)
		}
		want := r.ID == "body-scan"
		if r.Completed != want {
			t.Fatalf("%s completed=%v, want %v", r.ID, r.Completed, want)
		}
	}
}

func TestBucketPartition(t *testing.T) {
	cat := catalog.Activities()
	seen := map[string]int{}
	for _, b := range []Bucket{BucketMeditation, BucketExercise, BucketCreative} {
		for _, r := range Recommend(cat, nil, Filter{Bucket: b}) {
			seen[r.ID]++
		}
	}
	if len(seen) != len(cat) {
		t.Fatalf("buckets cover %d activities, want %d", len(seen), len(cat))
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("activity %s appears in %d buckets, want 1", id, n)
		}
	}
}

func TestBucketForUnknownCategory(t *testing.T) {
	if _, ok := BucketFor("Cooking"); ok {
		t.Fatal("unknown category should map to no bucket")
	}
	stray := domain.Activity{ID: "souping", Category: "Cooking", Duration: "30 min"}
	cat := append(append([]domain.Activity{}, catalog.Activities()...), stray)
	for _, b := range []Bucket{BucketMeditation, BucketExercise, BucketCreative} {
		for _, r := range Recommend(cat, nil, Filter{Bucket: b}) {
			if r.ID == "souping" {
				t.Fatalf("stray category leaked into bucket %s", b)
			}
		}
	}
	all := Recommend(cat, nil, Filter{})
	if all[len(all)-1].ID != "souping" {
		t.Fatal("stray category missing from unfiltered view")
	}
}

func TestDurationFilter(t *testing.T) {
	cat := catalog.Activities()
	for _, r := range Recommend(cat, nil, Filter{Duration: DurationShort}) {
		if m, _ := durationMinutes(r.Duration); m < 5 || m > 10 {
			t.Fatalf("%s (%s) matched short band", r.ID, r.Duration)
		}
	}
	for _, r := range Recommend(cat, nil, Filter{Duration: DurationLong}) {
		if m, _ := durationMinutes(r.Duration); m < 15 || m > 20 {
			t.Fatalf("%s (%s) matched long band", r.ID, r.Duration)
		}
	}
	odd := []domain.Activity{{ID: "x", Duration: "a while"}}
	if got := Recommend(odd, nil, Filter{Duration: DurationShort}); len(got) != 0 {
		t.Fatal("unparseable duration should match no band")
	}
}

func TestDifficultyFilter(t *testing.T) {
	recs := Recommend(catalog.Activities(), nil, Filter{Difficulty: domain.DifficultyMedium})
	if len(recs) == 0 {
		t.Fatal("no medium activities found")
	}
	for _, r := range recs {
		if r.Difficulty != domain.DifficultyMedium {
			t.Fatalf("%s difficulty %s leaked through filter", r.ID, r.Difficulty)
		}
	}
}

func TestMarkIdempotent(t *testing.T) {
	s := NewCompletedSet(nil)
	s = s.Mark("nature-walk")
	s = s.Mark("nature-walk")
	if len(s) != 1 {
		t.Fatalf("set size %d after double mark, want 1", len(s))
	}
	if !s.Contains("nature-walk") {
		t.Fatal("marked id missing from set")
	}
}

func TestMarkUnknownIDAccepted(t *testing.T) {
	s := CompletedSet{}.Mark("no-such-activity")
	if !s.Contains("no-such-activity") {
		t.Fatal("unknown id should be stored")
	}
}

func TestMarkNilSet(t *testing.T) {
	var s CompletedSet
	s = s.Mark("mindful-breathing")
	if !s.Contains("mindful-breathing") {
		t.Fatal("mark on nil set should allocate")
	}
}
