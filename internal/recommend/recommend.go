// Package recommend annotates and filters the activity catalog against a
// user's completion state. All operations are pure and total: the catalog is
// never mutated and no input combination produces an error.
package recommend

import (
	"strconv"
	"strings"

	"mindmend/internal/domain"
)

// Bucket is one of the three fixed display groupings of activity categories.
type Bucket string

const (
	BucketMeditation Bucket = "meditation"
	BucketExercise   Bucket = "exercise"
	BucketCreative   Bucket = "creative"
)

// DurationBand groups free-text durations into the two filter chips the
// catalog exposes.
type DurationBand string

const (
	DurationShort DurationBand = "short" // 5-10 min
	DurationLong  DurationBand = "long"  // 15-20 min
)

// Recommendation is a catalog entry decorated with completion state.
type Recommendation struct {
	domain.Activity
	Completed bool `json:"completed"`
}

// Filter narrows the recommendation list. Zero values match everything.
// Filters never reorder: results keep catalog declaration order.
type Filter struct {
	Bucket     Bucket
	Duration   DurationBand
	Difficulty string
}

// CompletedSet is the set of activity ids a user has marked done. Membership
// is not checked against the catalog: marking an unknown id is accepted and
// stored.
type CompletedSet map[string]struct{}

// NewCompletedSet builds a set from a list of ids.
func NewCompletedSet(ids []string) CompletedSet {
	s := make(CompletedSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Mark adds id to the set. Idempotent: marking an already-completed id is a
// no-op.
func (s CompletedSet) Mark(id string) CompletedSet {
	if s == nil {
		s = CompletedSet{}
	}
	s[id] = struct{}{}
	return s
}

// Contains reports membership.
func (s CompletedSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// BucketFor maps a category into its display bucket. Categories outside the
// fixed partition belong to no bucket and only show in the unfiltered view.
func BucketFor(category string) (Bucket, bool) {
	switch category {
	case domain.CategoryMeditation:
		return BucketMeditation, true
	case domain.CategoryExercise, domain.CategoryRelaxation:
		return BucketExercise, true
	case domain.CategoryJournaling, domain.CategoryArtsAndCraft:
		return BucketCreative, true
	}
	return "", false
}

// durationMinutes parses the leading integer of a free-text duration such as
// "5 min". Unparseable durations match no band.
func durationMinutes(d string) (int, bool) {
	fields := strings.Fields(d)
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, false
	}
	return n, true
}

func matchesDuration(d string, band DurationBand) bool {
	minutes, ok := durationMinutes(d)
	if !ok {
		return false
	}
	switch band {
	case DurationShort:
		return minutes >= 5 && minutes <= 10
	case DurationLong:
		return minutes >= 15 && minutes <= 20
	}
	return false
}

func matches(a domain.Activity, f Filter) bool {
	if f.Bucket != "" {
		b, ok := BucketFor(a.Category)
		if !ok || b != f.Bucket {
			return false
		}
	}
	if f.Duration != "" && !matchesDuration(a.Duration, f.Duration) {
		return false
	}
	if f.Difficulty != "" && a.Difficulty != f.Difficulty {
		return false
	}
	return true
}

// Recommend returns the catalog entries matching f, each annotated with the
// user's completion state. The catalog itself is left untouched.
func Recommend(catalog []domain.Activity, completed CompletedSet, f Filter) []Recommendation {
	out := make([]Recommendation, 0, len(catalog))
	for _, a := range catalog {
		if !matches(a, f) {
			continue
		}
		out = append(out, Recommendation{Activity: a, Completed: completed.Contains(a.ID)})
	}
	return out
}
