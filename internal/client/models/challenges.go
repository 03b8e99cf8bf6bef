package models

import "time"

// ChallengeCount is the number of challenges in a daily set.
const ChallengeCount = 5

// DailyChallengeSet is the locally cached set of generated wellness
// challenges. At most one valid set exists per calendar day; a set generated
// on an earlier day is stale and must be regenerated.
type DailyChallengeSet struct {
	Challenges  []string
	GeneratedAt time.Time
	Completed   map[int]struct{}
}

// Stale reports whether a set generated at generatedAt is no longer valid at
// now, i.e. the two instants fall on different calendar days in local time.
func Stale(generatedAt, now time.Time) bool {
	gy, gm, gd := generatedAt.Date()
	ny, nm, nd := now.Date()
	return gy != ny || gm != nm || gd != nd
}

// MarkCompleted records the completion of the challenge at index i.
// Marking is idempotent; out-of-range indices are ignored.
func (s *DailyChallengeSet) MarkCompleted(i int) {
	if i < 0 || i >= len(s.Challenges) {
		return
	}
	if s.Completed == nil {
		s.Completed = make(map[int]struct{})
	}
	s.Completed[i] = struct{}{}
}

// IsCompleted reports whether the challenge at index i has been marked done.
func (s *DailyChallengeSet) IsCompleted(i int) bool {
	_, ok := s.Completed[i]
	return ok
}
