package services

import (
	"errors"
	"testing"
	"time"
)

func TestBetDecide(t *testing.T) {
	s := &BetService{policy: NewAccessPolicy(nil, nil)}
	start := time.Date(2026, 6, 14, 18, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		now      time.Time
		approved bool
		want     error
	}{
		{"allowed", start.Add(-time.Minute), true, nil},
		{"at start instant", start, true, ErrMatchStarted},
		{"after start", start.Add(time.Second), true, ErrMatchStarted},
		{"not approved", start.Add(-time.Minute), false, ErrNotParticipant},
		// Time gate is reported first when both checks fail.
		{"after start and not approved", start.Add(time.Second), false, ErrMatchStarted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.decide(tc.now, start, tc.approved)
			if !errors.Is(err, tc.want) {
				t.Errorf("decide = %v, want %v", err, tc.want)
			}
		})
	}
}
