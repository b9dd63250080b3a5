package services

import (
	"testing"
	"time"
)

func TestAccessPolicySetsAreIndependent(t *testing.T) {
	policy := NewAccessPolicy([]int64{42}, []int64{99})

	if !policy.IsAuthorized(42) {
		t.Error("42 should be authorized")
	}
	if policy.IsAdmin(42) {
		t.Error("42 should not be admin")
	}
	if policy.IsAuthorized(99) {
		t.Error("99 should not be authorized; admin status does not imply it")
	}
	if !policy.IsAdmin(99) {
		t.Error("99 should be admin")
	}
	if policy.IsAuthorized(7) || policy.IsAdmin(7) {
		t.Error("7 should be neither authorized nor admin")
	}
}

func TestAccessPolicyEmptySets(t *testing.T) {
	policy := NewAccessPolicy(nil, nil)
	if policy.IsAuthorized(42) || policy.IsAdmin(42) {
		t.Error("empty sets should authorize nobody")
	}
}

func TestCanBet(t *testing.T) {
	policy := NewAccessPolicy(nil, nil)
	start := time.Date(2026, 6, 14, 18, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		now      time.Time
		approved bool
		want     bool
	}{
		{"before start, approved", start.Add(-time.Second), true, true},
		{"before start, not approved", start.Add(-time.Second), false, false},
		{"at exact start", start, true, false},
		{"after start", start.Add(time.Second), true, false},
		{"after start, not approved", start.Add(time.Second), false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := policy.CanBet(tc.now, start, tc.approved); got != tc.want {
				t.Errorf("CanBet = %v, want %v", got, tc.want)
			}
		})
	}
}
