package services

import "time"

// AccessPolicy answers authorization questions from user-ID sets fixed at
// startup. The authorized and admin sets are independent: being an admin
// does not imply being authorized, and vice versa.
type AccessPolicy struct {
	authorized map[int64]struct{}
	admins     map[int64]struct{}
}

func NewAccessPolicy(authorized, admins []int64) *AccessPolicy {
	p := &AccessPolicy{
		authorized: make(map[int64]struct{}, len(authorized)),
		admins:     make(map[int64]struct{}, len(admins)),
	}
	for _, id := range authorized {
		p.authorized[id] = struct{}{}
	}
	for _, id := range admins {
		p.admins[id] = struct{}{}
	}
	return p
}

func (p *AccessPolicy) IsAuthorized(tgID int64) bool {
	_, ok := p.authorized[tgID]
	return ok
}

func (p *AccessPolicy) IsAdmin(tgID int64) bool {
	_, ok := p.admins[tgID]
	return ok
}

// CanBet reports whether a bet may be placed: strictly before match start,
// and only with an approved participation. A bet at the exact start instant
// is rejected.
func (p *AccessPolicy) CanBet(now, matchStart time.Time, participationApproved bool) bool {
	return now.Before(matchStart) && participationApproved
}
