package services

import (
	"errors"
	"time"

	"github.com/Vareni4/daggybot/internal/models"

	"gorm.io/gorm"
)

var (
	ErrMatchNotFound  = errors.New("match not found")
	ErrMatchStarted   = errors.New("cannot place bet on started match")
	ErrNotParticipant = errors.New("user is not participating in this tournament")
)

type BetService struct {
	db     *gorm.DB
	policy *AccessPolicy
}

func NewBetService(db *gorm.DB, policy *AccessPolicy) *BetService {
	return &BetService{db: db, policy: policy}
}

// decide maps a failed bet gate to its rejection reason. The time gate is
// reported first, matching the order the checks are presented to the user.
func (s *BetService) decide(now, matchStart time.Time, approved bool) error {
	if s.policy.CanBet(now, matchStart, approved) {
		return nil
	}
	if !now.Before(matchStart) {
		return ErrMatchStarted
	}
	return ErrNotParticipant
}

// Place records a bet for the user on a match, overwriting the scores of an
// existing bet for the same (user, match) pair instead of duplicating it.
func (s *BetService) Place(userID, matchID uint, score1, score2 int, now time.Time) (*models.Bet, error) {
	var match models.Match
	if err := s.db.First(&match, matchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	approved := true
	var participation models.Participation
	err := s.db.Where("user_id = ? AND tournament_id = ? AND approved = ?",
		userID, match.TournamentID, true).
		First(&participation).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		approved = false
	}

	if err := s.decide(now, match.StartTimeUTC, approved); err != nil {
		return nil, err
	}

	var bet models.Bet
	err = s.db.Where("user_id = ? AND match_id = ?", userID, matchID).First(&bet).Error
	switch {
	case err == nil:
		bet.Score1 = score1
		bet.Score2 = score2
		if err := s.db.Save(&bet).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		bet = models.Bet{
			UserID:  userID,
			MatchID: matchID,
			Score1:  score1,
			Score2:  score2,
		}
		if err := s.db.Create(&bet).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return &bet, nil
}
