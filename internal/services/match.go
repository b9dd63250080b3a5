package services

import (
	"errors"
	"time"

	"github.com/Vareni4/daggybot/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrTeamNotFound       = errors.New("team not found")
)

type MatchService struct {
	db *gorm.DB
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{db: db}
}

func (s *MatchService) CreateMatch(tournamentID, team1ID, team2ID uint, start time.Time) (*models.Match, error) {
	var tournament models.Tournament
	if err := s.db.First(&tournament, tournamentID).Error; err != nil {
		return nil, ErrTournamentNotFound
	}
	for _, teamID := range []uint{team1ID, team2ID} {
		var team models.Team
		if err := s.db.First(&team, teamID).Error; err != nil {
			return nil, ErrTeamNotFound
		}
	}

	match := models.Match{
		TournamentID: tournament.ID,
		Team1ID:      team1ID,
		Team2ID:      team2ID,
		StartTimeUTC: start.UTC(),
	}
	if err := s.db.Create(&match).Error; err != nil {
		return nil, err
	}
	return &match, nil
}

type BetView struct {
	Score1 int      `json:"score_1"`
	Score2 int      `json:"score_2"`
	Points *float64 `json:"points"`
}

type MatchView struct {
	ID             uint      `json:"id"`
	TournamentName string    `json:"tournament_name"`
	Team1Name      string    `json:"team_1_name"`
	Team2Name      string    `json:"team_2_name"`
	Date           time.Time `json:"date"`
	Score1         *int      `json:"score_1"`
	Score2         *int      `json:"score_2"`
	Bet            *BetView  `json:"bet,omitempty"`
}

// GetMatches lists every match with tournament and team names resolved.
func (s *MatchService) GetMatches() ([]MatchView, error) {
	var matches []models.Match
	err := s.db.Preload("Tournament").Preload("Team1").Preload("Team2").
		Order("start_time_utc").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}

	views := make([]MatchView, 0, len(matches))
	for _, m := range matches {
		views = append(views, matchView(m, nil))
	}
	return views, nil
}

// GetUserMatches lists matches in tournaments where the user has an
// approved participation, with the user's own bet attached when present.
func (s *MatchService) GetUserMatches(userID uint) ([]MatchView, error) {
	var participations []models.Participation
	err := s.db.Where("user_id = ? AND approved = ?", userID, true).
		Find(&participations).Error
	if err != nil {
		return nil, err
	}
	if len(participations) == 0 {
		return []MatchView{}, nil
	}

	tournamentIDs := make([]uint, 0, len(participations))
	for _, p := range participations {
		tournamentIDs = append(tournamentIDs, p.TournamentID)
	}

	var matches []models.Match
	err = s.db.Preload("Tournament").Preload("Team1").Preload("Team2").
		Where("tournament_id IN ?", tournamentIDs).
		Order("start_time_utc").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}

	var bets []models.Bet
	if err := s.db.Where("user_id = ?", userID).Find(&bets).Error; err != nil {
		return nil, err
	}
	betsByMatch := make(map[uint]*models.Bet, len(bets))
	for i := range bets {
		betsByMatch[bets[i].MatchID] = &bets[i]
	}

	views := make([]MatchView, 0, len(matches))
	for _, m := range matches {
		views = append(views, matchView(m, betsByMatch[m.ID]))
	}
	return views, nil
}

func matchView(m models.Match, bet *models.Bet) MatchView {
	view := MatchView{
		ID:             m.ID,
		TournamentName: m.Tournament.NameRu,
		Team1Name:      m.Team1.NameRu,
		Team2Name:      m.Team2.NameRu,
		Date:           m.StartTimeUTC,
		Score1:         m.Score1,
		Score2:         m.Score2,
	}
	if bet != nil {
		view.Bet = &BetView{Score1: bet.Score1, Score2: bet.Score2, Points: bet.Points}
	}
	return view
}
