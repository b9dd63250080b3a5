package services

import (
	"github.com/Vareni4/daggybot/internal/models"

	"gorm.io/gorm"
)

type TournamentService struct {
	db *gorm.DB
}

func NewTournamentService(db *gorm.DB) *TournamentService {
	return &TournamentService{db: db}
}

func (s *TournamentService) CreateTournament(name string) (*models.Tournament, error) {
	tournament := models.Tournament{NameRu: name}
	if err := s.db.Create(&tournament).Error; err != nil {
		return nil, err
	}
	return &tournament, nil
}

func (s *TournamentService) GetTournaments() ([]models.Tournament, error) {
	var tournaments []models.Tournament
	if err := s.db.Find(&tournaments).Error; err != nil {
		return nil, err
	}
	return tournaments, nil
}

// GetAvailableTournaments lists tournaments the user has not yet requested
// to join, approved or not.
func (s *TournamentService) GetAvailableTournaments(userID uint) ([]models.Tournament, error) {
	requested := s.db.Model(&models.Participation{}).
		Select("tournament_id").
		Where("user_id = ?", userID)

	var tournaments []models.Tournament
	if err := s.db.Where("id NOT IN (?)", requested).Find(&tournaments).Error; err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (s *TournamentService) CreateTeam(name string) (*models.Team, error) {
	team := models.Team{NameRu: name}
	if err := s.db.Create(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *TournamentService) GetTeams() ([]models.Team, error) {
	var teams []models.Team
	if err := s.db.Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}
