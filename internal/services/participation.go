package services

import (
	"errors"

	"github.com/Vareni4/daggybot/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAlreadyParticipating  = errors.New("already participating in this tournament")
	ErrParticipationNotFound = errors.New("participation not found")
)

type ParticipationService struct {
	db *gorm.DB
}

func NewParticipationService(db *gorm.DB) *ParticipationService {
	return &ParticipationService{db: db}
}

// Participate records a join request. It starts unapproved; an admin must
// approve it before the user can bet in the tournament.
func (s *ParticipationService) Participate(userID, tournamentID uint) (*models.Participation, error) {
	var tournament models.Tournament
	if err := s.db.First(&tournament, tournamentID).Error; err != nil {
		return nil, ErrTournamentNotFound
	}

	var existing models.Participation
	err := s.db.Where("user_id = ? AND tournament_id = ?", userID, tournamentID).
		First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyParticipating
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	participation := models.Participation{
		UserID:       userID,
		TournamentID: tournamentID,
		Approved:     false,
	}
	if err := s.db.Create(&participation).Error; err != nil {
		return nil, err
	}
	return &participation, nil
}

type PendingParticipation struct {
	ID             uint   `json:"id"`
	UserName       string `json:"user_name"`
	TournamentName string `json:"tournament_name"`
}

func (s *ParticipationService) GetPending() ([]PendingParticipation, error) {
	var participations []models.Participation
	err := s.db.Preload("User").Preload("Tournament").
		Where("approved = ?", false).
		Find(&participations).Error
	if err != nil {
		return nil, err
	}

	pending := make([]PendingParticipation, 0, len(participations))
	for _, p := range participations {
		pending = append(pending, PendingParticipation{
			ID:             p.ID,
			UserName:       p.User.Name,
			TournamentName: p.Tournament.NameRu,
		})
	}
	return pending, nil
}

func (s *ParticipationService) Approve(id uint) (*models.Participation, error) {
	var participation models.Participation
	if err := s.db.First(&participation, id).Error; err != nil {
		return nil, ErrParticipationNotFound
	}

	participation.Approved = true
	if err := s.db.Save(&participation).Error; err != nil {
		return nil, err
	}
	return &participation, nil
}
