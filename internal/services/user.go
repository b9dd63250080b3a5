package services

import (
	"github.com/Vareni4/daggybot/internal/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetOrCreate looks a user up by Telegram ID and creates the record on
// first contact. The unique index on tg_id keeps concurrent first-time
// registrations from producing duplicates.
func (s *UserService) GetOrCreate(tgID int64, name string) (*models.User, error) {
	var user models.User
	err := s.db.Where(models.User{TgID: tgID}).
		Attrs(models.User{Name: name}).
		FirstOrCreate(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetByTgID(tgID int64) (*models.User, error) {
	var user models.User
	if err := s.db.Where("tg_id = ?", tgID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
