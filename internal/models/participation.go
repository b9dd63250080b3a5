package models

import "time"

type Participation struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"not null;uniqueIndex:idx_user_tournament" json:"user_id"`
	User         User       `gorm:"foreignKey:UserID" json:"-"`
	TournamentID uint       `gorm:"not null;uniqueIndex:idx_user_tournament" json:"tournament_id"`
	Tournament   Tournament `gorm:"foreignKey:TournamentID" json:"-"`
	Approved     bool       `gorm:"not null;default:false" json:"approved"`
	CreatedAt    time.Time  `json:"created_at"`
}
