package models

import "time"

type Match struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	TournamentID uint       `gorm:"not null;index" json:"tournament_id"`
	Tournament   Tournament `gorm:"foreignKey:TournamentID" json:"-"`
	Team1ID      uint       `gorm:"column:team_1_id;not null" json:"team_1_id"`
	Team1        Team       `gorm:"foreignKey:Team1ID" json:"-"`
	Team2ID      uint       `gorm:"column:team_2_id;not null" json:"team_2_id"`
	Team2        Team       `gorm:"foreignKey:Team2ID" json:"-"`
	StartTimeUTC time.Time  `gorm:"column:start_time_utc;not null" json:"start_time_utc"`
	Score1       *int       `gorm:"column:score_1" json:"score_1"`
	Score2       *int       `gorm:"column:score_2" json:"score_2"`
	IsFinished   bool       `gorm:"not null;default:false" json:"is_finished"`
	Bets         []Bet      `gorm:"foreignKey:MatchID" json:"bets,omitempty"`
}
