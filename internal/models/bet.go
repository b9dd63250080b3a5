package models

import "time"

// Bet is a user's score prediction for a match. One bet per (user, match);
// re-placing overwrites the scores instead of creating a second row.
type Bet struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_match" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	MatchID   uint      `gorm:"not null;uniqueIndex:idx_user_match" json:"match_id"`
	Match     Match     `gorm:"foreignKey:MatchID" json:"-"`
	Score1    int       `gorm:"column:score_1;not null" json:"score_1"`
	Score2    int       `gorm:"column:score_2;not null" json:"score_2"`
	Points    *float64  `json:"points"`
	UpdatedAt time.Time `json:"updated_at"`
}
