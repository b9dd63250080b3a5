package models

import "time"

// User is the persisted record for a Telegram identity. TgID is the
// platform-assigned identifier; ID is internal and used for all foreign keys.
type User struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	TgID           int64           `gorm:"column:tg_id;not null;uniqueIndex" json:"tg_id"`
	Name           string          `gorm:"size:255;not null" json:"name"`
	Bets           []Bet           `gorm:"foreignKey:UserID" json:"bets,omitempty"`
	Participations []Participation `gorm:"foreignKey:UserID" json:"participations,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
