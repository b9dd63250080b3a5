package models

type Tournament struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	NameRu         string          `gorm:"size:255;not null" json:"name_ru"`
	Matches        []Match         `gorm:"foreignKey:TournamentID" json:"matches,omitempty"`
	Participations []Participation `gorm:"foreignKey:TournamentID" json:"participations,omitempty"`
}
