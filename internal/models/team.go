package models

type Team struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	NameRu string `gorm:"size:255;not null" json:"name_ru"`
}
