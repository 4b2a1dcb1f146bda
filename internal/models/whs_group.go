package models

import "time"

type WhsGroup struct {
	ID        uint   `gorm:"primaryKey"`
	WhsName   string `gorm:"size:50;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Locations []Location `gorm:"foreignKey:WhsID"`
}
