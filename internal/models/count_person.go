package models

import "time"

// CountPerson: someone who physically counts stock. Not a login user.
type CountPerson struct {
	ID        uint   `gorm:"primaryKey"`
	FullName  string `gorm:"size:150;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
