package models

import "time"

// Location: a bin within a warehouse. Bin labels are not unique per warehouse
// in the schema; the UI treats them as one-to-one.
type Location struct {
	ID          uint   `gorm:"primaryKey"`
	WhsID       uint   `gorm:"index;not null"`
	BinLocation string `gorm:"size:50;not null"` // bin label, e.g. "A-01-02"
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
