package models

import "time"

// FreezeData: baseline snapshot row imported per warehouse. Replaced wholesale
// on re-import.
type FreezeData struct {
	ID        uint    `gorm:"primaryKey"`
	WhsID     uint    `gorm:"index;not null"`
	BinID     *uint   `gorm:"index"`
	Sku       string  `gorm:"size:50;index;not null"`
	BatchNo   *string `gorm:"size:50"`
	Qty       float64 `gorm:"not null"`
	Uom       string  `gorm:"size:30"`
	UnitPrice float64
	CreatedAt time.Time
}
