package models

import "time"

// Counting: one recorded count. A second count for the same (whs, sku, batch)
// is a conflict, not a new version.
type Counting struct {
	ID            uint    `gorm:"primaryKey"`
	WhsID         uint    `gorm:"uniqueIndex:idx_whs_sku_batch;not null"`
	BinID         *uint   `gorm:"index"`
	Sku           string  `gorm:"size:50;uniqueIndex:idx_whs_sku_batch;not null"`
	BatchNo       *string `gorm:"size:50;uniqueIndex:idx_whs_sku_batch"`
	Qty           float64 `gorm:"not null"`
	CountPersonID uint    `gorm:"index;not null"`
	ScanPersonID  uint    `gorm:"index;not null"`
	CreatedAt     time.Time
	UpdatedAt     *time.Time `gorm:"autoUpdateTime:false"`
	UpdatedBy     *uint
}
