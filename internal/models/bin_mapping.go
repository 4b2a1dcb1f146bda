package models

import "time"

// BinMapping: which SKU+batch sits in which bin, recorded by the scanning user.
type BinMapping struct {
	ID        uint   `gorm:"primaryKey"`
	BinID     uint   `gorm:"uniqueIndex:idx_bin_sku_batch;not null"`
	Sku       string `gorm:"size:50;uniqueIndex:idx_bin_sku_batch;not null"`
	BatchNo   string `gorm:"size:50;uniqueIndex:idx_bin_sku_batch;not null"`
	UserID    uint   `gorm:"index;not null"`
	CreatedAt time.Time
}
