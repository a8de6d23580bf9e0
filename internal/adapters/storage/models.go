package storage

import "time"

// BlockedSiteModel is the GORM model for blocked_sites table
type BlockedSiteModel struct {
	CreatedAt time.Time
	Domain    string `gorm:"primaryKey"`
	Source    string `gorm:"not null;default:'user';check:source IN ('default','import','user')"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (BlockedSiteModel) TableName() string { return "blocked_sites" }
