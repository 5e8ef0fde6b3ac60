package models

import (
	"time"
)

// Outcome is one completed match. Outcomes are immutable once written
// and are the only source of historical rating values: a player's
// rating curve is the projection of their slot's rating across their
// outcomes in end-time order.
type Outcome struct {
	Hash string `gorm:"primaryKey;column:hash"`

	StartTime time.Time `gorm:"column:start_time"`
	EndTime   time.Time `gorm:"column:end_time;index"`

	// The two participants. The slot order carries no significance
	// beyond being positional.
	Profile0 int64 `gorm:"column:profile_id0;index"`
	Profile1 int64 `gorm:"column:profile_id1;index"`

	Rating0    float64 `gorm:"column:rating_0"`
	Rating0Prv float64 `gorm:"column:rating_0_prv"`
	Rating1    float64 `gorm:"column:rating_1"`
	Rating1Prv float64 `gorm:"column:rating_1_prv"`

	Faction0 string `gorm:"column:selected_faction_0"`
	Faction1 string `gorm:"column:selected_faction_1"`

	// May carry a trailing bracketed tag ("Ruins [4v4]") that gets
	// stripped for display.
	MapTitle string `gorm:"column:map_title"`

	// Replay file reference, forwarded as a download link and never
	// opened by this service.
	Filename string `gorm:"column:filename"`
}

// TableName overrides the gorm naming convention.
func (Outcome) TableName() string {
	return "outcomes"
}
