package models

// Player is one row of the ladder players table. Rows are written by
// the ingestion side every time a match involving the player resolves;
// this service only ever reads them.
type Player struct {
	ProfileID   int64  `gorm:"primaryKey;column:profile_id"`
	ProfileName string `gorm:"column:profile_name;type:varchar(100)"`
	AvatarURL   string `gorm:"column:avatar_url"`

	Wins   int `gorm:"column:wins"`
	Losses int `gorm:"column:losses"`

	// Rating after, and before, the player's most recent match. A
	// player is rank eligible only while rating > 0 and not banned.
	Rating    float64 `gorm:"column:rating;index"`
	PrvRating float64 `gorm:"column:prv_rating"`

	Banned bool `gorm:"column:banned"`
}

// TableName overrides the gorm naming convention.
func (Player) TableName() string {
	return "players"
}
