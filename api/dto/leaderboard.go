package dto

// LeaderboardRow is one ranked player of the ladder listing.
type LeaderboardRow struct {
	Position  int     `json:"position"`
	ProfileID int64   `json:"profileId"`
	Name      string  `json:"name"`
	AvatarURL string  `json:"avatarUrl"`
	Rating    float64 `json:"rating"`
	Diff      float64 `json:"diff"`
	Played    int     `json:"played"`
	Wins      int     `json:"wins"`
	Losses    int     `json:"losses"`
	WinRate   float64 `json:"winRate"`
}

// PeriodWindow describes the reporting window a period-scoped page
// covers.
type PeriodWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

// Leaderboard is the full ladder listing.
type Leaderboard struct {
	Rows   []*LeaderboardRow `json:"rows"`
	Period *PeriodWindow     `json:"period,omitempty"`
}
