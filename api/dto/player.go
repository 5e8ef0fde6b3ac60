package dto

// RatingCurve is a fixed-width resampled rating history. Labels are
// blank placeholders the chart layer may fill in later.
type RatingCurve struct {
	Labels []string `json:"labels"`
	Points []int    `json:"points"`
}

// Histogram is a parallel names/counts/colors structure for the pie
// and bar charts.
type Histogram struct {
	Names  []string `json:"names"`
	Counts []int    `json:"counts"`
	Colors []string `json:"colors"`
	Total  int      `json:"total"`
}

// MapWinLoss is the per-map diverging bar chart: win counts are
// positive, loss counts negative, zero-filled where a map only shows
// up on one side.
type MapWinLoss struct {
	Names  []string `json:"names"`
	Wins   []int    `json:"wins"`
	Losses []int    `json:"losses"`
}

// PlayerGame is one entry of a player's chronological match log.
type PlayerGame struct {
	// Empty when the replay link is suppressed.
	Hash string `json:"hash,omitempty"`

	Date     string `json:"date"`
	Duration string `json:"duration"`
	Map      string `json:"map"`

	Opponent       string `json:"opponent"`
	OpponentID     int64  `json:"opponentId"`
	OpponentBanned bool   `json:"opponentBanned"`

	Outcome string  `json:"outcome"`
	Diff    float64 `json:"diff"`
}

// PlayerProfile is the full player detail page payload.
type PlayerProfile struct {
	ProfileID int64  `json:"profileId"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`

	Rating  float64 `json:"rating"`
	Diff    float64 `json:"diff"`
	Rank    int     `json:"rank"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	Played  int     `json:"played"`
	WinRate float64 `json:"winRate"`

	AvgGameDuration string `json:"avgGameDuration"`

	RatingCurve RatingCurve   `json:"ratingCurve"`
	Factions    Histogram     `json:"factions"`
	Maps        MapWinLoss    `json:"maps"`
	Games       []*PlayerGame `json:"games"`
}
