package dto

// ActivityTimeline is the gap-filled matches-per-day series from the
// first recorded day through today. Days without matches count as
// zero and weigh into the mean.
type ActivityTimeline struct {
	Dates      []string `json:"dates"`
	Counts     []int    `json:"counts"`
	MeanPerDay float64  `json:"meanPerDay"`
}

// GlobalStats is the server-wide statistics page payload.
type GlobalStats struct {
	NbGames         int    `json:"nbGames"`
	NbPlayers       int    `json:"nbPlayers"`
	AvgGameDuration string `json:"avgGameDuration"`

	Factions Histogram        `json:"factions"`
	Maps     Histogram        `json:"maps"`
	Activity ActivityTimeline `json:"activity"`
}
