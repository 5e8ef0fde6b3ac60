package dto

// LatestGame is one entry of the global recent-activity feed.
type LatestGame struct {
	// Empty when replay analysis is unavailable for the variant.
	Hash string `json:"hash,omitempty"`

	Date     string `json:"date"`
	Duration string `json:"duration"`
	Map      string `json:"map"`

	P0       string `json:"p0"`
	P1       string `json:"p1"`
	P0ID     int64  `json:"p0Id"`
	P1ID     int64  `json:"p1Id"`
	P0Banned bool   `json:"p0Banned,omitempty"`
	P1Banned bool   `json:"p1Banned,omitempty"`

	Diff0 float64 `json:"diff0"`
	Diff1 float64 `json:"diff1"`
}
