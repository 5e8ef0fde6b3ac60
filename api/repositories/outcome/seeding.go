package repositories

import (
	"testing"
	"time"

	"github.com/darkademic/oraladder/pkg/database/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedOutcomeTestData(t *testing.T, db *gorm.DB) {
	// Clean up existing data
	db.Exec("DELETE FROM outcomes")
	db.Exec("DELETE FROM players")

	players := []*models.Player{
		{ProfileID: 1, ProfileName: "Napoleon", Wins: 2, Losses: 1, Rating: 1820, PrvRating: 1780, Banned: false},
		{ProfileID: 2, ProfileName: "Wellington", Wins: 1, Losses: 1, Rating: 1715, PrvRating: 1700, Banned: false},
		{ProfileID: 3, ProfileName: "Blucher", Wins: 0, Losses: 2, Rating: 1460, PrvRating: 1480, Banned: false},
		{ProfileID: 4, ProfileName: "Quickmatch", Wins: 1, Losses: 0, Rating: 1940, PrvRating: 1900, Banned: true},
	}

	for _, p := range players {
		err := db.Create(p).Error
		require.NoError(t, err)
	}

	outcomes := []*models.Outcome{
		{
			Hash:       "h1",
			StartTime:  time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
			EndTime:    time.Date(2024, 1, 10, 10, 8, 0, 0, time.UTC),
			Profile0:   1,
			Profile1:   2,
			Rating0:    1800,
			Rating0Prv: 1780,
			Rating1:    1700,
			Rating1Prv: 1715,
			Faction0:   "Allies",
			Faction1:   "Soviet",
			MapTitle:   "Ruins [1v1]",
			Filename:   "h1.orarep",
		},
		{
			Hash:       "h2",
			StartTime:  time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
			EndTime:    time.Date(2024, 1, 10, 12, 5, 0, 0, time.UTC),
			Profile0:   2,
			Profile1:   1,
			Rating0:    1715,
			Rating0Prv: 1700,
			Rating1:    1780,
			Rating1Prv: 1800,
			Faction0:   "Soviet",
			Faction1:   "Soviet",
			MapTitle:   "Ruins [2v2]",
			Filename:   "h2.orarep",
		},
		{
			Hash:       "h3",
			StartTime:  time.Date(2024, 1, 12, 9, 0, 0, 0, time.UTC),
			EndTime:    time.Date(2024, 1, 12, 9, 10, 0, 0, time.UTC),
			Profile0:   1,
			Profile1:   3,
			Rating0:    1820,
			Rating0Prv: 1780,
			Rating1:    1480,
			Rating1Prv: 1500,
			Faction0:   "Allies",
			Faction1:   "England",
			MapTitle:   "Open Field",
			Filename:   "h3.orarep",
		},
		{
			Hash:       "h4",
			StartTime:  time.Date(2024, 1, 13, 18, 0, 0, 0, time.UTC),
			EndTime:    time.Date(2024, 1, 13, 18, 6, 0, 0, time.UTC),
			Profile0:   4,
			Profile1:   3,
			Rating0:    1940,
			Rating0Prv: 1900,
			Rating1:    1460,
			Rating1Prv: 1480,
			Faction0:   "Soviet",
			Faction1:   "England",
			MapTitle:   "Open Field",
			Filename:   "",
		},
	}

	for _, o := range outcomes {
		err := db.Create(o).Error
		require.NoError(t, err)
	}
}
