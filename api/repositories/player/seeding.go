package repositories

import (
	"testing"
	"time"

	"github.com/darkademic/oraladder/pkg/database/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedLadderTestData(t *testing.T, db *gorm.DB) {
	// Clean up existing data
	db.Exec("DELETE FROM outcomes")
	db.Exec("DELETE FROM players")

	players := []*models.Player{
		{ProfileID: 1, ProfileName: "Napoleon", AvatarURL: "https://forum.example.org/avatars/1.png", Wins: 30, Losses: 10, Rating: 1850, PrvRating: 1820, Banned: false},
		{ProfileID: 2, ProfileName: "Wellington", AvatarURL: "https://forum.example.org/avatars/2.png", Wins: 25, Losses: 15, Rating: 1720, PrvRating: 1750, Banned: false},
		{ProfileID: 3, ProfileName: "Blucher", AvatarURL: "", Wins: 10, Losses: 10, Rating: 1500, PrvRating: 1490, Banned: false},
		{ProfileID: 4, ProfileName: "Quickmatch", AvatarURL: "", Wins: 18, Losses: 2, Rating: 1940, PrvRating: 1900, Banned: true},
		{ProfileID: 5, ProfileName: "Rookie", AvatarURL: "", Wins: 0, Losses: 0, Rating: 0, PrvRating: 0, Banned: false},
	}

	for _, p := range players {
		err := db.Create(p).Error
		require.NoError(t, err)
	}

	outcomes := []*models.Outcome{
		{
			Hash:       "aaaa1111",
			StartTime:  time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			EndTime:    time.Date(2024, 1, 15, 10, 10, 0, 0, time.UTC),
			Profile0:   1,
			Profile1:   2,
			Rating0:    1850,
			Rating0Prv: 1820,
			Rating1:    1720,
			Rating1Prv: 1750,
			Faction0:   "Allies",
			Faction1:   "Soviet",
			MapTitle:   "Ruins [1v1]",
			Filename:   "aaaa1111.orarep",
		},
		{
			Hash:       "bbbb2222",
			StartTime:  time.Date(2024, 1, 16, 11, 0, 0, 0, time.UTC),
			EndTime:    time.Date(2024, 1, 16, 11, 5, 0, 0, time.UTC),
			Profile0:   1,
			Profile1:   3,
			Rating0:    1820,
			Rating0Prv: 1800,
			Rating1:    1500,
			Rating1Prv: 1510,
			Faction0:   "Soviet",
			Faction1:   "Allies",
			MapTitle:   "Open Field",
			Filename:   "bbbb2222.orarep",
		},
	}

	for _, o := range outcomes {
		err := db.Create(o).Error
		require.NoError(t, err)
	}
}
