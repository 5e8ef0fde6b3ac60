package repositories

import (
	"testing"

	"github.com/darkademic/oraladder/pkg/database/models"
)

func getRankablePlayersExpectedResult(t *testing.T, testName string) []*models.Player {
	t.Helper()

	switch testName {
	case "rankedorder":
		return getRankedOrderPlayers()
	}

	return nil
}

func getRankedOrderPlayers() []*models.Player {
	return []*models.Player{
		{ProfileID: 1, ProfileName: "Napoleon", AvatarURL: "https://forum.example.org/avatars/1.png", Wins: 30, Losses: 10, Rating: 1850, PrvRating: 1820, Banned: false},
		{ProfileID: 2, ProfileName: "Wellington", AvatarURL: "https://forum.example.org/avatars/2.png", Wins: 25, Losses: 15, Rating: 1720, PrvRating: 1750, Banned: false},
		{ProfileID: 3, ProfileName: "Blucher", AvatarURL: "", Wins: 10, Losses: 10, Rating: 1500, PrvRating: 1490, Banned: false},
	}
}

func getPlayerInfoExpectedResult(t *testing.T, testName string) *RawPlayerInfo {
	t.Helper()

	switch testName {
	case "topplayer":
		return getTopPlayerInfo()
	case "secondplayer":
		return getSecondPlayerInfo()
	}

	return nil
}

func getTopPlayerInfo() *RawPlayerInfo {
	return &RawPlayerInfo{
		ProfileID:          1,
		ProfileName:        "Napoleon",
		AvatarURL:          "https://forum.example.org/avatars/1.png",
		Wins:               30,
		Losses:             10,
		Rating:             1850,
		PrvRating:          1820,
		Banned:             false,
		LadderRank:         1,
		AvgDurationSeconds: 450,
	}
}

func getSecondPlayerInfo() *RawPlayerInfo {
	return &RawPlayerInfo{
		ProfileID:          2,
		ProfileName:        "Wellington",
		AvatarURL:          "https://forum.example.org/avatars/2.png",
		Wins:               25,
		Losses:             15,
		Rating:             1720,
		PrvRating:          1750,
		Banned:             false,
		LadderRank:         2,
		AvgDurationSeconds: 600,
	}
}
