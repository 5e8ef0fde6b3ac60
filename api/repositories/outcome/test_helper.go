package repositories

import (
	"testing"
	"time"
)

func normalizeMatchTimes(rows []RawMatchRow) {
	for i := range rows {
		rows[i].StartTime = rows[i].StartTime.UTC()
		rows[i].EndTime = rows[i].EndTime.UTC()
	}
}

func getMatchRowExpectedResult(t *testing.T, testName string) []RawMatchRow {
	t.Helper()

	switch testName {
	case "playerhistory":
		return getPlayerHistoryRows()
	case "globalfeed":
		return getGlobalFeedRows()
	}

	return nil
}

func getPlayerHistoryRows() []RawMatchRow {
	return []RawMatchRow{
		{
			Hash:      "h3",
			StartTime: time.Date(2024, 1, 12, 9, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2024, 1, 12, 9, 10, 0, 0, time.UTC),
			Profile0:  1,
			Profile1:  3,
			Diff0:     40,
			Diff1:     -20,
			P0Name:    "Napoleon",
			P1Name:    "Blucher",
			MapTitle:  "Open Field",
			Filename:  "h3.orarep",
		},
		{
			Hash:      "h2",
			StartTime: time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2024, 1, 10, 12, 5, 0, 0, time.UTC),
			Profile0:  2,
			Profile1:  1,
			Diff0:     15,
			Diff1:     -20,
			P0Name:    "Wellington",
			P1Name:    "Napoleon",
			MapTitle:  "Ruins [2v2]",
			Filename:  "h2.orarep",
		},
		{
			Hash:      "h1",
			StartTime: time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2024, 1, 10, 10, 8, 0, 0, time.UTC),
			Profile0:  1,
			Profile1:  2,
			Diff0:     20,
			Diff1:     -15,
			P0Name:    "Napoleon",
			P1Name:    "Wellington",
			MapTitle:  "Ruins [1v1]",
			Filename:  "h1.orarep",
		},
	}
}

func getGlobalFeedRows() []RawMatchRow {
	return []RawMatchRow{
		{
			Hash:      "h4",
			StartTime: time.Date(2024, 1, 13, 18, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2024, 1, 13, 18, 6, 0, 0, time.UTC),
			Profile0:  4,
			Profile1:  3,
			Diff0:     40,
			Diff1:     -20,
			P0Name:    "Quickmatch",
			P1Name:    "Blucher",
			P0Banned:  true,
			MapTitle:  "Open Field",
			Filename:  "",
		},
		{
			Hash:      "h3",
			StartTime: time.Date(2024, 1, 12, 9, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2024, 1, 12, 9, 10, 0, 0, time.UTC),
			Profile0:  1,
			Profile1:  3,
			Diff0:     40,
			Diff1:     -20,
			P0Name:    "Napoleon",
			P1Name:    "Blucher",
			MapTitle:  "Open Field",
			Filename:  "h3.orarep",
		},
	}
}
