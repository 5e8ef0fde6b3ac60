package display

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCleanMapTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{name: "trailing tag", title: "Ruins [4v4]", expected: "Ruins"},
		{name: "no tag", title: "Open Field", expected: "Open Field"},
		{name: "brackets inside the name", title: "King [of] the Hill", expected: "King [of] the Hill"},
		{name: "tag without space", title: "Desolation[1v1]", expected: "Desolation"},
		{name: "empty title", title: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanMapTitle(tt.title))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	start := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "08:25", FormatDuration(start, start.Add(8*time.Minute+25*time.Second)))
	assert.Equal(t, "00:00", FormatDuration(start, start))
	assert.Equal(t, "75:03", FormatDuration(start, start.Add(75*time.Minute+3*time.Second)))
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "01:30", FormatSeconds(90))
	assert.Equal(t, "00:00", FormatSeconds(-5))
	assert.Equal(t, "00:59", FormatSeconds(59.9))
}
