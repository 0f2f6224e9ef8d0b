package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/questlabs/questlog/internal/constants"
)

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{0, "0%"},
		{48.39, "48%"},
		{49.5, "50%"},
		{66.6, "67%"},
		{100, "100%"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPercent(tt.pct))
		})
	}
}

func TestFormatDaysLeft(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{-5, "overdue by 5 days"},
		{-1, "overdue by 1 day"},
		{0, "due today"},
		{1, "1 day left"},
		{14, "14 days left"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDaysLeft(tt.days))
		})
	}
}

func TestFormatETA(t *testing.T) {
	now := ts(2024, 1, 1)
	tests := []struct {
		name string
		eta  time.Time
		want string
	}{
		{"past", ts(2023, 12, 30), "today"},
		{"same day", now.Add(6 * time.Hour), "today"},
		{"tomorrow", ts(2024, 1, 2), "tomorrow"},
		{"near", ts(2024, 1, 13), "in 12 days"},
		{"edge of phrasing", now.Add(90 * 24 * time.Hour), "in 90 days"},
		{"far", now.Add(120 * 24 * time.Hour), "Apr 30, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatETA(tt.eta, now))
		})
	}
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "3 of 5", FormatCount(3, 5))
	assert.Equal(t, "0 of 0", FormatCount(0, 0))
}

func TestFormatStatus(t *testing.T) {
	assert.Equal(t, "Completed", FormatStatus(constants.ProgressCompleted))
	assert.Equal(t, "In progress", FormatStatus(constants.ProgressInProgress))
	assert.Equal(t, "Not started", FormatStatus(constants.ProgressNotStarted))
	assert.Equal(t, "weird", FormatStatus(constants.ProgressStatus("weird")))
}
