package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrequencySlots(t *testing.T) {
	assert.Equal(t, 1, FrequencyOnce.Slots())
	assert.Equal(t, 2, FrequencyTwice.Slots())
	assert.Equal(t, 3, FrequencyThrice.Slots())
	assert.Equal(t, 4, FrequencyFour.Slots())
	assert.Equal(t, 0, Frequency("hourly").Slots())
}

func TestCalculateTotalDoses(t *testing.T) {
	tests := []struct {
		name      string
		issueDate string
		dueDate   string
		times     []string
		expected  int
	}{
		{
			name:      "single day single slot",
			issueDate: "2024-01-01",
			dueDate:   "2024-01-01",
			times:     []string{"08:00"},
			expected:  1,
		},
		{
			name:      "three days two slots",
			issueDate: "2024-01-01",
			dueDate:   "2024-01-03",
			times:     []string{"08:00", "20:00"},
			expected:  6,
		},
		{
			name:      "week of four slots",
			issueDate: "2024-03-01",
			dueDate:   "2024-03-07",
			times:     []string{"06:00", "12:00", "18:00", "22:00"},
			expected:  28,
		},
		{
			name:      "spans a month boundary",
			issueDate: "2024-01-31",
			dueDate:   "2024-02-02",
			times:     []string{"09:00"},
			expected:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := CalculateTotalDoses(tt.issueDate, tt.dueDate, tt.times)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, total)
		})
	}
}

func TestCalculateTotalDosesBadDates(t *testing.T) {
	_, err := CalculateTotalDoses("not-a-date", "2024-01-01", []string{"08:00"})
	assert.Error(t, err)

	_, err = CalculateTotalDoses("2024-01-01", "01/02/2024", []string{"08:00"})
	assert.Error(t, err)
}

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		expected  float64
	}{
		{name: "fresh course", completed: 0, total: 6, expected: 0},
		{name: "halfway", completed: 3, total: 6, expected: 50},
		{name: "complete", completed: 6, total: 6, expected: 100},
		{name: "over-counted caps at 100", completed: 9, total: 6, expected: 100},
		{name: "zero total doses reports zero", completed: 0, total: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MedicationSchedule{CompletedDoses: tt.completed, TotalDoses: tt.total}
			pct := m.ProgressPercentage()
			assert.Equal(t, tt.expected, pct)
			assert.GreaterOrEqual(t, pct, float64(0))
			assert.LessOrEqual(t, pct, float64(100))
		})
	}
}

func TestIsOverdueEndOfDayBoundary(t *testing.T) {
	m := MedicationSchedule{DueDate: "2024-06-10"}

	lastSecond := time.Date(2024, 6, 10, 23, 59, 59, 0, time.Local)
	assert.False(t, m.IsOverdue(lastSecond))

	midnight := time.Date(2024, 6, 11, 0, 0, 0, 0, time.Local)
	assert.True(t, m.IsOverdue(midnight))

	dayBefore := time.Date(2024, 6, 9, 12, 0, 0, 0, time.Local)
	assert.False(t, m.IsOverdue(dayBefore))
}

func TestIsOverdueUnparseableDueDate(t *testing.T) {
	m := MedicationSchedule{DueDate: "soon"}
	assert.False(t, m.IsOverdue(time.Now()))
}
