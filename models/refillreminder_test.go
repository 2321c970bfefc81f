package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefillReminderDueAt(t *testing.T) {
	r := RefillReminder{ReminderDate: "2024-05-01", ReminderTime: "14:30"}

	due, err := r.DueAt(time.UTC)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC), due)
}

func TestRefillReminderIsDue(t *testing.T) {
	r := RefillReminder{ReminderDate: "2024-05-01", ReminderTime: "14:30"}

	before := time.Date(2024, 5, 1, 14, 29, 0, 0, time.Local)
	assert.False(t, r.IsDue(before))

	exact := time.Date(2024, 5, 1, 14, 30, 0, 0, time.Local)
	assert.True(t, r.IsDue(exact))

	after := time.Date(2024, 5, 2, 9, 0, 0, 0, time.Local)
	assert.True(t, r.IsDue(after))
}

func TestRefillReminderIsDueBadTime(t *testing.T) {
	r := RefillReminder{ReminderDate: "2024-05-01", ReminderTime: "half past two"}
	assert.False(t, r.IsDue(time.Now()))
}

func TestLookupMedicine(t *testing.T) {
	info := LookupMedicine("Paracetamol")
	assert.Equal(t, "Paracetamol", info.Name)
	assert.Equal(t, "Acetaminophen", info.GenericName)
	assert.Equal(t, "Analgesic/Antipyretic", info.Category)

	// unknown names fall back to the generic shape
	fallback := LookupMedicine("Obscuritol")
	assert.Equal(t, "Obscuritol", fallback.Name)
	assert.Equal(t, "As prescribed by physician", fallback.Dosage)
}
