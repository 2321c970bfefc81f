package models

import "time"

// RefillReminder holds one pharmacy refill reminder
type RefillReminder struct {
	ID           string `json:"id" bson:"_id"`
	MedicineName string `json:"medicineName" bson:"medicineName"`
	ReminderDate string `json:"reminderDate" bson:"reminderDate"`
	ReminderTime string `json:"reminderTime" bson:"reminderTime"`
	PhoneNumber  string `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	Notes        string `json:"notes,omitempty" bson:"notes,omitempty"`
	Status       string `json:"status" bson:"status"`
	Sent         bool   `json:"sent" bson:"sent"`
	CreatedAt    string `json:"createdAt" bson:"createdAt"`
}

// DueAt combines the reminder date and clock time in the given location
func (r RefillReminder) DueAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+"T"+TimeLayout, r.ReminderDate+"T"+r.ReminderTime, loc)
}

// IsDue reports whether the reminder has reached its scheduled instant.
// Reminders with unparseable date/time never come due.
func (r RefillReminder) IsDue(now time.Time) bool {
	due, err := r.DueAt(now.Location())
	if err != nil {
		return false
	}
	return !now.Before(due)
}
