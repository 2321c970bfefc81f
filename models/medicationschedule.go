package models

import (
	"time"
)

// Frequency is the number of daily intake slots for a medication course
type Frequency string

// Frequencies accepted by the schedule form
const (
	FrequencyOnce   Frequency = "once"
	FrequencyTwice  Frequency = "twice"
	FrequencyThrice Frequency = "thrice"
	FrequencyFour   Frequency = "four"
)

// Slots returns the number of daily time slots for the frequency, 0 when
// the frequency is unknown
func (f Frequency) Slots() int {
	switch f {
	case FrequencyOnce:
		return 1
	case FrequencyTwice:
		return 2
	case FrequencyThrice:
		return 3
	case FrequencyFour:
		return 4
	}
	return 0
}

// DateLayout is the wire format for issue/due/reminder dates
const DateLayout = "2006-01-02"

// TimeLayout is the wire format for clock times
const TimeLayout = "15:04"

// MedicationSchedule holds one medication course: its daily intake times
// bounded by issue/due dates, and the dose accounting for the course
type MedicationSchedule struct {
	ID             string     `json:"id" bson:"_id"`
	MedicineName   string     `json:"medicineName" bson:"medicineName"`
	Quantity       string     `json:"quantity" bson:"quantity"`
	Frequency      Frequency  `json:"frequency" bson:"frequency"`
	Times          []string   `json:"times" bson:"times"`
	IssueDate      string     `json:"issueDate" bson:"issueDate"`
	DueDate        string     `json:"dueDate" bson:"dueDate"`
	Instructions   string     `json:"instructions,omitempty" bson:"instructions,omitempty"`
	PhoneNumber    string     `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	Status         string     `json:"status" bson:"status"`
	CompletedDoses int        `json:"completedDoses" bson:"completedDoses"`
	TotalDoses     int        `json:"totalDoses" bson:"totalDoses"`
	LastTaken      *time.Time `json:"lastTaken,omitempty" bson:"lastTaken,omitempty"`
	CreatedAt      string     `json:"createdAt" bson:"createdAt"`
}

// DaysInclusive counts calendar days from issue through due, both ends
// included. A course issued and due on the same day spans one day.
func DaysInclusive(issueDate, dueDate string) (int, error) {
	issue, err := time.Parse(DateLayout, issueDate)
	if err != nil {
		return 0, err
	}
	due, err := time.Parse(DateLayout, dueDate)
	if err != nil {
		return 0, err
	}
	return int(due.Sub(issue).Hours()/24) + 1, nil
}

// CalculateTotalDoses computes the expected dose count for a course,
// daysInclusive * dailySlots. Computed once at creation and never
// recomputed.
func CalculateTotalDoses(issueDate, dueDate string, times []string) (int, error) {
	days, err := DaysInclusive(issueDate, dueDate)
	if err != nil {
		return 0, err
	}
	return days * len(times), nil
}

// ProgressPercentage reports course completion in [0,100]. A course with
// zero expected doses reports 0 rather than dividing by zero.
func (m MedicationSchedule) ProgressPercentage() float64 {
	if m.TotalDoses == 0 {
		return 0
	}
	pct := float64(m.CompletedDoses) / float64(m.TotalDoses) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// IsOverdue reports whether now is past the course's due date. The
// boundary convention is local end of day: the course stays current
// through 23:59:59 on the due date and is overdue from the following
// local midnight.
func (m MedicationSchedule) IsOverdue(now time.Time) bool {
	due, err := time.ParseInLocation(DateLayout, m.DueDate, now.Location())
	if err != nil {
		return false
	}
	endOfDay := due.AddDate(0, 0, 1)
	return !now.Before(endOfDay)
}
