package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medcare/medcare-api/api/scheduler"
	"github.com/medcare/medcare-api/config"
	"github.com/medcare/medcare-api/databases"
	"github.com/medcare/medcare-api/models"
)

// newTestApp wires an App against the in-memory stores, without starting
// the cron loop
func newTestApp(t *testing.T) *App {
	t.Helper()
	a := &App{
		Config:     config.Config{},
		UserDB:     databases.NewMemoryUserDatabase(),
		ReminderDB: databases.NewMemoryRefillReminderDatabase(),
		ScheduleDB: databases.NewMemoryScheduleDatabase(),
		Hub:        NewNotificationHub(),
	}
	a.Scheduler = scheduler.NewScheduler(a.ReminderDB, a.ScheduleDB, scheduler.LogNotifier{})
	a.Router = a.New()
	return a
}

func TestHealthCheckRoute(t *testing.T) {
	a := newTestApp(t)

	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"message":"MedCare API is running!"}`, rr.Body.String())
}

func TestUnmatchedRouteReturns404(t *testing.T) {
	a := newTestApp(t)

	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/no-such-thing", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, `{"message":"Route not found"}`, rr.Body.String())
}

func TestRegisterLoginFlow(t *testing.T) {
	a := newTestApp(t)

	register := `{"email":"jane@example.com","password":"hunter22","firstName":"Jane","lastName":"Doe","phone":"+15550100"}`
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, httptest.NewRequest("POST", "/api/auth/register", bytes.NewBufferString(register)))
	assert.Equal(t, http.StatusCreated, rr.Code)

	// registering the same email again fails and leaves the original alone
	rr = httptest.NewRecorder()
	a.Router.ServeHTTP(rr, httptest.NewRequest("POST", "/api/auth/register", bytes.NewBufferString(register)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "User already exists")

	login := `{"email":"jane@example.com","password":"hunter22"}`
	rr = httptest.NewRecorder()
	a.Router.ServeHTTP(rr, httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(login)))
	assert.Equal(t, http.StatusOK, rr.Code)

	badLogin := `{"email":"jane@example.com","password":"wrong"}`
	rr = httptest.NewRecorder()
	a.Router.ServeHTTP(rr, httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(badLogin)))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMedicationScheduleLifecycle(t *testing.T) {
	a := newTestApp(t)

	create := `{"medicineName":"Amoxicillin","quantity":"1 capsule","frequency":"twice","times":["08:00","20:00"],"issueDate":"2024-01-01","dueDate":"2024-01-03"}`
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, httptest.NewRequest("POST", "/api/schedule-medication", bytes.NewBufferString(create)))
	assert.Equal(t, http.StatusOK, rr.Code)

	var createResp struct {
		Schedule models.MedicationSchedule `json:"schedule"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &createResp))
	assert.Equal(t, 6, createResp.Schedule.TotalDoses)
	id := createResp.Schedule.ID

	rr = httptest.NewRecorder()
	a.Router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/medication-schedules", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	var schedules []models.MedicationSchedule
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &schedules))
	assert.Len(t, schedules, 1)

	// take every dose, then one more
	for i := 0; i < 6; i++ {
		rr = httptest.NewRecorder()
		a.Router.ServeHTTP(rr, httptest.NewRequest("PUT", "/api/medication-schedules/"+id+"/dose", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	}
	rr = httptest.NewRecorder()
	a.Router.ServeHTTP(rr, httptest.NewRequest("PUT", "/api/medication-schedules/"+id+"/dose", nil))
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = httptest.NewRecorder()
	a.Router.ServeHTTP(rr, httptest.NewRequest("DELETE", "/api/medication-schedules/"+id, nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	a.Router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/medication-schedules", nil))
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &schedules))
	assert.Empty(t, schedules)
}

func TestRefillReminderLifecycle(t *testing.T) {
	a := newTestApp(t)

	create := `{"medicineName":"Metformin","reminderDate":"2024-06-01","reminderTime":"09:00","notes":"90 day supply"}`
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, httptest.NewRequest("POST", "/api/schedule-refill", bytes.NewBufferString(create)))
	assert.Equal(t, http.StatusOK, rr.Code)

	var createResp struct {
		Reminder models.RefillReminder `json:"reminder"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &createResp))
	assert.False(t, createResp.Reminder.Sent)

	rr = httptest.NewRecorder()
	a.Router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/refill-reminders", nil))
	var reminders []models.RefillReminder
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &reminders))
	assert.Len(t, reminders, 1)

	rr = httptest.NewRecorder()
	a.Router.ServeHTTP(rr, httptest.NewRequest("DELETE", "/api/refill-reminders/"+createResp.Reminder.ID, nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	a.Router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/refill-reminders", nil))
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &reminders))
	assert.Empty(t, reminders)
}

func TestMedicineInfoRoute(t *testing.T) {
	a := newTestApp(t)

	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/medicine/ibuprofen", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	var info models.MedicineInfo
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))
	assert.Equal(t, "Ibuprofen", info.Name)
}
