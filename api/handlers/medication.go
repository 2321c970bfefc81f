package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/medcare/medcare-api/config"
	"github.com/medcare/medcare-api/databases"
	"github.com/medcare/medcare-api/models"
)

// TriggerRegistry binds dose trigger lifetime to the course lifecycle:
// creating a course registers its daily triggers, deleting it cancels them
type TriggerRegistry interface {
	RegisterSchedule(schedule models.MedicationSchedule) error
	DeregisterSchedule(scheduleID string)
}

// Medication represents the medication schedule handler
type Medication struct {
	DB       databases.ScheduleDatabase
	Triggers TriggerRegistry
}

type scheduleRequest struct {
	MedicineName string           `json:"medicineName"`
	Quantity     string           `json:"quantity"`
	Frequency    models.Frequency `json:"frequency"`
	Times        []string         `json:"times"`
	IssueDate    string           `json:"issueDate"`
	DueDate      string           `json:"dueDate"`
	Instructions string           `json:"instructions"`
	PhoneNumber  string           `json:"phoneNumber"`
}

func (req scheduleRequest) validate() string {
	if req.MedicineName == "" {
		return "medicineName is required"
	}
	slots := req.Frequency.Slots()
	if slots == 0 {
		return "frequency must be one of once, twice, thrice, four"
	}
	if len(req.Times) != slots {
		return "times must have one entry per daily dose"
	}
	for _, slot := range req.Times {
		if strings.TrimSpace(slot) == "" {
			return "every time slot must be filled"
		}
		if _, err := time.Parse(models.TimeLayout, slot); err != nil {
			return "time slots must use HH:MM format"
		}
	}
	issue, err := time.Parse(models.DateLayout, req.IssueDate)
	if err != nil {
		return "issueDate must use YYYY-MM-DD format"
	}
	due, err := time.Parse(models.DateLayout, req.DueDate)
	if err != nil {
		return "dueDate must use YYYY-MM-DD format"
	}
	if due.Before(issue) {
		return "dueDate must not be before issueDate"
	}
	return ""
}

// CreateScheduleHandler creates a medication course. The expected dose
// count is computed once here and never recomputed; daily dose triggers are
// registered as a side effect.
func (h Medication) CreateScheduleHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	if msg := req.validate(); msg != "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.MessageResponse{Message: msg})
		return
	}

	totalDoses, err := models.CalculateTotalDoses(req.IssueDate, req.DueDate, req.Times)
	if err != nil {
		config.ErrorStatus("failed to compute total doses", http.StatusBadRequest, w, err)
		return
	}

	schedule := &models.MedicationSchedule{
		ID:           uuid.NewString(),
		MedicineName: req.MedicineName,
		Quantity:     req.Quantity,
		Frequency:    req.Frequency,
		Times:        req.Times,
		IssueDate:    req.IssueDate,
		DueDate:      req.DueDate,
		Instructions: req.Instructions,
		PhoneNumber:  req.PhoneNumber,
		Status:       "active",
		TotalDoses:   totalDoses,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}

	if err := h.DB.Insert(r.Context(), schedule); err != nil {
		config.ErrorStatus("failed to insert schedule", http.StatusInternalServerError, w, err)
		return
	}

	if err := h.Triggers.RegisterSchedule(*schedule); err != nil {
		// the course is saved either way, reminders just won't fire
		zap.S().Errorw("failed to register dose triggers", "scheduleId", schedule.ID, "error", err)
	}

	zap.S().Infow("medication schedule created",
		"scheduleId", schedule.ID,
		"medicine", schedule.MedicineName,
		"totalDoses", schedule.TotalDoses,
	)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":  "Medication schedule created successfully",
		"schedule": schedule,
	})
}

// ListSchedulesHandler returns all medication courses in insertion order
func (h Medication) ListSchedulesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	schedules, err := h.DB.List(r.Context())
	if err != nil {
		config.ErrorStatus("failed to list schedules", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(schedules); err != nil {
		config.ErrorStatus("failed to encode schedules", http.StatusInternalServerError, w, err)
	}
}

// MarkDoseTakenHandler records one taken dose. The data layer rejects the
// call once every expected dose is taken.
func (h Medication) MarkDoseTakenHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id := mux.Vars(r)["id"]
	now := time.Now()

	schedule, err := h.DB.MarkDoseTaken(r.Context(), id, now)
	if err != nil {
		switch {
		case errors.Is(err, databases.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(models.MessageResponse{Message: "Medication schedule not found"})
		case errors.Is(err, databases.ErrAtCapacity):
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(models.MessageResponse{Message: "All doses for this course are already taken"})
		default:
			config.ErrorStatus("failed to mark dose taken", http.StatusInternalServerError, w, err)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":  "Dose marked as taken",
		"schedule": schedule,
		"progress": schedule.ProgressPercentage(),
		"overdue":  schedule.IsOverdue(now),
	})
}

// DeleteScheduleHandler removes a course and cancels its pending dose
// triggers. Deleting an unknown id is a no-op.
func (h Medication) DeleteScheduleHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id := mux.Vars(r)["id"]
	if err := h.DB.Delete(r.Context(), id); err != nil {
		config.ErrorStatus("failed to delete schedule", http.StatusInternalServerError, w, err)
		return
	}

	h.Triggers.DeregisterSchedule(id)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.MessageResponse{Message: "Medication schedule deleted successfully"})
}
