package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/medcare/medcare-api/config"
	"github.com/medcare/medcare-api/databases"
	"github.com/medcare/medcare-api/models"
)

// Refill represents the refill reminder handler
type Refill struct {
	DB databases.RefillReminderDatabase
}

type refillRequest struct {
	MedicineName string `json:"medicineName"`
	ReminderDate string `json:"reminderDate"`
	ReminderTime string `json:"reminderTime"`
	PhoneNumber  string `json:"phoneNumber"`
	Notes        string `json:"notes"`
}

// CreateRefillReminderHandler schedules a new refill reminder. The hourly
// sweep picks it up once its date and time arrive.
func (h Refill) CreateRefillReminderHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req refillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	if req.MedicineName == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.MessageResponse{Message: "medicineName is required"})
		return
	}
	if _, err := time.Parse(models.DateLayout, req.ReminderDate); err != nil {
		config.ErrorStatus("invalid reminderDate", http.StatusBadRequest, w, err)
		return
	}
	if _, err := time.Parse(models.TimeLayout, req.ReminderTime); err != nil {
		config.ErrorStatus("invalid reminderTime", http.StatusBadRequest, w, err)
		return
	}

	reminder := &models.RefillReminder{
		ID:           uuid.NewString(),
		MedicineName: req.MedicineName,
		ReminderDate: req.ReminderDate,
		ReminderTime: req.ReminderTime,
		PhoneNumber:  req.PhoneNumber,
		Notes:        req.Notes,
		Status:       "active",
		Sent:         false,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}

	if err := h.DB.Insert(r.Context(), reminder); err != nil {
		config.ErrorStatus("failed to insert refill reminder", http.StatusInternalServerError, w, err)
		return
	}

	zap.S().Infow("refill reminder scheduled",
		"reminderId", reminder.ID,
		"medicine", reminder.MedicineName,
		"due", reminder.ReminderDate+" "+reminder.ReminderTime,
	)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":  "Refill reminder scheduled successfully",
		"reminder": reminder,
	})
}

// ListRefillRemindersHandler returns all refill reminders in insertion order
func (h Refill) ListRefillRemindersHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	reminders, err := h.DB.List(r.Context())
	if err != nil {
		config.ErrorStatus("failed to list refill reminders", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(reminders); err != nil {
		config.ErrorStatus("failed to encode refill reminders", http.StatusInternalServerError, w, err)
	}
}

// DeleteRefillReminderHandler removes a reminder. Deleting an unknown id is
// a no-op.
func (h Refill) DeleteRefillReminderHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id := mux.Vars(r)["id"]
	if err := h.DB.Delete(r.Context(), id); err != nil {
		config.ErrorStatus("failed to delete refill reminder", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.MessageResponse{Message: "Refill reminder deleted successfully"})
}
