package databases

import (
	"context"
	"sync"
	"time"

	"github.com/medcare/medcare-api/models"
)

// The in-memory stores are the default backend: session-lifetime slices
// guarded by a mutex, preserving insertion order. They implement the same
// interfaces as the Mongo-backed stores so the handlers and scheduler never
// know which one they are talking to.

type memoryUserDatabase struct {
	mu    sync.Mutex
	users []models.User
}

// NewMemoryUserDatabase returns an in-memory UserDatabase
func NewMemoryUserDatabase() UserDatabase {
	return &memoryUserDatabase{}
}

func (m *memoryUserDatabase) Insert(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}
	m.users = append(m.users, *user)
	return nil
}

func (m *memoryUserDatabase) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryUserDatabase) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

type memoryRefillReminderDatabase struct {
	mu        sync.Mutex
	reminders []models.RefillReminder
}

// NewMemoryRefillReminderDatabase returns an in-memory RefillReminderDatabase
func NewMemoryRefillReminderDatabase() RefillReminderDatabase {
	return &memoryRefillReminderDatabase{}
}

func (m *memoryRefillReminderDatabase) Insert(_ context.Context, reminder *models.RefillReminder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reminders = append(m.reminders, *reminder)
	return nil
}

func (m *memoryRefillReminderDatabase) List(_ context.Context) ([]models.RefillReminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.RefillReminder, len(m.reminders))
	copy(out, m.reminders)
	return out, nil
}

func (m *memoryRefillReminderDatabase) ListUnsent(_ context.Context) ([]models.RefillReminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.RefillReminder{}
	for _, r := range m.reminders {
		if !r.Sent {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryRefillReminderDatabase) MarkSent(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.reminders {
		if m.reminders[i].ID == id {
			if m.reminders[i].Sent {
				return false, nil
			}
			m.reminders[i].Sent = true
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryRefillReminderDatabase) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.reminders {
		if m.reminders[i].ID == id {
			m.reminders = append(m.reminders[:i], m.reminders[i+1:]...)
			return nil
		}
	}
	return nil
}

type memoryScheduleDatabase struct {
	mu        sync.Mutex
	schedules []models.MedicationSchedule
}

// NewMemoryScheduleDatabase returns an in-memory ScheduleDatabase
func NewMemoryScheduleDatabase() ScheduleDatabase {
	return &memoryScheduleDatabase{}
}

func (m *memoryScheduleDatabase) Insert(_ context.Context, schedule *models.MedicationSchedule) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schedules = append(m.schedules, *schedule)
	return nil
}

func (m *memoryScheduleDatabase) List(_ context.Context) ([]models.MedicationSchedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.MedicationSchedule, len(m.schedules))
	copy(out, m.schedules)
	return out, nil
}

func (m *memoryScheduleDatabase) FindByID(_ context.Context, id string) (*models.MedicationSchedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.schedules {
		if m.schedules[i].ID == id {
			s := m.schedules[i]
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryScheduleDatabase) MarkDoseTaken(_ context.Context, id string, takenAt time.Time) (*models.MedicationSchedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.schedules {
		if m.schedules[i].ID != id {
			continue
		}
		if m.schedules[i].CompletedDoses >= m.schedules[i].TotalDoses {
			return nil, ErrAtCapacity
		}
		m.schedules[i].CompletedDoses++
		taken := takenAt
		m.schedules[i].LastTaken = &taken
		s := m.schedules[i]
		return &s, nil
	}
	return nil, ErrNotFound
}

func (m *memoryScheduleDatabase) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.schedules {
		if m.schedules[i].ID == id {
			m.schedules = append(m.schedules[:i], m.schedules[i+1:]...)
			return nil
		}
	}
	return nil
}
