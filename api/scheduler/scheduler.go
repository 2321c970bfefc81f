package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/medcare/medcare-api/databases"
	"github.com/medcare/medcare-api/models"
)

// Scheduler handles the periodic background jobs: the hourly refill sweep
// and the daily per-course dose triggers
type Scheduler struct {
	cron       *cron.Cron
	ReminderDB databases.RefillReminderDatabase
	ScheduleDB databases.ScheduleDatabase
	Notifier   Notifier

	mu      sync.Mutex
	entries map[string][]cron.EntryID
}

// NewScheduler creates a new scheduler instance
func NewScheduler(reminderDB databases.RefillReminderDatabase, scheduleDB databases.ScheduleDatabase, notifier Notifier) *Scheduler {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Scheduler{
		cron:       cron.New(cron.WithLocation(time.Local)),
		ReminderDB: reminderDB,
		ScheduleDB: scheduleDB,
		Notifier:   notifier,
		entries:    make(map[string][]cron.EntryID),
	}
}

// Start begins the scheduler with all registered jobs. Dose triggers for
// courses already in the store are re-registered so a restart against a
// persistent backend resumes reminders.
func (s *Scheduler) Start() {
	// Check for due refill reminders every hour, on the hour
	_, err := s.cron.AddFunc("0 * * * *", s.sweepRefills)
	if err != nil {
		zap.S().Errorw("failed to register refill sweep job", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	schedules, err := s.ScheduleDB.List(ctx)
	if err != nil {
		zap.S().Errorw("failed to list schedules at startup", "error", err)
	}
	for _, schedule := range schedules {
		if err := s.RegisterSchedule(schedule); err != nil {
			zap.S().Errorw("failed to register dose triggers", "scheduleId", schedule.ID, "error", err)
		}
	}

	s.cron.Start()
	zap.S().Infow("reminder scheduler started", "schedules", len(schedules))
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("reminder scheduler stopped")
}

// RegisterSchedule adds one daily cron trigger per filled time slot of the
// course. Empty slots are skipped. The entry ids are recorded so deleting
// the course cancels its pending triggers.
func (s *Scheduler) RegisterSchedule(schedule models.MedicationSchedule) error {
	var ids []cron.EntryID
	for _, slot := range schedule.Times {
		if strings.TrimSpace(slot) == "" {
			continue
		}
		at, err := time.Parse(models.TimeLayout, slot)
		if err != nil {
			s.remove(ids)
			return fmt.Errorf("invalid time slot %q: %w", slot, err)
		}

		scheduleID := schedule.ID
		id, err := s.cron.AddFunc(fmt.Sprintf("%d %d * * *", at.Minute(), at.Hour()), func() {
			s.fireDoseReminder(scheduleID)
		})
		if err != nil {
			s.remove(ids)
			return err
		}
		ids = append(ids, id)
	}

	s.mu.Lock()
	s.entries[schedule.ID] = append(s.entries[schedule.ID], ids...)
	s.mu.Unlock()

	zap.S().Infow("registered dose triggers",
		"scheduleId", schedule.ID,
		"medicine", schedule.MedicineName,
		"triggers", len(ids),
	)
	return nil
}

// DeregisterSchedule cancels the pending dose triggers for a course. Safe to
// call for unknown ids.
func (s *Scheduler) DeregisterSchedule(scheduleID string) {
	s.mu.Lock()
	ids := s.entries[scheduleID]
	delete(s.entries, scheduleID)
	s.mu.Unlock()

	s.remove(ids)
	if len(ids) > 0 {
		zap.S().Infow("deregistered dose triggers", "scheduleId", scheduleID, "triggers", len(ids))
	}
}

func (s *Scheduler) remove(ids []cron.EntryID) {
	for _, id := range ids {
		s.cron.Remove(id)
	}
}

// triggerCount reports how many cron entries a course currently owns
func (s *Scheduler) triggerCount(scheduleID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries[scheduleID])
}

// fireDoseReminder delivers the take-your-medicine notification for one
// course. The course is re-read at fire time so a deleted course never
// notifies even if a trigger slipped through deregistration.
func (s *Scheduler) fireDoseReminder(scheduleID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	schedule, err := s.ScheduleDB.FindByID(ctx, scheduleID)
	if err != nil {
		zap.S().Debugw("skipping dose reminder for missing schedule", "scheduleId", scheduleID)
		return
	}

	message := fmt.Sprintf("MedCare Reminder: Time to take your %s (%s).", schedule.MedicineName, schedule.Quantity)
	if schedule.Instructions != "" {
		message += " " + schedule.Instructions
	}

	err = s.Notifier.Notify(ctx, Notification{
		Kind:         "dose",
		MedicineName: schedule.MedicineName,
		Recipient:    schedule.PhoneNumber,
		Message:      message,
	})
	if err != nil {
		zap.S().Errorw("failed to send dose reminder", "scheduleId", scheduleID, "error", err)
	}
}

// sweepRefills scans all unsent refill reminders and notifies the due ones.
// The sent flag is flipped with a check-and-set so each reminder fires at
// most once, even across overlapping sweeps. A reminder can fire up to one
// sweep interval late; that is accepted.
func (s *Scheduler) sweepRefills() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	reminders, err := s.ReminderDB.ListUnsent(ctx)
	if err != nil {
		zap.S().Errorw("failed to list unsent refill reminders", "error", err)
		return
	}

	now := time.Now()
	sent := 0
	for _, reminder := range reminders {
		if !reminder.IsDue(now) {
			continue
		}

		marked, err := s.ReminderDB.MarkSent(ctx, reminder.ID)
		if err != nil {
			zap.S().Errorw("failed to mark refill reminder sent", "reminderId", reminder.ID, "error", err)
			continue
		}
		if !marked {
			continue
		}

		message := fmt.Sprintf("MedCare: Time to refill %s!", reminder.MedicineName)
		if reminder.Notes != "" {
			message += " " + reminder.Notes
		}
		err = s.Notifier.Notify(ctx, Notification{
			Kind:         "refill",
			MedicineName: reminder.MedicineName,
			Recipient:    reminder.PhoneNumber,
			Message:      message,
		})
		if err != nil {
			zap.S().Errorw("failed to send refill reminder", "reminderId", reminder.ID, "error", err)
		}
		sent++
	}

	if sent > 0 {
		zap.S().Infow("refill sweep complete", "checked", len(reminders), "sent", sent)
	}
}
