package scheduler

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	templates "github.com/medcare/medcare-api/templates/html"
)

// Notification is one reminder message on its way to a user
type Notification struct {
	Kind         string `json:"kind"` // "refill" or "dose"
	MedicineName string `json:"medicineName"`
	Recipient    string `json:"recipient,omitempty"`
	Message      string `json:"message"`
}

// Notifier delivers reminder notifications. Delivery is fire-and-forget:
// callers log failures and never retry.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// LogNotifier is the default delivery channel, a log line standing in for
// the SMS integration that is not wired up
type LogNotifier struct{}

// Notify logs the reminder
func (LogNotifier) Notify(_ context.Context, n Notification) error {
	zap.S().Infow("reminder notification",
		"kind", n.Kind,
		"medicine", n.MedicineName,
		"message", n.Message,
	)
	return nil
}

// EmailNotifier delivers reminders by email through sendgrid. Only active
// when an API key is configured.
type EmailNotifier struct {
	APIKey    string
	FromEmail string
}

// Notify sends the reminder as a single email to the recipient
func (e EmailNotifier) Notify(_ context.Context, n Notification) error {
	if n.Recipient == "" {
		return fmt.Errorf("no recipient for %s reminder", n.Kind)
	}
	from := mail.NewEmail("MedCare", e.FromEmail)
	to := mail.NewEmail("", n.Recipient)
	subject := fmt.Sprintf("MedCare reminder: %s", n.MedicineName)
	htmlContent := templates.RenderReminderEmail(subject, n.Message)
	message := mail.NewSingleEmail(from, subject, to, n.Message, htmlContent)
	client := sendgrid.NewSendClient(e.APIKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}
	return nil
}

// Broadcaster pushes a notification to connected browser clients. Implemented
// by the websocket notification hub.
type Broadcaster interface {
	Broadcast(n interface{})
}

// HubNotifier delivers reminders in-app over the websocket hub
type HubNotifier struct {
	Hub Broadcaster
}

// Notify broadcasts the reminder to every connected client
func (h HubNotifier) Notify(_ context.Context, n Notification) error {
	h.Hub.Broadcast(n)
	return nil
}

// MultiNotifier fans one notification out to several channels. A failing
// channel is logged and never blocks the others.
type MultiNotifier []Notifier

// Notify delivers to each channel in turn
func (m MultiNotifier) Notify(ctx context.Context, n Notification) error {
	for _, notifier := range m {
		if err := notifier.Notify(ctx, n); err != nil {
			zap.S().Errorw("failed to deliver notification",
				"kind", n.Kind,
				"medicine", n.MedicineName,
				"error", err,
			)
		}
	}
	return nil
}
