package mailer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pickup-scheduler/internal/domain/slot"
	"pickup-scheduler/internal/pkg/config"
	"pickup-scheduler/internal/usecase/shared"
)

var ErrNoRecipient = errors.New("customer email is required")

// Message is a rendered email ready for a delivery backend.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

// Sender delivers rendered messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Notifier renders customer notifications and hands them to a Sender.
type Notifier struct {
	sender   Sender
	location *time.Location
	company  string
	phone    string
	timeout  time.Duration
	logger   *slog.Logger
}

var _ shared.Notifier = (*Notifier)(nil)

func NewNotifier(sender Sender, cfg config.MailConfig, logger *slog.Logger) *Notifier {
	loc, err := time.LoadLocation(cfg.DisplayTimeZone)
	if err != nil {
		logger.Warn("unknown mail display timezone, using UTC", "timezone", cfg.DisplayTimeZone)
		loc = time.UTC
	}
	return &Notifier{
		sender:   sender,
		location: loc,
		company:  cfg.CompanyName,
		phone:    cfg.ContactPhone,
		timeout:  10 * time.Second,
		logger:   logger,
	}
}

func (n *Notifier) SendConfirmation(ctx context.Context, p shared.PickupNotice) error {
	body, err := render(bodyData{
		Accent:       "#2c5282",
		Title:        "Appointment Confirmation",
		Lead:         "Your pickup appointment has been confirmed!",
		PickupLabel:  "Pickup Time",
		PickupTime:   n.display(p.Slot),
		Instructions: pickupInstructions(n.phone),
		Kind:         "confirmation",
		Company:      n.company,
		Phone:        n.phone,
		OrderNumber:  p.OrderNumber,
	})
	if err != nil {
		return err
	}
	return n.send(ctx, p, "Appointment Confirmation - Order "+p.OrderNumber, body)
}

func (n *Notifier) SendCancellation(ctx context.Context, p shared.PickupNotice) error {
	body, err := render(bodyData{
		Accent:      "#c53030",
		Title:       "Appointment Cancelled",
		Lead:        "Your pickup appointment has been cancelled.",
		PickupLabel: "Cancelled Appointment",
		PickupTime:  n.display(p.Slot),
		NextSteps:   "If you would like to reschedule your pickup appointment, please contact us at " + n.phone + " or book a new time slot online.",
		Kind:        "notification",
		Company:     n.company,
		Phone:       n.phone,
		OrderNumber: p.OrderNumber,
	})
	if err != nil {
		return err
	}
	return n.send(ctx, p, "Appointment Cancelled - Order "+p.OrderNumber, body)
}

func (n *Notifier) SendReschedule(ctx context.Context, p shared.PickupNotice) error {
	body, err := render(bodyData{
		Accent:       "#2f855a",
		Title:        "Appointment Rescheduled",
		Lead:         "Your pickup appointment has been rescheduled.",
		PickupLabel:  "New Pickup Time",
		PickupTime:   n.display(p.Slot),
		PreviousTime: n.display(p.PreviousSlot),
		Instructions: pickupInstructions(n.phone),
		Kind:         "notification",
		Company:      n.company,
		Phone:        n.phone,
		OrderNumber:  p.OrderNumber,
	})
	if err != nil {
		return err
	}
	return n.send(ctx, p, "Appointment Rescheduled - Order "+p.OrderNumber, body)
}

func (n *Notifier) send(ctx context.Context, p shared.PickupNotice, subject, body string) error {
	if p.CustomerEmail == "" {
		return ErrNoRecipient
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	if err := n.sender.Send(ctx, Message{To: p.CustomerEmail, Subject: subject, HTMLBody: body}); err != nil {
		return err
	}
	n.logger.Info("email sent", "subject", subject, "to", p.CustomerEmail)
	return nil
}

func (n *Notifier) display(s slot.Slot) string {
	if s.IsZero() {
		return ""
	}
	return s.In(n.location).Format(pickupDisplayLayout)
}
