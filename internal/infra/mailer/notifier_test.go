//go:build unit

package mailer_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	_ "time/tzdata"

	"pickup-scheduler/internal/domain/slot"
	"pickup-scheduler/internal/infra/graph"
	"pickup-scheduler/internal/infra/mailer"
	"pickup-scheduler/internal/pkg/config"
	"pickup-scheduler/internal/usecase/shared"
	mockmailer "pickup-scheduler/tests/mock/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func notice() shared.PickupNotice {
	return shared.PickupNotice{
		OrderNumber:   "SO-1001",
		CustomerEmail: "customer@example.com",
		Slot:          slot.MustParse("2025-01-15T15:00:00Z"),
	}
}

func newNotifier(t *testing.T) (*mailer.Notifier, *mockmailer.MockSender) {
	t.Helper()
	ctrl := gomock.NewController(t)
	sender := mockmailer.NewMockSender(ctrl)
	return mailer.NewNotifier(sender, config.NewTestConfig().Mail, discardLogger()), sender
}

func TestNotifier_SendConfirmation(t *testing.T) {
	n, sender := newNotifier(t)

	var sent mailer.Message
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, m mailer.Message) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline, "delivery runs under a timeout")
			sent = m
			return nil
		})

	require.NoError(t, n.SendConfirmation(context.Background(), notice()))

	assert.Equal(t, "customer@example.com", sent.To)
	assert.Equal(t, "Appointment Confirmation - Order SO-1001", sent.Subject)
	assert.Contains(t, sent.HTMLBody, "Your pickup appointment has been confirmed!")
	assert.Contains(t, sent.HTMLBody, "Wednesday, January 15, 2025 at 09:00 AM", "time is shown in the display timezone")
	assert.Contains(t, sent.HTMLBody, "Important Instructions")
	assert.Contains(t, sent.HTMLBody, "(972) 245-3309")
	assert.Contains(t, sent.HTMLBody, "automated confirmation email")
}

func TestNotifier_SendCancellation(t *testing.T) {
	n, sender := newNotifier(t)

	var sent mailer.Message
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m mailer.Message) error {
			sent = m
			return nil
		})

	require.NoError(t, n.SendCancellation(context.Background(), notice()))

	assert.Equal(t, "Appointment Cancelled - Order SO-1001", sent.Subject)
	assert.Contains(t, sent.HTMLBody, "Cancelled Appointment:</strong> Wednesday, January 15, 2025 at 09:00 AM")
	assert.Contains(t, sent.HTMLBody, "What to do next:")
	assert.NotContains(t, sent.HTMLBody, "Important Instructions")
}

func TestNotifier_SendReschedule(t *testing.T) {
	n, sender := newNotifier(t)

	p := notice()
	p.PreviousSlot = p.Slot
	p.Slot = slot.MustParse("2025-01-16T20:30:00Z")

	var sent mailer.Message
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m mailer.Message) error {
			sent = m
			return nil
		})

	require.NoError(t, n.SendReschedule(context.Background(), p))

	assert.Equal(t, "Appointment Rescheduled - Order SO-1001", sent.Subject)
	assert.Contains(t, sent.HTMLBody, "Previous Time:</strong> Wednesday, January 15, 2025 at 09:00 AM")
	assert.Contains(t, sent.HTMLBody, "New Pickup Time:</strong> Thursday, January 16, 2025 at 02:30 PM")
	assert.Less(t, strings.Index(sent.HTMLBody, "Previous Time"), strings.Index(sent.HTMLBody, "New Pickup Time"))
}

func TestNotifier_Errors(t *testing.T) {
	t.Run("error: missing customer email is not sent", func(t *testing.T) {
		n, _ := newNotifier(t)

		p := notice()
		p.CustomerEmail = ""
		err := n.SendConfirmation(context.Background(), p)
		require.ErrorIs(t, err, mailer.ErrNoRecipient)
	})

	t.Run("error: sender failure is returned", func(t *testing.T) {
		n, sender := newNotifier(t)
		sendErr := errors.New("smtp down")
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(sendErr)

		err := n.SendCancellation(context.Background(), notice())
		require.ErrorIs(t, err, sendErr)
	})
}

func TestNotifier_EscapesOrderNumber(t *testing.T) {
	n, sender := newNotifier(t)

	p := notice()
	p.OrderNumber = "<b>SO-1</b>"

	var sent mailer.Message
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m mailer.Message) error {
			sent = m
			return nil
		})

	require.NoError(t, n.SendConfirmation(context.Background(), p))
	assert.Contains(t, sent.HTMLBody, "&lt;b&gt;SO-1&lt;/b&gt;")
}

func TestGraphSender_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockmailer.NewMockGraphMailer(ctrl)

	cfg := config.NewTestConfig().Mail
	cfg.Sender = "pickup@example.com"
	cfg.CC = []string{"staff@example.com"}
	s := mailer.NewGraphSender(client, cfg)

	client.EXPECT().SendMail(gomock.Any(), graph.Mail{
		From:     "pickup@example.com",
		To:       []string{"customer@example.com"},
		CC:       []string{"staff@example.com"},
		Subject:  "Hello",
		HTMLBody: "<p>hi</p>",
	}).Return(nil)

	require.NoError(t, s.Send(context.Background(), mailer.Message{
		To:       "customer@example.com",
		Subject:  "Hello",
		HTMLBody: "<p>hi</p>",
	}))
}

func TestLogSender_Send(t *testing.T) {
	s := mailer.NewLogSender(discardLogger())
	require.NoError(t, s.Send(context.Background(), mailer.Message{To: "customer@example.com", Subject: "Hello"}))
}
