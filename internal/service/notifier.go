// Package service holds the business rules between the HTTP handlers
// and the repositories: the booking lifecycle, financial aggregation,
// inventory and team provisioning, and the outbound notification port.
package service

import (
	"context"
	"log"

	"github.com/vetridj/event-ops/internal/queue"
)

// Notifier is the outbound notification port. Sends are at-most-effort:
// implementations may fail, and callers log and move on. A booking
// write never fails because a message could not go out.
type Notifier interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// QueueNotifier dispatches notifications as tasks on the broker rather
// than delivering inline. The publish decouples the side effect from
// the primary transaction; the background consumer owns delivery.
type QueueNotifier struct{}

func (QueueNotifier) Send(ctx context.Context, recipient, subject, body string) error {
	return queue.PublishEmail(ctx, queue.EmailTask{
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
	})
}

// LogNotifier is used when no broker is configured: it records the
// notification in the process log and always succeeds.
type LogNotifier struct{}

func (LogNotifier) Send(_ context.Context, recipient, subject, _ string) error {
	log.Printf("notify: to=%s subject=%q", recipient, subject)
	return nil
}
