// Package queue defines the notification task payload exchanged over
// the message broker and the background worker that delivers it.
package queue

// EmailTask is published to the notify.email queue whenever a booking
// operation wants a message sent. It carries a fully rendered email so
// the worker needs no access to the primary database.
type EmailTask struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	BookingID string `json:"booking_id,omitempty"`
	QueuedAt  string `json:"queued_at"`
}
