package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/vetridj/event-ops/internal/model"
	"github.com/vetridj/event-ops/internal/repository"
)

// ErrValidation marks a rejected intake: a required field was missing
// or an enum value was unknown. Nothing is persisted when it fires.
var ErrValidation = errors.New("validation error")

// BookingIntake is the raw public booking form. The free-text budget
// and message are merged into the booking's notes; the intake has no
// pricing authority, so no monetary fields appear here.
type BookingIntake struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	EventType       string   `json:"event_type"`
	EventDate       string   `json:"event_date"`
	EventTime       string   `json:"event_time"`
	EventEndTime    string   `json:"event_end_time"`
	Venue           string   `json:"venue"`
	VenueAddress    string   `json:"venue_address"`
	GuestCount      int      `json:"guest_count"`
	Services        []string `json:"services"`
	Budget          string   `json:"budget"`
	Message         string   `json:"message"`
	SpecialRequests string   `json:"special_requests"`
}

// LifecycleService owns the booking status state machine and the
// notification side effects that ride along with it.
type LifecycleService interface {
	CreateBooking(ctx context.Context, intake BookingIntake) (string, error)
	UpdateStatus(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, error)
	ListBookings(ctx context.Context, joins repository.BookingJoins) ([]model.Booking, error)
	GetBooking(ctx context.Context, id string, joins repository.BookingJoins) (*model.Booking, error)
}

type lifecycleService struct {
	bookings   repository.BookingRepository
	notifier   Notifier
	adminEmail string
}

// NewLifecycleService wires the lifecycle rules to a booking store and
// a notifier. adminEmail receives the unconditional admin digests.
func NewLifecycleService(bookings repository.BookingRepository, notifier Notifier, adminEmail string) LifecycleService {
	return &lifecycleService{bookings: bookings, notifier: notifier, adminEmail: adminEmail}
}

// NextStatus is the advisory "move forward" helper: it returns the
// status after current in the ordered main flow, and false when current
// is the last ordered state or not part of the flow (CANCELLED). It
// advises only; UpdateStatus accepts any valid status from any prior
// status.
func NextStatus(current model.BookingStatus) (model.BookingStatus, bool) {
	for i, s := range model.StatusFlow {
		if s == current {
			if i+1 < len(model.StatusFlow) {
				return model.StatusFlow[i+1], true
			}
			return "", false
		}
	}
	return "", false
}

// CreateBooking validates the intake and inserts a new booking in
// status PENDING with all monetary fields zeroed. On success it queues
// a "request received" customer notification (the CONFIRMATION template
// does double duty here) and an admin notification; both are
// fire-and-forget.
func (s *lifecycleService) CreateBooking(ctx context.Context, intake BookingIntake) (string, error) {
	if err := validateIntake(intake); err != nil {
		return "", err
	}

	notes := intake.Message
	if intake.Budget != "" {
		notes = "Budget Range: " + intake.Budget + "\n" + intake.Message
	}
	services := intake.Services
	if services == nil {
		services = []string{}
	}

	b := &model.Booking{
		ClientName:      strings.TrimSpace(intake.Name),
		ClientEmail:     strings.ToLower(strings.TrimSpace(intake.Email)),
		ClientPhone:     strings.TrimSpace(intake.Phone),
		EventType:       model.EventType(intake.EventType),
		EventDate:       intake.EventDate,
		EventTime:       intake.EventTime,
		EventEndTime:    intake.EventEndTime,
		Venue:           intake.Venue,
		VenueAddress:    intake.VenueAddress,
		GuestCount:      intake.GuestCount,
		Services:        services,
		Notes:           notes,
		SpecialRequests: intake.SpecialRequests,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return "", fmt.Errorf("create booking: %w", err)
	}

	s.notifyCustomer(ctx, b, templateConfirmation)
	s.notifyAdmin(ctx, b, "New Booking Request")
	return b.ID, nil
}

// UpdateStatus persists the new status, reloads the record, and fires
// the notification side effects. A missing booking aborts the whole
// operation, including the notifications. Any valid status may be
// written regardless of the prior one; the state machine's order is
// advisory (see NextStatus).
func (s *lifecycleService) UpdateStatus(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	b, err := s.bookings.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	switch status {
	case model.StatusConfirmed:
		s.notifyCustomer(ctx, b, templateConfirmation)
	case model.StatusCancelled, model.StatusLive:
		s.notifyCustomer(ctx, b, templateUpdate)
	}
	s.notifyAdmin(ctx, b, "Status changed to "+string(status))
	return b, nil
}

func (s *lifecycleService) ListBookings(ctx context.Context, joins repository.BookingJoins) ([]model.Booking, error) {
	return s.bookings.List(ctx, joins)
}

func (s *lifecycleService) GetBooking(ctx context.Context, id string, joins repository.BookingJoins) (*model.Booking, error) {
	return s.bookings.GetByID(ctx, id, joins)
}

func validateIntake(in BookingIntake) error {
	missing := func(field string) error {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	switch {
	case strings.TrimSpace(in.Name) == "":
		return missing("name")
	case strings.TrimSpace(in.Email) == "":
		return missing("email")
	case strings.TrimSpace(in.Phone) == "":
		return missing("phone")
	case strings.TrimSpace(in.EventType) == "":
		return missing("event_type")
	case strings.TrimSpace(in.EventDate) == "":
		return missing("event_date")
	case strings.TrimSpace(in.Venue) == "":
		return missing("venue")
	}
	return nil
}

type emailTemplate int

const (
	templateConfirmation emailTemplate = iota
	templateUpdate
)

// notifyCustomer renders the customer-facing template and hands it to
// the notifier. Failures are logged and swallowed.
func (s *lifecycleService) notifyCustomer(ctx context.Context, b *model.Booking, tpl emailTemplate) {
	var subject string
	if tpl == templateConfirmation {
		subject = fmt.Sprintf("Booking Confirmed: %s on %s", b.EventType, b.EventDate)
	} else {
		subject = "Update on your Booking: " + b.ID
	}
	body := fmt.Sprintf(
		"Hello %s,\n\nWe have an update regarding your booking with Vetri DJ Events.\n\n"+
			"Status: %s\nDate: %s at %s\nVenue: %s\n\nBest regards,\nVetri DJ Team\n",
		b.ClientName, b.Status, b.EventDate, b.EventTime, b.Venue)

	if err := s.notifier.Send(ctx, b.ClientEmail, subject, body); err != nil {
		log.Printf("lifecycle: customer notification failed for booking %s: %v", b.ID, err)
	}
}

// notifyAdmin sends the unconditional admin digest for a booking event.
func (s *lifecycleService) notifyAdmin(ctx context.Context, b *model.Booking, reason string) {
	subject := fmt.Sprintf("[ADMIN] Booking Update: %s (%s)", b.ID, reason)
	body := fmt.Sprintf(
		"Client: %s\nStatus: %s\nTotal Amount: ₹%.2f\nContext: %s\n",
		b.ClientName, b.Status, b.TotalAmount, reason)

	if err := s.notifier.Send(ctx, s.adminEmail, subject, body); err != nil {
		log.Printf("lifecycle: admin notification failed for booking %s: %v", b.ID, err)
	}
}
