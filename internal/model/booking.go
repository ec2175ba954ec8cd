package model

import "time"

// BookingStatus enumerates the lifecycle states of a booking. The first
// eight values form the ordered main flow; CANCELLED is a parallel
// terminal state reachable from any non-terminal status.
type BookingStatus string

const (
	StatusPending         BookingStatus = "PENDING"
	StatusAwaitingPayment BookingStatus = "AWAITING_PAYMENT"
	StatusConfirmed       BookingStatus = "CONFIRMED"
	StatusEnRoute         BookingStatus = "EN_ROUTE"
	StatusSetup           BookingStatus = "SETUP"
	StatusLive            BookingStatus = "LIVE"
	StatusCompleted       BookingStatus = "COMPLETED"
	StatusReconciled      BookingStatus = "RECONCILED"
	StatusCancelled       BookingStatus = "CANCELLED"
)

// StatusFlow is the ordered main flow used by the advisory "next status"
// helper. CANCELLED is deliberately absent: it is offered alongside the
// flow, never suggested as a next step.
var StatusFlow = []BookingStatus{
	StatusPending,
	StatusAwaitingPayment,
	StatusConfirmed,
	StatusEnRoute,
	StatusSetup,
	StatusLive,
	StatusCompleted,
	StatusReconciled,
}

// Valid reports whether s is one of the nine known status values.
func (s BookingStatus) Valid() bool {
	if s == StatusCancelled {
		return true
	}
	for _, st := range StatusFlow {
		if st == s {
			return true
		}
	}
	return false
}

// EventType classifies the kind of event a client is booking.
type EventType string

const (
	EventWedding   EventType = "wedding"
	EventCorporate EventType = "corporate"
	EventConcert   EventType = "concert"
	EventBirthday  EventType = "birthday"
	EventClub      EventType = "club"
	EventFestival  EventType = "festival"
	EventPrivate   EventType = "private"
)

// Booking represents one client event request as stored in the
// `bookings` table, plus read-time join projections (expenses, payouts,
// assigned crew). The joined collections are populated only when the
// caller asks for them; a plain fetch leaves them empty.
//
// Monetary fields are rupee amounts computed by the caller at creation
// time. TotalAmount = BaseAmount + Extras - Discount + Tax and
// BalanceDue = TotalAmount - AdvancePaid hold by construction; the
// service never re-derives them on update.
type Booking struct {
	ID              string        `json:"id"`
	ClientName      string        `json:"client_name"`
	ClientEmail     string        `json:"client_email"`
	ClientPhone     string        `json:"client_phone"`
	EventType       EventType     `json:"event_type"`
	EventDate       string        `json:"event_date"`     // calendar date, YYYY-MM-DD; empty when unset
	EventTime       string        `json:"event_time"`
	EventEndTime    string        `json:"event_end_time"` // optional
	Venue           string        `json:"venue"`
	VenueAddress    string        `json:"venue_address"`
	GuestCount      int           `json:"guest_count"`
	Services        []string      `json:"services"` // selected service ids, order irrelevant
	Status          BookingStatus `json:"status"`
	Notes           string        `json:"notes"`
	SpecialRequests string        `json:"special_requests"`

	BaseAmount  float64 `json:"base_amount"`
	Extras      float64 `json:"extras"`
	Discount    float64 `json:"discount"`
	Tax         float64 `json:"tax"`
	TotalAmount float64 `json:"total_amount"`
	AdvancePaid float64 `json:"advance_paid"`
	BalanceDue  float64 `json:"balance_due"`

	Expenses     []Expense    `json:"expenses"`
	CrewPayouts  []CrewPayout `json:"crew_payouts"`
	AssignedCrew []string     `json:"assigned_crew"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
