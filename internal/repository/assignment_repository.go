package repository

import (
	"context"
	"database/sql"
)

// CrewEvent is the crew-portal projection of an assigned booking:
// enough to render a schedule entry without exposing any financial
// fields to crew members.
type CrewEvent struct {
	BookingID    string `json:"booking_id"`
	EventType    string `json:"event_type"`
	EventDate    string `json:"event_date"`
	EventTime    string `json:"event_time"`
	EventEndTime string `json:"event_end_time,omitempty"`
	Venue        string `json:"venue"`
	VenueAddress string `json:"venue_address,omitempty"`
	Status       string `json:"status"`
	Notes        string `json:"notes,omitempty"`
}

// AssignmentRepository reads crew_assignments joined onto bookings for
// the crew portal.
type AssignmentRepository interface {
	UpcomingByCrew(ctx context.Context, crewID string, limit int) ([]CrewEvent, error)
	ScheduleByCrew(ctx context.Context, crewID string) ([]CrewEvent, error)
	CountThisMonth(ctx context.Context, crewID string) (int, error)
}

type assignmentRepo struct{ db *sql.DB }

func NewAssignmentRepository(db *sql.DB) AssignmentRepository { return &assignmentRepo{db: db} }

const crewEventColumns = `b.id, b.event_type, b.event_date, b.event_time, b.event_end_time,
	b.venue, b.venue_address, b.status, b.notes`

// UpcomingByCrew returns the member's next assignments, soonest first,
// limited to events dated today or later.
func (r *assignmentRepo) UpcomingByCrew(ctx context.Context, crewID string, limit int) ([]CrewEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+crewEventColumns+`
		 FROM crew_assignments ca
		 JOIN bookings b ON b.id = ca.booking_id
		 WHERE ca.crew_id = ? AND b.event_date >= CURDATE()
		 ORDER BY b.event_date ASC
		 LIMIT ?`, crewID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCrewEvents(rows)
}

// ScheduleByCrew returns every assignment for the member ordered by
// event date ascending.
func (r *assignmentRepo) ScheduleByCrew(ctx context.Context, crewID string) ([]CrewEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+crewEventColumns+`
		 FROM crew_assignments ca
		 JOIN bookings b ON b.id = ca.booking_id
		 WHERE ca.crew_id = ?
		 ORDER BY b.event_date ASC`, crewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCrewEvents(rows)
}

// CountThisMonth counts assignments made to the member during the
// current calendar month.
func (r *assignmentRepo) CountThisMonth(ctx context.Context, crewID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM crew_assignments
		 WHERE crew_id = ?
		   AND assigned_at >= DATE_FORMAT(CURDATE(), '%Y-%m-01')
		   AND assigned_at < DATE_FORMAT(CURDATE() + INTERVAL 1 MONTH, '%Y-%m-01')`,
		crewID).Scan(&n)
	return n, err
}

func scanCrewEvents(rows *sql.Rows) ([]CrewEvent, error) {
	out := make([]CrewEvent, 0)
	for rows.Next() {
		var ev CrewEvent
		var date sql.NullTime
		var endTime, address, notes sql.NullString
		if err := rows.Scan(&ev.BookingID, &ev.EventType, &date, &ev.EventTime,
			&endTime, &ev.Venue, &address, &ev.Status, &notes); err != nil {
			return nil, err
		}
		ev.EventDate = dateOrEmpty(date)
		ev.EventEndTime = endTime.String
		ev.VenueAddress = address.String
		ev.Notes = notes.String
		out = append(out, ev)
	}
	return out, rows.Err()
}
