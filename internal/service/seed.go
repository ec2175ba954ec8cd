package service

import "github.com/vetridj/event-ops/internal/model"

// SampleBookings returns the demo dataset loaded by the admin seed
// operation. Amounts are in rupees and cover the states the finance
// views care about: fully paid, partially paid, and unpaid.
func SampleBookings() []model.Booking {
	return []model.Booking{
		{
			ClientName:  "Anand Kumar",
			ClientEmail: "anand.kumar@example.com",
			ClientPhone: "+91 98400 11223",
			EventType:   model.EventWedding,
			EventDate:   "2026-09-12",
			EventTime:   "17:00",
			Venue:       "Grand Palace Hall",
			VenueAddress: "12 Mount Road, Chennai",
			GuestCount:  450,
			Services:    []string{"sound", "lighting", "led_wall"},
			Status:      model.StatusConfirmed,
			Notes:       "Stage layout approved by client.",
			BaseAmount:  120000, Extras: 15000, Tax: 24300,
			TotalAmount: 159300, AdvancePaid: 80000, BalanceDue: 79300,
		},
		{
			ClientName:  "Priya Raman",
			ClientEmail: "priya.r@example.com",
			ClientPhone: "+91 98400 44556",
			EventType:   model.EventCorporate,
			EventDate:   "2026-09-20",
			EventTime:   "09:30",
			Venue:       "ITC Conference Centre",
			VenueAddress: "Anna Salai, Chennai",
			GuestCount:  120,
			Services:    []string{"sound", "projection"},
			Status:      model.StatusAwaitingPayment,
			BaseAmount:  45000, Tax: 8100,
			TotalAmount: 53100, AdvancePaid: 0, BalanceDue: 53100,
		},
		{
			ClientName:  "Suresh Babu",
			ClientEmail: "suresh.b@example.com",
			ClientPhone: "+91 98400 77889",
			EventType:   model.EventConcert,
			EventDate:   "2026-08-02",
			EventTime:   "18:30",
			Venue:       "Open Air Grounds",
			VenueAddress: "OMR, Chennai",
			GuestCount:  2000,
			Services:    []string{"sound", "lighting", "led_wall", "generators"},
			Status:      model.StatusReconciled,
			Notes:       "Event closed out, final accounts settled.",
			BaseAmount:  300000, Extras: 40000, Discount: 10000, Tax: 59400,
			TotalAmount: 389400, AdvancePaid: 389400, BalanceDue: 0,
		},
		{
			ClientName:  "Meena Lakshmi",
			ClientEmail: "meena.l@example.com",
			ClientPhone: "+91 98400 99001",
			EventType:   model.EventBirthday,
			EventDate:   "2026-09-05",
			EventTime:   "19:00",
			Venue:       "Lakeside Banquet",
			VenueAddress: "ECR, Chennai",
			GuestCount:  80,
			Services:    []string{"sound", "lighting"},
			Status:      model.StatusPending,
			Notes:       "Budget Range: 30000-50000\nWants pastel themed lighting.",
		},
	}
}
