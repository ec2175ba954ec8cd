package model

import "time"

// ExpenseStatus tracks admin review of a crew-submitted expense.
type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "pending"
	ExpenseApproved ExpenseStatus = "approved"
	ExpenseRejected ExpenseStatus = "rejected"
)

// ExpenseCategory groups expenses for reporting.
type ExpenseCategory string

const (
	ExpenseTravel    ExpenseCategory = "travel"
	ExpenseFood      ExpenseCategory = "food"
	ExpenseEquipment ExpenseCategory = "equipment"
	ExpenseFuel      ExpenseCategory = "fuel"
	ExpenseParking   ExpenseCategory = "parking"
	ExpenseOther     ExpenseCategory = "other"
)

// Expense is a crew-submitted cost tied to a booking, as stored in the
// `expenses` table. ClientName is a read-time join convenience for the
// finance views and is not persisted on the row itself.
type Expense struct {
	ID          string          `json:"id"`
	BookingID   string          `json:"booking_id"`
	CrewID      string          `json:"crew_id"`
	Amount      float64         `json:"amount"`
	Category    ExpenseCategory `json:"category"`
	Description string          `json:"description"`
	Status      ExpenseStatus   `json:"status"`
	ReceiptURL  string          `json:"receipt_url,omitempty"`
	ClientName  string          `json:"client_name,omitempty"`
	SubmittedAt time.Time       `json:"submitted_at"`
}

// CrewPayout records a payout owed to a crew member for a booking.
type CrewPayout struct {
	ID        string  `json:"id"`
	BookingID string  `json:"booking_id"`
	CrewID    string  `json:"crew_id"`
	Amount    float64 `json:"amount"`
	Hours     float64 `json:"hours"`
	Rate      float64 `json:"rate"`
	Status    string  `json:"status"` // pending | paid
}
