package model

import "time"

// Role is the portal a user belongs to.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleCrew   Role = "CREW"
	RoleClient Role = "CLIENT"
)

// Profile is a team member or administrator record from the `profiles`
// table. Each profile is paired with a login identity in `users`; the
// two share the same id.
type Profile struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Role            Role      `json:"role"`
	Specializations []string  `json:"specializations"` // skill tags
	HourlyRate      float64   `json:"hourly_rate"`
	Active          bool      `json:"active"`
	AvatarURL       string    `json:"avatar_url,omitempty"`
	JoinedAt        time.Time `json:"joined_at"`
}
