package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/vetridj/event-ops/internal/model"
	"github.com/vetridj/event-ops/internal/repository"
)

// tempPassword is the fixed initial password every provisioned member
// receives. It is not sent to the user; onboarding hands it over out of
// band until an invite flow exists.
const tempPassword = "tempPassword123!"

// MemberInput is the admin "add team member" form.
type MemberInput struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Role            string   `json:"role"`
	Specializations []string `json:"specializations"`
	HourlyRate      float64  `json:"hourly_rate"`
	Active          bool     `json:"active"`
}

// MemberUpdate is the admin "edit team member" form. Nil pointers mean
// "leave unchanged"; name and role are fixed at provisioning time.
type MemberUpdate struct {
	Phone           *string  `json:"phone"`
	Specializations []string `json:"specializations"`
	HourlyRate      *float64 `json:"hourly_rate"`
	Active          *bool    `json:"active"`
	AvatarURL       *string  `json:"avatar_url"`
}

// TeamService provisions and lists crew/admin members.
type TeamService interface {
	AddMember(ctx context.Context, in MemberInput) (*model.Profile, error)
	UpdateMember(ctx context.Context, id string, in MemberUpdate) (*model.Profile, error)
	ListMembers(ctx context.Context) ([]model.Profile, error)
}

type teamService struct {
	users      repository.UserRepository
	profiles   repository.ProfileRepository
	bcryptCost int
}

func NewTeamService(users repository.UserRepository, profiles repository.ProfileRepository, bcryptCost int) TeamService {
	return &teamService{users: users, profiles: profiles, bcryptCost: bcryptCost}
}

// AddMember provisions a member in two steps: first the login identity
// with the fixed temporary password, then the profile row carrying the
// working details. If the second step fails the identity is left behind
// with no profile; the partial state is reported, not rolled back.
func (s *teamService) AddMember(ctx context.Context, in MemberInput) (*model.Profile, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	role := strings.ToUpper(strings.TrimSpace(in.Role))
	if role != string(model.RoleAdmin) {
		role = string(model.RoleCrew)
	}

	id, err := s.users.Create(ctx, in.Email, tempPassword, role, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("create identity: %w", err)
	}

	specs := in.Specializations
	if specs == nil {
		specs = []string{}
	}
	p := &model.Profile{
		ID:              id,
		Name:            strings.TrimSpace(in.Name),
		Email:           strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:           in.Phone,
		Role:            model.Role(role),
		Specializations: specs,
		HourlyRate:      in.HourlyRate,
		Active:          in.Active,
	}
	if err := s.profiles.Create(ctx, p); err != nil {
		// Identity exists but the profile write failed; surface the
		// partial state instead of pretending the member was created.
		return nil, fmt.Errorf("write profile for identity %s: %w", id, err)
	}
	return p, nil
}

// UpdateMember applies a partial edit to an existing profile and
// returns the updated record. repository.ErrNotFound surfaces when the
// member does not exist.
func (s *teamService) UpdateMember(ctx context.Context, id string, in MemberUpdate) (*model.Profile, error) {
	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if in.Phone != nil {
		p.Phone = *in.Phone
	}
	if in.Specializations != nil {
		p.Specializations = in.Specializations
	}
	if in.HourlyRate != nil {
		if *in.HourlyRate < 0 {
			return nil, fmt.Errorf("%w: hourly_rate must not be negative", ErrValidation)
		}
		p.HourlyRate = *in.HourlyRate
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	if in.AvatarURL != nil {
		p.AvatarURL = *in.AvatarURL
	}
	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return p, nil
}

// ListMembers returns all profiles ordered by name ascending.
func (s *teamService) ListMembers(ctx context.Context) ([]model.Profile, error) {
	return s.profiles.ListAll(ctx)
}
