package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetridj/event-ops/internal/model"
	"github.com/vetridj/event-ops/internal/repository"
)

// userRepoMock implements repository.UserRepository.
type userRepoMock struct {
	createFn     func(ctx context.Context, email, password, role string, cost int) (string, error)
	getByEmailFn func(ctx context.Context, email string) (*repository.User, error)
}

func (m *userRepoMock) Create(ctx context.Context, email, password, role string, cost int) (string, error) {
	return m.createFn(ctx, email, password, role, cost)
}
func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*repository.User, error) {
	return m.getByEmailFn(ctx, email)
}

func TestAddMemberTwoStepProvisioning(t *testing.T) {
	var createdEmail, createdPassword, createdRole string
	users := &userRepoMock{
		createFn: func(_ context.Context, email, password, role string, _ int) (string, error) {
			createdEmail, createdPassword, createdRole = email, password, role
			return "u-1", nil
		},
	}
	var storedProfile *model.Profile
	profiles := &profileRepoMock{
		createFn: func(_ context.Context, p *model.Profile) error {
			storedProfile = p
			return nil
		},
	}
	svc := NewTeamService(users, profiles, 10)

	p, err := svc.AddMember(context.Background(), MemberInput{
		Name:            "Ravi Shankar",
		Email:           "Ravi@vetri.event",
		Role:            "crew",
		Specializations: []string{"sound"},
		HourlyRate:      500,
		Active:          true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ravi@vetri.event", createdEmail)
	assert.Equal(t, "tempPassword123!", createdPassword)
	assert.Equal(t, "CREW", createdRole)

	// Profile shares the identity's id.
	require.NotNil(t, storedProfile)
	assert.Equal(t, "u-1", p.ID)
	assert.Equal(t, "ravi@vetri.event", p.Email)
	assert.Equal(t, model.RoleCrew, p.Role)
	assert.InDelta(t, 500, p.HourlyRate, 0.001)
}

func TestAddMemberRoleNormalization(t *testing.T) {
	var createdRole string
	users := &userRepoMock{
		createFn: func(_ context.Context, _, _, role string, _ int) (string, error) {
			createdRole = role
			return "u-2", nil
		},
	}
	profiles := &profileRepoMock{
		createFn: func(_ context.Context, _ *model.Profile) error { return nil },
	}
	svc := NewTeamService(users, profiles, 10)

	// Anything that is not ADMIN collapses to CREW.
	for _, role := range []string{"crew", "CREW", "manager", ""} {
		_, err := svc.AddMember(context.Background(), MemberInput{Name: "X", Email: "x@vetri.event", Role: role})
		require.NoError(t, err)
		assert.Equal(t, "CREW", createdRole, "role=%q", role)
	}

	_, err := svc.AddMember(context.Background(), MemberInput{Name: "X", Email: "x@vetri.event", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", createdRole)
}

func TestAddMemberDuplicateEmail(t *testing.T) {
	users := &userRepoMock{
		createFn: func(_ context.Context, _, _, _ string, _ int) (string, error) {
			return "", repository.ErrEmailExists
		},
	}
	profiles := &profileRepoMock{
		createFn: func(_ context.Context, _ *model.Profile) error {
			t.Fatal("profile must not be written when identity creation fails")
			return nil
		},
	}
	svc := NewTeamService(users, profiles, 10)

	_, err := svc.AddMember(context.Background(), MemberInput{Name: "X", Email: "dup@vetri.event"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrEmailExists))
}

func TestAddMemberProfileFailureLeavesIdentity(t *testing.T) {
	identityCreated := false
	users := &userRepoMock{
		createFn: func(_ context.Context, _, _, _ string, _ int) (string, error) {
			identityCreated = true
			return "u-3", nil
		},
	}
	profiles := &profileRepoMock{
		createFn: func(_ context.Context, _ *model.Profile) error {
			return errors.New("profiles table unavailable")
		},
	}
	svc := NewTeamService(users, profiles, 10)

	_, err := svc.AddMember(context.Background(), MemberInput{Name: "X", Email: "x@vetri.event"})
	require.Error(t, err)
	// The identity write is not rolled back; the error names it.
	assert.True(t, identityCreated)
	assert.Contains(t, err.Error(), "u-3")
}

func TestUpdateMemberPartialEdit(t *testing.T) {
	existing := &model.Profile{
		ID: "u-1", Name: "Ravi Shankar", Email: "ravi@vetri.event",
		Phone: "+91 98400 00001", Role: model.RoleCrew,
		Specializations: []string{"sound"}, HourlyRate: 500, Active: true,
	}
	var updated *model.Profile
	profiles := &profileRepoMock{
		getByIDFn: func(_ context.Context, id string) (*model.Profile, error) {
			require.Equal(t, "u-1", id)
			cp := *existing
			return &cp, nil
		},
		updateFn: func(_ context.Context, p *model.Profile) error {
			updated = p
			return nil
		},
	}
	svc := NewTeamService(&userRepoMock{}, profiles, 10)

	rate := 650.0
	p, err := svc.UpdateMember(context.Background(), "u-1", MemberUpdate{
		HourlyRate:      &rate,
		Specializations: []string{"sound", "lighting"},
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	// Edited fields change; everything else is untouched.
	assert.InDelta(t, 650, p.HourlyRate, 0.001)
	assert.Equal(t, []string{"sound", "lighting"}, p.Specializations)
	assert.Equal(t, "+91 98400 00001", p.Phone)
	assert.True(t, p.Active)
}

func TestUpdateMemberNotFound(t *testing.T) {
	profiles := &profileRepoMock{
		getByIDFn: func(_ context.Context, _ string) (*model.Profile, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := NewTeamService(&userRepoMock{}, profiles, 10)

	_, err := svc.UpdateMember(context.Background(), "ghost", MemberUpdate{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestUpdateMemberNegativeRate(t *testing.T) {
	profiles := &profileRepoMock{
		getByIDFn: func(_ context.Context, id string) (*model.Profile, error) {
			return &model.Profile{ID: id, HourlyRate: 500}, nil
		},
		updateFn: func(_ context.Context, _ *model.Profile) error {
			t.Fatal("update must not be called with a negative rate")
			return nil
		},
	}
	svc := NewTeamService(&userRepoMock{}, profiles, 10)

	rate := -10.0
	_, err := svc.UpdateMember(context.Background(), "u-1", MemberUpdate{HourlyRate: &rate})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestAddMemberValidation(t *testing.T) {
	svc := NewTeamService(&userRepoMock{}, &profileRepoMock{}, 10)

	_, err := svc.AddMember(context.Background(), MemberInput{Email: "x@vetri.event"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = svc.AddMember(context.Background(), MemberInput{Name: "X"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}
