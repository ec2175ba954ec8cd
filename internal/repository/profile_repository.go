package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/vetridj/event-ops/internal/model"
)

// ProfileRepository reads and writes team member profiles. Profile rows
// are created as part of identity provisioning (see UserRepository) and
// then filled in with the member's working details.
type ProfileRepository interface {
	Create(ctx context.Context, p *model.Profile) error
	Update(ctx context.Context, p *model.Profile) error
	GetByID(ctx context.Context, id string) (*model.Profile, error)
	ListAll(ctx context.Context) ([]model.Profile, error)
}

type profileRepo struct{ db *sql.DB }

func NewProfileRepository(db *sql.DB) ProfileRepository { return &profileRepo{db: db} }

func (r *profileRepo) Create(ctx context.Context, p *model.Profile) error {
	if p.JoinedAt.IsZero() {
		p.JoinedAt = time.Now().UTC()
	}
	skills, err := json.Marshal(p.Specializations)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO profiles (id, full_name, email, phone, role, skills, hourly_rate, is_active, avatar_url, created_at)
		 VALUES (?,?,?,?,?,?,?,?,?,?)`,
		p.ID, p.Name, strings.ToLower(strings.TrimSpace(p.Email)), p.Phone,
		string(p.Role), string(skills), p.HourlyRate, p.Active, nullStr(p.AvatarURL), p.JoinedAt)
	return err
}

// Update rewrites the editable profile fields (phone, skills, rate,
// active flag, avatar). Name and role are set at provisioning time.
func (r *profileRepo) Update(ctx context.Context, p *model.Profile) error {
	skills, err := json.Marshal(p.Specializations)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET phone = ?, skills = ?, hourly_rate = ?, is_active = ?, avatar_url = ?
		 WHERE id = ?`,
		p.Phone, string(skills), p.HourlyRate, p.Active, nullStr(p.AvatarURL), p.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		if _, getErr := r.GetByID(ctx, p.ID); getErr != nil {
			return getErr
		}
	}
	return nil
}

func (r *profileRepo) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = ? LIMIT 1`, id)
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return p, err
}

// ListAll returns every profile ordered by full name ascending.
func (r *profileRepo) ListAll(ctx context.Context) ([]model.Profile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+profileColumns+` FROM profiles ORDER BY full_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

const profileColumns = `id, full_name, email, phone, role, skills, hourly_rate, is_active, avatar_url, created_at`

// scanProfile decodes one profiles row. NULL skills become an empty
// slice and a NULL rate becomes 0, mirroring the booking mapper's
// defaulting rules.
func scanProfile(row rowScanner) (*model.Profile, error) {
	var p model.Profile
	var role string
	var phone, skills, avatar sql.NullString
	var rate sql.NullFloat64
	if err := row.Scan(&p.ID, &p.Name, &p.Email, &phone, &role,
		&skills, &rate, &p.Active, &avatar, &p.JoinedAt); err != nil {
		return nil, err
	}
	p.Role = model.Role(role)
	p.Phone = phone.String
	p.HourlyRate = moneyOrZero(rate)
	p.AvatarURL = avatar.String
	p.Specializations = decodeServices(skills)
	return &p, nil
}
