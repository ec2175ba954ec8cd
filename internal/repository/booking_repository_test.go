package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDecodeServices(t *testing.T) {
	// NULL, empty, and malformed inputs all decode to an empty set.
	assert.Equal(t, []string{}, decodeServices(sql.NullString{}))
	assert.Equal(t, []string{}, decodeServices(sql.NullString{String: "", Valid: true}))
	assert.Equal(t, []string{}, decodeServices(sql.NullString{String: "  ", Valid: true}))
	assert.Equal(t, []string{}, decodeServices(sql.NullString{String: "{broken", Valid: true}))
	assert.Equal(t, []string{}, decodeServices(sql.NullString{String: "null", Valid: true}))

	assert.Equal(t, []string{"sound", "lighting"},
		decodeServices(sql.NullString{String: `["sound","lighting"]`, Valid: true}))
	assert.Equal(t, []string{},
		decodeServices(sql.NullString{String: `[]`, Valid: true}))
}

func TestMoneyOrZero(t *testing.T) {
	assert.Zero(t, moneyOrZero(sql.NullFloat64{}))
	assert.Equal(t, 159300.5, moneyOrZero(sql.NullFloat64{Float64: 159300.5, Valid: true}))
}

func TestDateOrEmpty(t *testing.T) {
	assert.Equal(t, "", dateOrEmpty(sql.NullTime{}))
	assert.Equal(t, "2026-09-12", dateOrEmpty(sql.NullTime{
		Time:  time.Date(2026, 9, 12, 18, 30, 0, 0, time.UTC),
		Valid: true,
	}))
}

func TestNullDate(t *testing.T) {
	assert.Nil(t, nullDate(""))
	assert.Nil(t, nullDate("   "))
	assert.Equal(t, "2026-09-12", nullDate("2026-09-12"))
}
