package model

import "time"

// AssetCategory classifies an inventory equipment line.
type AssetCategory string

const (
	AssetSpeakers AssetCategory = "speakers"
	AssetLights   AssetCategory = "lights"
	AssetMixers   AssetCategory = "mixers"
	AssetCables   AssetCategory = "cables"
	AssetEffects  AssetCategory = "effects"
	AssetMisc     AssetCategory = "other"
)

// AssetStatus tracks whether equipment can currently go out on a job.
type AssetStatus string

const (
	AssetAvailable   AssetStatus = "available"
	AssetInUse       AssetStatus = "in-use"
	AssetMaintenance AssetStatus = "maintenance"
	AssetRetired     AssetStatus = "retired"
)

// Asset is one inventory equipment line as stored in the `inventory`
// table. Invariant: 0 <= Available <= Quantity. A freshly added asset
// starts fully available.
type Asset struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Category        AssetCategory `json:"category"`
	Brand           string        `json:"brand,omitempty"`
	Model           string        `json:"model,omitempty"`
	Quantity        int           `json:"quantity"`
	Available       int           `json:"available"`
	Status          AssetStatus   `json:"status"`
	PurchasePrice   float64       `json:"purchase_price,omitempty"`
	PurchaseDate    string        `json:"purchase_date,omitempty"`
	LastServiceDate string        `json:"last_service_date,omitempty"`
	NextServiceDate string        `json:"next_service_date,omitempty"`
}

// NeedsService reports whether the asset is due for maintenance: a next
// service date is recorded and it is not in the future relative to now.
// This is a view-level flag, never persisted.
func (a Asset) NeedsService(now time.Time) bool {
	if a.NextServiceDate == "" {
		return false
	}
	d, err := time.Parse("2006-01-02", a.NextServiceDate)
	if err != nil {
		return false
	}
	return !d.After(now)
}
