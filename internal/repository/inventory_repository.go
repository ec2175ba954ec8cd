package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/vetridj/event-ops/internal/model"
)

// InventoryRepository persists equipment assets.
type InventoryRepository interface {
	Create(ctx context.Context, a *model.Asset) error
	ListAll(ctx context.Context) ([]model.Asset, error)
}

type inventoryRepo struct{ db *sql.DB }

func NewInventoryRepository(db *sql.DB) InventoryRepository { return &inventoryRepo{db: db} }

// Create inserts a new asset. Available is stored as set by the
// service (a brand-new asset starts fully available).
func (r *inventoryRepo) Create(ctx context.Context, a *model.Asset) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO inventory (id, name, category, brand, model, quantity, available_quantity,
		   status, purchase_price, purchase_date, last_service_date, next_service_date)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		a.ID, a.Name, string(a.Category), nullStr(a.Brand), nullStr(a.Model),
		a.Quantity, a.Available, string(a.Status),
		nullFloat(a.PurchasePrice), nullDate(a.PurchaseDate),
		nullDate(a.LastServiceDate), nullDate(a.NextServiceDate))
	return err
}

// ListAll returns all assets ordered by name ascending.
func (r *inventoryRepo) ListAll(ctx context.Context) ([]model.Asset, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, category, brand, model, quantity, available_quantity,
		        status, purchase_price, purchase_date, last_service_date, next_service_date
		 FROM inventory ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Asset, 0)
	for rows.Next() {
		var a model.Asset
		var category, status string
		var brand, mdl sql.NullString
		var price sql.NullFloat64
		var purchase, lastSvc, nextSvc sql.NullTime
		if err := rows.Scan(&a.ID, &a.Name, &category, &brand, &mdl,
			&a.Quantity, &a.Available, &status, &price,
			&purchase, &lastSvc, &nextSvc); err != nil {
			return nil, err
		}
		a.Category = model.AssetCategory(category)
		a.Status = model.AssetStatus(status)
		a.Brand = brand.String
		a.Model = mdl.String
		a.PurchasePrice = moneyOrZero(price)
		a.PurchaseDate = dateOrEmpty(purchase)
		a.LastServiceDate = dateOrEmpty(lastSvc)
		a.NextServiceDate = dateOrEmpty(nextSvc)
		out = append(out, a)
	}
	return out, rows.Err()
}

func nullFloat(f float64) interface{} {
	if f == 0 {
		return nil
	}
	return f
}
