package postgres

import (
	"context"
	"database/sql"
	"errors"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

const equipmentColumns = `id, name, category, description, daily_rate, tiered_prices, status,
	location_lat, location_lng, location_address,
	stock_total, stock_available, stock_rented, stock_maintenance, created_on`

func (r *equipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	query := `INSERT INTO equipment (` + equipmentColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	lat, lng, addr := locationArgs(e.Location)
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.Name, e.Category, e.Description, e.DailyRate, e.TieredPrices, e.Status,
		lat, lng, addr,
		e.Stock.Total, e.Stock.Available, e.Stock.Rented, e.Stock.Maintenance, e.CreatedOn)
	return err
}

func (r *equipmentRepository) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`
	e, err := scanEquipment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *equipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	query := `UPDATE equipment SET name=$1, category=$2, description=$3, daily_rate=$4,
	          tiered_prices=$5, status=$6, location_lat=$7, location_lng=$8, location_address=$9,
	          stock_total=$10, stock_available=$11, stock_rented=$12, stock_maintenance=$13
	          WHERE id=$14`
	lat, lng, addr := locationArgs(e.Location)
	res, err := r.db.ExecContext(ctx, query,
		e.Name, e.Category, e.Description, e.DailyRate, e.TieredPrices, e.Status,
		lat, lng, addr,
		e.Stock.Total, e.Stock.Available, e.Stock.Rented, e.Stock.Maintenance, e.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *equipmentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *equipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment ORDER BY created_on`
	return r.list(ctx, query)
}

func (r *equipmentRepository) ListAvailable(ctx context.Context) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE stock_available > 0 ORDER BY created_on`
	return r.list(ctx, query)
}

func (r *equipmentRepository) list(ctx context.Context, query string) ([]domain.Equipment, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var equipment []domain.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		equipment = append(equipment, *e)
	}
	return equipment, rows.Err()
}

func scanEquipment(row rowScanner) (*domain.Equipment, error) {
	e := &domain.Equipment{}
	var lat, lng sql.NullFloat64
	var addr sql.NullString
	err := row.Scan(&e.ID, &e.Name, &e.Category, &e.Description, &e.DailyRate,
		&e.TieredPrices, &e.Status, &lat, &lng, &addr,
		&e.Stock.Total, &e.Stock.Available, &e.Stock.Rented, &e.Stock.Maintenance, &e.CreatedOn)
	if err != nil {
		return nil, err
	}
	if lat.Valid && lng.Valid {
		e.Location = &domain.Location{Lat: lat.Float64, Lng: lng.Float64, Address: addr.String}
	}
	return e, nil
}

func locationArgs(loc *domain.Location) (interface{}, interface{}, interface{}) {
	if loc == nil {
		return nil, nil, nil
	}
	return loc.Lat, loc.Lng, loc.Address
}
