package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, customer_id, equipment_id, start_date, end_date, duration_days,
	daily_rate, total_price, status, payment_status, payment_date, notes, created_on`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (` + rentalColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecContext(ctx, query,
		rt.ID, rt.CustomerID, rt.EquipmentID, rt.StartDate, rt.EndDate, rt.DurationDays,
		rt.DailyRate, rt.TotalPrice, rt.Status, rt.PaymentStatus, rt.PaymentDate,
		rt.Notes, rt.CreatedOn)
	return err
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	renewals, err := r.listRenewals(ctx, id)
	if err != nil {
		return nil, err
	}
	rt.Renewals = renewals
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET end_date=$1, duration_days=$2, total_price=$3, status=$4,
	          payment_status=$5, payment_date=$6, notes=$7 WHERE id=$8`
	res, err := r.db.ExecContext(ctx, query,
		rt.EndDate, rt.DurationDays, rt.TotalPrice, rt.Status,
		rt.PaymentStatus, rt.PaymentDate, rt.Notes, rt.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals ORDER BY created_on`
	return r.list(ctx, query)
}

func (r *rentalRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE customer_id = $1 ORDER BY created_on`
	return r.list(ctx, query, customerID)
}

func (r *rentalRepository) ListOpen(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status IN ($1, $2) ORDER BY end_date`
	return r.list(ctx, query, domain.RentalStatusActive, domain.RentalStatusOverdue)
}

func (r *rentalRepository) ListActiveByEquipment(ctx context.Context, equipmentID string) ([]domain.ActiveRentalUnit, error) {
	// LEFT JOIN keeps units whose customer record was deleted.
	query := `SELECT r.id, r.customer_id, COALESCE(c.name, ''), r.start_date, r.end_date
	          FROM rentals r
	          LEFT JOIN customers c ON c.id = r.customer_id
	          WHERE r.equipment_id = $1 AND r.status IN ($2, $3)
	          ORDER BY r.end_date`
	rows, err := r.db.QueryContext(ctx, query, equipmentID,
		domain.RentalStatusActive, domain.RentalStatusOverdue)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []domain.ActiveRentalUnit
	for rows.Next() {
		var u domain.ActiveRentalUnit
		if err := rows.Scan(&u.RentalID, &u.CustomerID, &u.CustomerName, &u.StartDate, &u.EndDate); err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

func (r *rentalRepository) AddRenewal(ctx context.Context, renewal *domain.Renewal) error {
	query := `INSERT INTO rental_renewals (id, rental_id, renewed_on, new_end_date, additional_days, additional_price)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query,
		renewal.ID, renewal.RentalID, renewal.RenewedOn, renewal.NewEndDate,
		renewal.AdditionalDays, renewal.AdditionalPrice)
	return err
}

func (r *rentalRepository) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	query := `UPDATE rentals SET status = $1 WHERE status = $2 AND end_date < $3`
	res, err := r.db.ExecContext(ctx, query, domain.RentalStatusOverdue, domain.RentalStatusActive, asOf)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *rentalRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) listRenewals(ctx context.Context, rentalID string) ([]domain.Renewal, error) {
	query := `SELECT id, rental_id, renewed_on, new_end_date, additional_days, additional_price
	          FROM rental_renewals WHERE rental_id = $1 ORDER BY renewed_on`
	rows, err := r.db.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var renewals []domain.Renewal
	for rows.Next() {
		var rn domain.Renewal
		if err := rows.Scan(&rn.ID, &rn.RentalID, &rn.RenewedOn, &rn.NewEndDate,
			&rn.AdditionalDays, &rn.AdditionalPrice); err != nil {
			return nil, err
		}
		renewals = append(renewals, rn)
	}
	return renewals, rows.Err()
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var paymentDate sql.NullTime
	err := row.Scan(&rt.ID, &rt.CustomerID, &rt.EquipmentID, &rt.StartDate, &rt.EndDate,
		&rt.DurationDays, &rt.DailyRate, &rt.TotalPrice, &rt.Status, &rt.PaymentStatus,
		&paymentDate, &rt.Notes, &rt.CreatedOn)
	if err != nil {
		return nil, err
	}
	if paymentDate.Valid {
		rt.PaymentDate = &paymentDate.Time
	}
	return rt, nil
}
