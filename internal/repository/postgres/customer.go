package postgres

import (
	"context"
	"database/sql"
	"errors"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, name, email, phone, document, document_type, notes,
	street, number, district, city, postal_code, lat, lng, created_on`

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (` + customerColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	lat, lng := coordinateArgs(c.Address.Coordinates)
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.Document, c.DocumentType, c.Notes,
		c.Address.Street, c.Address.Number, c.Address.District, c.Address.City,
		c.Address.PostalCode, lat, lng, c.CreatedOn)
	return err
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	c, err := scanCustomer(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET name=$1, email=$2, phone=$3, document=$4, document_type=$5,
	          notes=$6, street=$7, number=$8, district=$9, city=$10, postal_code=$11,
	          lat=$12, lng=$13 WHERE id=$14`
	lat, lng := coordinateArgs(c.Address.Coordinates)
	res, err := r.db.ExecContext(ctx, query,
		c.Name, c.Email, c.Phone, c.Document, c.DocumentType, c.Notes,
		c.Address.Street, c.Address.Number, c.Address.District, c.Address.City,
		c.Address.PostalCode, lat, lng, c.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// requireRow maps a zero-row write to ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	c := &domain.Customer{}
	var lat, lng sql.NullFloat64
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Document, &c.DocumentType,
		&c.Notes, &c.Address.Street, &c.Address.Number, &c.Address.District,
		&c.Address.City, &c.Address.PostalCode, &lat, &lng, &c.CreatedOn)
	if err != nil {
		return nil, err
	}
	if lat.Valid && lng.Valid {
		c.Address.Coordinates = &domain.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
	}
	return c, nil
}

func coordinateArgs(coords *domain.Coordinates) (interface{}, interface{}) {
	if coords == nil {
		return nil, nil
	}
	return coords.Lat, coords.Lng
}
