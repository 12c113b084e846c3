package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rmoulin/skyflight/internal/domain"
)

type PassengerRepository interface {
	List(ctx context.Context) ([]domain.Passenger, error)
	GetByPID(ctx context.Context, pid string) (*domain.Passenger, error)
	// FindByEmail returns (nil, nil) when no passenger has the email; the
	// wizard uses the absence to decide whether to create a new profile.
	FindByEmail(ctx context.Context, email string) (*domain.Passenger, error)
	Create(ctx context.Context, passenger *domain.Passenger) error
	Update(ctx context.Context, passenger *domain.Passenger) error
	Delete(ctx context.Context, pid string) error
}

type PGPassengerRepository struct {
	db *pgxpool.Pool
}

func NewPassengerRepository(db *pgxpool.Pool) PassengerRepository {
	return &PGPassengerRepository{db: db}
}

const passengerColumns = `id, pid, first_name, last_name, email, phone, passport_number, nationality, date_of_birth, created_at, updated_at`

func scanPassenger(row pgx.Row, p *domain.Passenger) error {
	return row.Scan(&p.ID, &p.PID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.PassportNumber, &p.Nationality, &p.DateOfBirth, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PGPassengerRepository) List(ctx context.Context) ([]domain.Passenger, error) {
	rows, err := r.db.Query(ctx, `SELECT `+passengerColumns+` FROM passengers ORDER BY pid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	passengers := make([]domain.Passenger, 0)
	for rows.Next() {
		var p domain.Passenger
		if err := scanPassenger(rows, &p); err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}
	return passengers, rows.Err()
}

func (r *PGPassengerRepository) GetByPID(ctx context.Context, pid string) (*domain.Passenger, error) {
	row := r.db.QueryRow(ctx, `SELECT `+passengerColumns+` FROM passengers WHERE pid=$1`, pid)
	var p domain.Passenger
	if err := scanPassenger(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGPassengerRepository) FindByEmail(ctx context.Context, email string) (*domain.Passenger, error) {
	row := r.db.QueryRow(ctx, `SELECT `+passengerColumns+` FROM passengers WHERE email=$1`, email)
	var p domain.Passenger
	if err := scanPassenger(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGPassengerRepository) Create(ctx context.Context, passenger *domain.Passenger) error {
	return r.db.QueryRow(ctx, `INSERT INTO passengers (pid, first_name, last_name, email, phone, passport_number, nationality, date_of_birth)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		passenger.PID, passenger.FirstName, passenger.LastName, passenger.Email, passenger.Phone, passenger.PassportNumber, passenger.Nationality, passenger.DateOfBirth).
		Scan(&passenger.ID, &passenger.CreatedAt, &passenger.UpdatedAt)
}

func (r *PGPassengerRepository) Update(ctx context.Context, passenger *domain.Passenger) error {
	cmd, err := r.db.Exec(ctx, `UPDATE passengers SET first_name=$1, last_name=$2, email=$3, phone=$4, passport_number=$5, nationality=$6, date_of_birth=$7, updated_at=now() WHERE pid=$8`,
		passenger.FirstName, passenger.LastName, passenger.Email, passenger.Phone, passenger.PassportNumber, passenger.Nationality, passenger.DateOfBirth, passenger.PID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGPassengerRepository) Delete(ctx context.Context, pid string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM passengers WHERE pid=$1`, pid)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)
