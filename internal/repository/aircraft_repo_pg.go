package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rmoulin/skyflight/internal/domain"
)

type AircraftRepository interface {
	List(ctx context.Context) ([]domain.Aircraft, error)
	Create(ctx context.Context, aircraft *domain.Aircraft) error
	Update(ctx context.Context, aircraft *domain.Aircraft) error
	Delete(ctx context.Context, aid string) error
}

type PGAircraftRepository struct {
	db *pgxpool.Pool
}

func NewAircraftRepository(db *pgxpool.Pool) AircraftRepository {
	return &PGAircraftRepository{db: db}
}

func (r *PGAircraftRepository) List(ctx context.Context) ([]domain.Aircraft, error) {
	rows, err := r.db.Query(ctx, `SELECT id, aid, name, range_km, capacity, manufacturer, year_manufactured, created_at, updated_at FROM aircraft ORDER BY aid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fleet := make([]domain.Aircraft, 0)
	for rows.Next() {
		var a domain.Aircraft
		if err := rows.Scan(&a.ID, &a.AID, &a.Name, &a.Range, &a.Capacity, &a.Manufacturer, &a.YearManufactured, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		fleet = append(fleet, a)
	}
	return fleet, rows.Err()
}

func (r *PGAircraftRepository) Create(ctx context.Context, aircraft *domain.Aircraft) error {
	return r.db.QueryRow(ctx, `INSERT INTO aircraft (aid, name, range_km, capacity, manufacturer, year_manufactured)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		aircraft.AID, aircraft.Name, aircraft.Range, aircraft.Capacity, aircraft.Manufacturer, aircraft.YearManufactured).
		Scan(&aircraft.ID, &aircraft.CreatedAt, &aircraft.UpdatedAt)
}

func (r *PGAircraftRepository) Update(ctx context.Context, aircraft *domain.Aircraft) error {
	cmd, err := r.db.Exec(ctx, `UPDATE aircraft SET name=$1, range_km=$2, capacity=$3, manufacturer=$4, year_manufactured=$5, updated_at=now() WHERE aid=$6`,
		aircraft.Name, aircraft.Range, aircraft.Capacity, aircraft.Manufacturer, aircraft.YearManufactured, aircraft.AID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGAircraftRepository) Delete(ctx context.Context, aid string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM aircraft WHERE aid=$1`, aid)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ AircraftRepository = (*PGAircraftRepository)(nil)
