package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rmoulin/skyflight/internal/domain"
)

type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Create(ctx context.Context, employee *domain.Employee) error
	Update(ctx context.Context, employee *domain.Employee) error
	Delete(ctx context.Context, eid string) error
}

type PGEmployeeRepository struct {
	db *pgxpool.Pool
}

func NewEmployeeRepository(db *pgxpool.Pool) EmployeeRepository {
	return &PGEmployeeRepository{db: db}
}

func (r *PGEmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.Query(ctx, `SELECT id, eid, name, salary, role, hire_date, email, created_at, updated_at FROM employees ORDER BY eid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]domain.Employee, 0)
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.EID, &e.Name, &e.Salary, &e.Role, &e.HireDate, &e.Email, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *PGEmployeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	return r.db.QueryRow(ctx, `INSERT INTO employees (eid, name, salary, role, hire_date, email)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		employee.EID, employee.Name, employee.Salary, employee.Role, employee.HireDate, employee.Email).
		Scan(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)
}

func (r *PGEmployeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	cmd, err := r.db.Exec(ctx, `UPDATE employees SET name=$1, salary=$2, role=$3, hire_date=$4, email=$5, updated_at=now() WHERE eid=$6`,
		employee.Name, employee.Salary, employee.Role, employee.HireDate, employee.Email, employee.EID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGEmployeeRepository) Delete(ctx context.Context, eid string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM employees WHERE eid=$1`, eid)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ EmployeeRepository = (*PGEmployeeRepository)(nil)
