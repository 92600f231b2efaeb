package repository

import (
	"context"
	"database/sql"
	"errors"

	"talent-match/internal/database"
	"talent-match/internal/domain/employee"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `id, name, COALESCE(role, ''), COALESCE(skills, '{}'), seniority, availability, created_at`

type PostgresEmployeeRepository struct {
	db database.DB
}

func NewPostgresEmployeeRepository(db database.DB) *PostgresEmployeeRepository {
	return &PostgresEmployeeRepository{db: db}
}

func (r *PostgresEmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+employeeColumns+`
		 FROM employees
		 ORDER BY name ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]employee.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresEmployeeRepository) GetByID(ctx context.Context, id uuid.UUID) (employee.Employee, error) {
	if id == uuid.Nil {
		return employee.Employee{}, employee.ErrNotFound
	}

	row := r.db.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
	e, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func scanEmployee(row database.Row) (employee.Employee, error) {
	var e employee.Employee
	if err := row.Scan(&e.ID, &e.Name, &e.Role, &e.Skills, &e.Seniority, &e.Availability, &e.CreatedAt); err != nil {
		return employee.Employee{}, err
	}
	if e.Skills == nil {
		e.Skills = []string{}
	}
	return e, nil
}
